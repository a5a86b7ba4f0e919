package movegen

import "testing"

func TestCheckersEmptyAtStart(t *testing.T) {
	pos, _ := ParseFEN(StartFEN, Standard)
	if pos.Checkers() != 0 {
		t.Fatalf("Checkers() != 0 at the start position")
	}
}

func TestCheckersDetectsDirectCheck(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1", Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.Checkers() == 0 {
		t.Fatalf("Checkers() == 0, want the queen on e2 to check the black king")
	}
}

func TestAntiAndRaceHaveNoCheckConcept(t *testing.T) {
	anti, _ := ParseFEN("4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1", Anti)
	if anti.Checkers() != 0 || anti.InCheck(Black) {
		t.Fatalf("Anti should report no checkers/InCheck regardless of board state")
	}
	race, _ := ParseFEN("4k3/8/8/8/8/8/4Q3/4K3 b - - 0 1", Race)
	if race.Checkers() != 0 || race.InCheck(Black) {
		t.Fatalf("Race should report no checkers/InCheck regardless of board state")
	}
}

func TestAntiObligatoryCaptureOnlyOffersCaptures(t *testing.T) {
	pos, err := ParseFEN("8/8/8/3p4/4P3/8/8/8 w - - 0 1", Anti)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.CanCapture(White) {
		t.Fatalf("CanCapture(White) = false, want true (exd5 is available)")
	}
	moves := pos.GenerateLegal(make([]Move, 0, MaxMoves))
	if len(moves) == 0 {
		t.Fatalf("expected at least one legal move")
	}
	for _, m := range moves {
		if !m.IsCapture() {
			t.Fatalf("move %s is not a capture, but a capture was obligatory", m)
		}
	}
}

func TestPinnedPieceMayOnlyMoveAlongTheLine(t *testing.T) {
	pos, err := ParseFEN("4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1", Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.PinnedPieces(White)&SquareBB(SquareE2) == 0 {
		t.Fatalf("bishop on e2 should be pinned by the rook on e4")
	}
	moves := pos.GenerateLegal(make([]Move, 0, MaxMoves))
	for _, m := range moves {
		if m.From() == SquareE2 {
			t.Fatalf("pinned bishop has no legal move along the e-file, got %s", m)
		}
	}
}

func TestAtomicAdjacentKingsAreSafe(t *testing.T) {
	pos, err := ParseFEN("8/8/8/3k4/3K4/8/8/8 w - - 0 1", Atomic)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := pos.GenerateLegal(make([]Move, 0, MaxMoves))
	found := false
	for _, m := range moves {
		if m.From() == SquareD4 && m.To() == SquareE4 {
			found = true
		}
	}
	if !found {
		t.Fatalf("king move d4e4 (next to the enemy king on d5) was filtered out")
	}
	if len(moves) == 0 {
		t.Fatalf("king should still have legal moves while adjacent to the enemy king")
	}
}
