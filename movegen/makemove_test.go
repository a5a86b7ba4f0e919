package movegen

import "testing"

func TestMakeUnmakeRoundTripsAllLegalMoves(t *testing.T) {
	cases := []struct {
		fen     string
		variant Variant
	}{
		{StartFEN, Standard},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Standard},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Standard},
		{StartFEN, Atomic},
		{"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Atomic},
	}
	for _, c := range cases {
		pos, err := ParseFEN(c.fen, c.variant)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", c.fen, err)
		}
		before := *pos
		moves := pos.GenerateLegal(make([]Move, 0, MaxMoves))
		for _, m := range moves {
			st := pos.MakeMove(m)
			pos.UnmakeMove(st)
			if pos.zobristKey != before.zobristKey {
				t.Fatalf("fen %q move %s: zobrist mismatch after make/unmake", c.fen, m)
			}
			if !pos.Validate() {
				t.Fatalf("fen %q move %s: Validate() failed after make/unmake", c.fen, m)
			}
			if pos.pieces != before.pieces {
				t.Fatalf("fen %q move %s: mailbox mismatch after make/unmake", c.fen, m)
			}
		}
	}
}

func TestCrazyhouseCaptureFillsHandUnpromoted(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR[] b - - 0 1", Crazyhouse)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	// promote d5 pawn mentally irrelevant; just capture e4 with d5 pawn.
	from, to := SquareD5, SquareE4
	m := NewMove(from, to, BlackPawn, WhitePawn, NoPiece, Normal)
	pos.MakeMove(m)
	if got := pos.CountInHand(Black, PieceTypePawn); got != 1 {
		t.Fatalf("hand pawns for Black = %d, want 1", got)
	}
}

func TestAtomicExplosionRemovesRingAndSparesPawns(t *testing.T) {
	pos, err := ParseFEN("8/8/8/3qp3/3PR3/8/8/4K3 w - - 0 1", Atomic)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	from, to := SquareE4, SquareD5
	m := NewMove(from, to, WhiteRook, BlackQueen, NoPiece, Normal)
	st := pos.MakeMove(m)
	if pos.PieceAt(SquareD5) != NoPiece {
		t.Fatalf("capture square should be empty after explosion")
	}
	if pos.PieceAt(SquareE4) != NoPiece {
		t.Fatalf("capturing rook should have exploded")
	}
	if pos.PieceAt(SquareD4) == NoPiece {
		t.Fatalf("pawn on d4 should survive the blast")
	}
	if pos.PieceAt(SquareE5) == NoPiece {
		t.Fatalf("pawn on e5 should survive the blast")
	}
	pos.UnmakeMove(st)
	if !pos.Validate() {
		t.Fatalf("Validate() failed after unmaking an Atomic explosion")
	}
	if pos.PieceAt(SquareE4) != WhiteRook || pos.PieceAt(SquareD5) != BlackQueen {
		t.Fatalf("UnmakeMove did not restore the exploded pieces")
	}
}
