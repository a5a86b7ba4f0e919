package movegen

import "testing"

// Standard perft node counts, the textbook Shannon-number progression used
// to sanity-check any from-scratch generator, mirrored from the teacher's
// own perft test fixtures.
func TestPerftStartPos(t *testing.T) {
	pos, err := ParseFEN(StartFEN, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want := []uint64{1, 20, 400, 8902, 197281}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("Perft(start, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	pos, err := ParseFEN(fen, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want := []uint64{1, 48, 2039, 97862}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("Perft(kiwipete, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftPosition3(t *testing.T) {
	fen := "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	pos, err := ParseFEN(fen, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	want := []uint64{1, 14, 191, 2812, 43238}
	for depth, w := range want {
		if got := Perft(pos, depth); got != w {
			t.Errorf("Perft(position3, %d) = %d, want %d", depth, got, w)
		}
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	pos, err := ParseFEN(StartFEN, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	div := PerftDivide(pos, 3)
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if want := Perft(pos, 3); sum != want {
		t.Errorf("sum of divide = %d, want %d", sum, want)
	}
}

func TestPerftHordeDoublePushFromRank2Or3(t *testing.T) {
	pos, err := ParseFEN(HordeStartFEN, Horde)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if got := Perft(pos, 1); got == 0 {
		t.Fatalf("Horde start position has no legal moves")
	}
}
