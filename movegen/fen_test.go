package movegen

import "testing"

func TestParseFENStartPos(t *testing.T) {
	pos, err := ParseFEN(StartFEN, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.SideToMove() != White {
		t.Errorf("side to move = %v, want White", pos.SideToMove())
	}
	if got := pos.Occupied().PopCount(); got != 32 {
		t.Errorf("occupied popcount = %d, want 32", got)
	}
	for _, cr := range [4]CastlingRight{WhiteOO, WhiteOOO, BlackOO, BlackOOO} {
		if !pos.CanCastle(cr) {
			t.Errorf("CanCastle(%v) = false, want true at start", cr)
		}
	}
	if pos.EPSquare() != NoSquare {
		t.Errorf("EPSquare = %v, want NoSquare", pos.EPSquare())
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := ParseFEN(fen, Standard)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.FEN(); got != fen {
			t.Errorf("round trip: got %q, want %q", got, fen)
		}
	}
}

func TestParseFENCrazyhouseHand(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[Pp] w KQkq - 0 1", Crazyhouse)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.CountInHand(White, PieceTypePawn) != 1 {
		t.Errorf("white hand pawns = %d, want 1", pos.CountInHand(White, PieceTypePawn))
	}
	if pos.CountInHand(Black, PieceTypePawn) != 1 {
		t.Errorf("black hand pawns = %d, want 1", pos.CountInHand(Black, PieceTypePawn))
	}
	if got := pos.FEN(); got != "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[Pp] w KQkq - 0 1" {
		t.Errorf("FEN with hand round trip: got %q", got)
	}
}

func TestParseFENChess960Shredder(t *testing.T) {
	fen := "bqnbrkrn/pp2pppp/3p4/2pP4/8/2N5/PPP1PPPP/BQ1BRKRN w GEge - 0 9"
	pos, err := ParseFEN(fen, Standard)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if !pos.IsChess960() {
		t.Errorf("IsChess960() = false, want true for shredder FEN")
	}
	if !pos.CanCastle(WhiteOO) || !pos.CanCastle(BlackOO) {
		t.Errorf("expected kingside rights for both sides")
	}
}
