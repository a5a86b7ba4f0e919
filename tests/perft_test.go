// Package tests holds scenario tests that exercise the movegen package as
// a library consumer rather than reaching into its internals, grounded on
// the teacher's bench/ directory (a second top-level package importing
// goosemg rather than living inside it).
package tests

import (
	"testing"

	"kestrel/movegen"
)

func TestVariantStartPositionsHaveLegalMoves(t *testing.T) {
	cases := []struct {
		name    string
		variant movegen.Variant
		fen     string
	}{
		{"standard", movegen.Standard, movegen.StartFEN},
		{"anti", movegen.Anti, movegen.StartFEN},
		{"atomic", movegen.Atomic, movegen.StartFEN},
		{"crazyhouse", movegen.Crazyhouse, movegen.CrazyhouseStartFEN},
		{"horde", movegen.Horde, movegen.HordeStartFEN},
		{"losers", movegen.Losers, movegen.StartFEN},
		{"race", movegen.Race, movegen.RaceStartFEN},
		{"relay", movegen.Relay, movegen.StartFEN},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := movegen.ParseFEN(c.fen, c.variant)
			if err != nil {
				t.Fatalf("ParseFEN: %v", err)
			}
			moves := pos.GenerateLegal(make([]movegen.Move, 0, movegen.MaxMoves))
			if len(moves) == 0 {
				t.Fatalf("%s start position has no legal moves", c.name)
			}
		})
	}
}

func TestCrazyhouseDropsNeverLandOnBackRanks(t *testing.T) {
	pos, err := movegen.ParseFEN("4k3/8/8/8/8/8/8/4K3[Pp] w - - 0 1", movegen.Crazyhouse)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := pos.GenerateLegal(make([]movegen.Move, 0, movegen.MaxMoves))
	for _, m := range moves {
		if m.Kind() != movegen.DropKind {
			continue
		}
		if m.MovedPiece().Type() != movegen.PieceTypePawn {
			continue
		}
		if m.To().Rank() == 0 || m.To().Rank() == 7 {
			t.Fatalf("pawn drop to %s lands on a back rank", m)
		}
	}
}

func TestRaceHasNoCastlingOrEvasions(t *testing.T) {
	pos, err := movegen.ParseFEN("8/4k3/8/8/8/8/8/R3K2R w KQ - 0 1", movegen.Race)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	moves := pos.GenerateLegal(make([]movegen.Move, 0, movegen.MaxMoves))
	for _, m := range moves {
		if m.Kind() == movegen.CastlingKind {
			t.Fatalf("Race generated a castling move: %s", m)
		}
	}
	if len(pos.GenerateEvasions(nil)) != 0 {
		t.Fatalf("Race should never generate evasions")
	}
}

func TestPerftAcrossVariantsIsPositive(t *testing.T) {
	cases := []struct {
		variant movegen.Variant
		fen     string
		depth   int
	}{
		{movegen.Standard, movegen.StartFEN, 3},
		{movegen.Atomic, movegen.StartFEN, 2},
		{movegen.Crazyhouse, movegen.CrazyhouseStartFEN, 2},
		{movegen.Horde, movegen.HordeStartFEN, 2},
	}
	for _, c := range cases {
		pos, err := movegen.ParseFEN(c.fen, c.variant)
		if err != nil {
			t.Fatalf("ParseFEN: %v", err)
		}
		if got := movegen.Perft(pos, c.depth); got == 0 {
			t.Errorf("Perft(%v, %d) = 0", c.variant, c.depth)
		}
	}
}
