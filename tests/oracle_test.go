// oracle_test.go cross-validates this package's perft counts against
// dragontoothmg, an independent bitboard move generator, on plain-chess
// FENs (the only ruleset dragontoothmg understands). Grounded on the
// "second engine consulted for comparison" role the teacher's
// engine/evalation_tuning.go gives dragontoothmg, redirected here from
// evaluation terms to move counts since that's the comparison a pure
// movegen package can actually make.
package tests

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"kestrel/movegen"
)

func oraclePerft(b dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += oraclePerft(b, depth-1)
		undo()
	}
	return nodes
}

func TestOracleAgreesOnPlainChessPerft(t *testing.T) {
	fens := []string{
		movegen.StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		pos, err := movegen.ParseFEN(fen, movegen.Standard)
		if err != nil {
			t.Fatalf("movegen.ParseFEN(%q): %v", fen, err)
		}
		oracleBoard := dragontoothmg.ParseFen(fen)
		for depth := 1; depth <= 3; depth++ {
			got := movegen.Perft(pos, depth)
			want := oraclePerft(oracleBoard, depth)
			if got != want {
				t.Errorf("fen %q depth %d: movegen=%d dragontoothmg=%d", fen, depth, got, want)
			}
		}
	}
}
