package movegen

import (
	"fmt"
	"strings"
)

func pieceSymbol(p Piece) string {
	if p == NoPiece {
		return "."
	}
	return string(charFromPiece(p))
}

// Draw renders an ASCII board with file/rank labels, grounded on the
// daystram-gambit board dumper's layout (rank-major, a1 at bottom-left),
// simplified to plain text since color is a terminal-layer concern owned by
// cmd/uci, not the board model.
func (pos *Position) Draw() string {
	var b strings.Builder
	b.WriteString("  +---+---+---+---+---+---+---+---+\n")
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&b, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(&b, " %s |", pieceSymbol(pos.pieces[Square(rank*8+file)]))
		}
		b.WriteString("\n  +---+---+---+---+---+---+---+---+\n")
	}
	b.WriteString("    a   b   c   d   e   f   g   h\n")
	return b.String()
}
