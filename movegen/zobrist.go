package movegen

import "math/rand"

// Zobrist hashing tables, extended from the teacher's piece/castle/ep/side
// tables with a hand-count table for Crazyhouse drops.
var (
	zobristPiece     [16][64]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [8]uint64
	zobristSide      uint64
	zobristHand      [2][7][17]uint64 // [color][PieceType][count 0..16]
)

func init() {
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
	for c := 0; c < 2; c++ {
		for pt := 0; pt < 7; pt++ {
			for n := 0; n < 17; n++ {
				zobristHand[c][pt][n] = rnd.Uint64()
			}
		}
	}
}

// ComputeZobrist recomputes the hash from scratch; used by Validate and by
// FEN loading.
func (pos *Position) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := pos.pieces[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if pos.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[pos.castlingRights]
	if pos.epSquare != NoSquare {
		key ^= zobristEnPassant[pos.epSquare.File()]
	}
	if pos.variant == Crazyhouse {
		for c := 0; c < 2; c++ {
			for pt := 0; pt < 7; pt++ {
				key ^= zobristHand[c][pt][pos.hand[c][pt]]
			}
		}
	}
	return key
}
