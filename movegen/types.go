// Package movegen implements pseudo-legal and legal move generation for
// chess and a family of chess variants over a bitboard-encoded Position.
package movegen

// Piece encodes a colored chess piece. Black pieces are the white piece
// type with bit 3 set, so Type() and Color() are cheap masks.
type Piece uint8

const (
	NoPiece Piece = 0

	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// PieceType is a colorless piece kind used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the side that owns the piece. NoPiece is treated as White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// IsSlider reports whether the piece type moves along rays.
func (pt PieceType) IsSlider() bool {
	return pt == PieceTypeBishop || pt == PieceTypeRook || pt == PieceTypeQueen
}

// PieceFromType combines a colorless type with a side.
func PieceFromType(c Color, pt PieceType) Piece {
	switch pt {
	case PieceTypePawn:
		if c == White {
			return WhitePawn
		}
		return BlackPawn
	case PieceTypeKnight:
		if c == White {
			return WhiteKnight
		}
		return BlackKnight
	case PieceTypeBishop:
		if c == White {
			return WhiteBishop
		}
		return BlackBishop
	case PieceTypeRook:
		if c == White {
			return WhiteRook
		}
		return BlackRook
	case PieceTypeQueen:
		if c == White {
			return WhiteQueen
		}
		return BlackQueen
	case PieceTypeKing:
		if c == White {
			return WhiteKing
		}
		return BlackKing
	default:
		return NoPiece
	}
}

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Opposite flips the color.
func (c Color) Opposite() Color { return c ^ 1 }

// Square is a board index 0..63, a1=0 .. h8=63, or the sentinel NoSquare.
type Square int8

const NoSquare Square = -1

const (
	SquareA1 Square = 0
	SquareB1 Square = 1
	SquareC1 Square = 2
	SquareD1 Square = 3
	SquareE1 Square = 4
	SquareF1 Square = 5
	SquareG1 Square = 6
	SquareH1 Square = 7
	SquareE2 Square = 12
	SquareD4 Square = 27
	SquareE4 Square = 28
	SquareD5 Square = 35
	SquareE5 Square = 36
	SquareA8 Square = 56
	SquareB8 Square = 57
	SquareC8 Square = 58
	SquareD8 Square = 59
	SquareE8 Square = 60
	SquareF8 Square = 61
	SquareG8 Square = 62
	SquareH8 Square = 63
)

// File returns the file (0=a..7=h) of the square.
func (s Square) File() int { return int(s) & 7 }

// Rank returns the rank (0=rank1..7=rank8) of the square.
func (s Square) Rank() int { return int(s) >> 3 }

// RelativeSquare mirrors a square vertically for Black so pawn-relative
// logic can be written once from White's point of view.
func RelativeSquare(c Color, s Square) Square {
	if c == White {
		return s
	}
	return s ^ 56
}

// RelativeRank returns the rank of s as seen by color c (0-based from c's
// own first rank).
func RelativeRank(c Color, s Square) int {
	if c == White {
		return s.Rank()
	}
	return 7 - s.Rank()
}

// CastlingRight identifies one of the four standard castling rights.
type CastlingRight uint8

const (
	WhiteOO  CastlingRight = 1 << 0
	WhiteOOO CastlingRight = 1 << 1
	BlackOO  CastlingRight = 1 << 2
	BlackOOO CastlingRight = 1 << 3
	AnyCastling = WhiteOO | WhiteOOO | BlackOO | BlackOOO
)

// CastlingRightsFor returns the king-side/queen-side right pair for c.
func CastlingRightsFor(c Color) (kingSide, queenSide CastlingRight) {
	if c == White {
		return WhiteOO, WhiteOOO
	}
	return BlackOO, BlackOOO
}

// Variant is the finite enumeration of rule families the generator knows
// how to specialize for. The zero value is standard chess.
type Variant uint8

const (
	Standard Variant = iota
	Anti
	Atomic
	Crazyhouse
	Horde
	Losers
	Race
	Relay
)

// GenMode selects which pseudo-legal (or legal) move set a top-level entry
// point produces.
type GenMode uint8

const (
	GenCaptures GenMode = iota
	GenQuiets
	GenNonEvasions
	GenEvasions
	GenQuietChecks
	GenLegal
)

// MoveKind distinguishes the five shapes a Move can take.
type MoveKind uint8

const (
	Normal MoveKind = iota
	PromotionKind
	EnPassantKind
	CastlingKind
	DropKind
)

// MaxMoves is a move-buffer capacity sufficient for any legal position,
// including variants with drops (Crazyhouse hands can offer many
// simultaneous drop squares).
const MaxMoves = 256
