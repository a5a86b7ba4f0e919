package movegen

import "strings"

// Move is a compact move encoding, widened from the spec's nominal 16-bit
// wire layout to 32 bits so the fifth move kind (Drop, for Crazyhouse) has
// a bit to live in alongside Normal/Promotion/EnPassant/Castling — see
// DESIGN.md for this Open Question's resolution. Field semantics (from,
// to, promotion piece, move kind) are otherwise exactly the ones spec.md
// §3 and §6.3 describe.
//
// For Castling moves, from is the king's start square and to is the
// castling rook's start square (both Chess960 and standard castling rights
// are encoded this way, per spec.md §3).
//
// For Drop moves, from carries the dropped piece identity instead of a
// board square; callers must not interpret From() as a square for a Drop.
type Move uint32

const (
	moveFromShift    = 0  // 6 bits: from square, or piece identity for Drop
	moveToShift      = 6  // 6 bits: to square
	movePieceShift   = 12 // 4 bits: piece that is moving
	moveCaptureShift = 16 // 4 bits: captured piece, NoPiece if none
	movePromoteShift = 20 // 4 bits: promotion piece, NoPiece if not a promotion
	moveKindShift    = 24 // 3 bits: MoveKind tag
)

// NewMove constructs a normal (or promotion/en-passant/castling/drop) move
// from its components. Callers pick the MoveKind; promotion is indicated
// by a non-NoPiece promo regardless of kind tag for convenience, but code
// that dispatches on kind should use Kind(), not PromotionPiece() != NoPiece.
func NewMove(from, to Square, piece, captured, promo Piece, kind MoveKind) Move {
	return Move(
		uint32(from&0x3F)<<moveFromShift |
			uint32(to&0x3F)<<moveToShift |
			uint32(piece&0xF)<<movePieceShift |
			uint32(captured&0xF)<<moveCaptureShift |
			uint32(promo&0xF)<<movePromoteShift |
			uint32(kind&0x7)<<moveKindShift,
	)
}

// From returns the source square (or, for Drop moves, the raw field that
// encodes the dropped piece — call MovedPiece instead for that case).
func (m Move) From() Square { return Square((uint32(m) >> moveFromShift) & 0x3F) }

// To returns the destination square.
func (m Move) To() Square { return Square((uint32(m) >> moveToShift) & 0x3F) }

// MovedPiece returns the piece being moved (or dropped).
func (m Move) MovedPiece() Piece { return Piece((uint32(m) >> movePieceShift) & 0xF) }

// CapturedPiece returns the captured piece, or NoPiece.
func (m Move) CapturedPiece() Piece { return Piece((uint32(m) >> moveCaptureShift) & 0xF) }

// PromotionPiece returns the promotion piece, or NoPiece.
func (m Move) PromotionPiece() Piece { return Piece((uint32(m) >> movePromoteShift) & 0xF) }

// Kind returns the move's MoveKind tag.
func (m Move) Kind() MoveKind { return MoveKind((uint32(m) >> moveKindShift) & 0x7) }

// IsCapture reports whether the move captures a piece (en passant counts).
func (m Move) IsCapture() bool { return m.CapturedPiece() != NoPiece || m.Kind() == EnPassantKind }

// UCI renders the move in UCI's long algebraic form (e.g. "e2e4", "e7e8q").
// Castling is rendered king-destination style (e1g1), not as from/rook-from,
// matching what a UCI GUI expects to see on the wire.
func (m Move) UCI() string {
	from, to := m.From(), m.To()
	if m.Kind() == CastlingKind {
		to = castlingKingDestination(m.MovedPiece().Color(), to > from)
	}
	s := squareName(from) + squareName(to)
	if promo := m.PromotionPiece(); promo != NoPiece {
		s += strings.ToLower(string(promotionLetter(promo)))
	}
	return s
}

// String renders the move the same way UCI does; useful for %v/%s in logs
// and tests.
func (m Move) String() string { return m.UCI() }

func castlingKingDestination(c Color, kingSide bool) Square {
	if c == White {
		if kingSide {
			return SquareG1
		}
		return SquareC1
	}
	if kingSide {
		return SquareG8
	}
	return SquareC8
}

func squareName(s Square) string {
	if s < 0 || s > 63 {
		return "-"
	}
	return string([]byte{'a' + byte(s.File()), '1' + byte(s.Rank())})
}

func promotionLetter(p Piece) byte {
	switch p.Type() {
	case PieceTypeKnight:
		return 'N'
	case PieceTypeBishop:
		return 'B'
	case PieceTypeRook:
		return 'R'
	case PieceTypeQueen:
		return 'Q'
	case PieceTypeKing:
		return 'K' // Anti variant: king promotion
	default:
		return '?'
	}
}
