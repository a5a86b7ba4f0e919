package movegen

// MoveState holds what UnmakeMove needs to restore, grounded on the
// teacher's MoveState. Unlike the teacher, MakeMove here never re-validates
// legality itself — callers are expected to only make moves that came out
// of GenerateLegal (or that they've separately checked with Legal), mirroring
// the Stockfish-style split between generation and legality filtering.
type MoveState struct {
	move           Move
	captured       Piece
	capturedSquare Square
	prevCastling   CastlingRight
	prevEnPassant  Square
	prevHalfmove   int
	prevFullmove   int
	prevZobrist    uint64
	rookFrom       Square
	rookTo         Square
	exploded       [9]Square // Atomic: squares cleared by the blast, NoSquare-terminated
	explodedPiece  [9]Piece
}

// MakeMove applies m, which must be legal, and returns the undo state.
func (pos *Position) MakeMove(m Move) MoveState {
	var st MoveState
	st.move = m
	st.prevCastling = pos.castlingRights
	st.prevEnPassant = pos.epSquare
	st.prevHalfmove = pos.halfmoveClock
	st.prevFullmove = pos.fullmoveNumber
	st.prevZobrist = pos.zobristKey
	st.rookFrom, st.rookTo = NoSquare, NoSquare
	st.captured = NoPiece
	for i := range st.exploded {
		st.exploded[i] = NoSquare
	}

	us := pos.sideToMove
	them := us.Opposite()
	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	promo := m.PromotionPiece()
	kind := m.Kind()

	if pos.epSquare != NoSquare {
		pos.zobristKey ^= zobristEnPassant[pos.epSquare.File()]
	}
	pos.epSquare = NoSquare

	switch kind {
	case DropKind:
		pt := moved.Type()
		pos.hand[us][pt]--
		pos.zobristKey ^= zobristHand[us][pt][pos.hand[us][pt]+1]
		pos.zobristKey ^= zobristHand[us][pt][pos.hand[us][pt]]
		pos.addPiece(to, moved)
		pos.finishMove(&st, us, them, moved, false)
		return st

	case EnPassantKind:
		up := pawnUpDirection(us)
		capSq := to - Square(up)
		st.captured = pos.removePiece(capSq)
		st.capturedSquare = capSq
		if pos.IsHouse() && st.captured != NoPiece {
			pos.zobristKey ^= zobristHand[us][PieceTypePawn][pos.hand[us][PieceTypePawn]]
			pos.hand[us][PieceTypePawn]++
			pos.zobristKey ^= zobristHand[us][PieceTypePawn][pos.hand[us][PieceTypePawn]]
		}
		pos.removePiece(from)
		pos.addPiece(to, moved)

	case CastlingKind:
		rookSq := to // castling encodes rook-from square in To per move.go.
		kingDest, rookDest := pos.castlingDestinations(us, from, rookSq)
		pos.removePiece(from)
		pos.removePiece(rookSq)
		pos.addPiece(kingDest, moved)
		pos.addPiece(rookDest, PieceFromType(us, PieceTypeRook))
		st.rookFrom, st.rookTo = rookSq, rookDest

	default:
		captured := pos.pieces[to]
		if captured != NoPiece {
			st.captured = pos.removePiece(to)
			st.capturedSquare = to
			if pos.IsHouse() {
				pt := unpromotedType(st.captured)
				pos.zobristKey ^= zobristHand[us][pt][pos.hand[us][pt]]
				pos.hand[us][pt]++
				pos.zobristKey ^= zobristHand[us][pt][pos.hand[us][pt]]
			}
		}
		pos.removePiece(from)
		if promo != NoPiece {
			pos.addPiece(to, promo)
		} else {
			pos.addPiece(to, moved)
		}
	}

	if pos.IsAtomic() && st.captured != NoPiece {
		pos.explodeAtomic(&st, to, us)
	}

	// En-passant target square for a just-made double pawn push.
	if moved.Type() == PieceTypePawn && kind != DropKind {
		if d := int(to) - int(from); d == 16 || d == -16 {
			ep := from + Square((int(to)-int(from))/2)
			pos.epSquare = ep
			pos.zobristKey ^= zobristEnPassant[ep.File()]
		}
	}

	pos.updateCastlingRights(&st, moved, from, to)
	pos.finishMove(&st, us, them, moved, st.captured != NoPiece)
	return st
}

func (pos *Position) finishMove(st *MoveState, us, them Color, moved Piece, irreversible bool) {
	pos.sideToMove = them
	pos.zobristKey ^= zobristSide

	if moved.Type() == PieceTypePawn || irreversible {
		pos.halfmoveClock = 0
	} else {
		pos.halfmoveClock++
	}
	if us == Black {
		pos.fullmoveNumber++
	}
}

func unpromotedType(p Piece) PieceType {
	if p.Type() == PieceTypeNone {
		return PieceTypePawn
	}
	return p.Type()
}

func pawnUpDirection(c Color) Direction {
	up, _, _ := PawnPushDirections(c)
	return up
}

// castlingDestinations returns the king and rook squares after castling,
// which are fixed (g1/f1, c1/d1 or the Black mirrors) regardless of where
// the rook started in Chess960.
func (pos *Position) castlingDestinations(us Color, kfrom, rfrom Square) (kingDest, rookDest Square) {
	kingSide := rfrom > kfrom
	if kingSide {
		return RelativeSquare(us, SquareG1), RelativeSquare(us, SquareF1)
	}
	return RelativeSquare(us, SquareC1), RelativeSquare(us, SquareD1)
}

func (pos *Position) updateCastlingRights(st *MoveState, moved Piece, from, to Square) {
	newCR := pos.castlingRights
	if moved.Type() == PieceTypeKing {
		ks, qs := CastlingRightsFor(moved.Color())
		newCR &^= ks | qs
	}
	for _, cr := range [4]CastlingRight{WhiteOO, WhiteOOO, BlackOO, BlackOOO} {
		if pos.castlingRights&cr != 0 && pos.castlingRookSq[castlingRightIndex(cr)] == from {
			newCR &^= cr
		}
		if pos.castlingRights&cr != 0 && pos.castlingRookSq[castlingRightIndex(cr)] == st.capturedSquare && st.captured != NoPiece {
			newCR &^= cr
		}
	}
	if newCR != pos.castlingRights {
		pos.zobristKey ^= zobristCastle[pos.castlingRights]
		pos.zobristKey ^= zobristCastle[newCR]
		pos.castlingRights = newCR
	}
}

// explodeAtomic removes the capturing piece itself (it always self-destructs)
// plus every non-pawn piece on the capture square's king-adjacency ring (the
// captured piece was already removed by the caller before this runs),
// grounded on the Atomic explosion rule described in SPEC_FULL.md §3. The
// center square is removed but deliberately not recorded in st.exploded:
// UnmakeMove restores the mover to its origin square via addPiece(from,
// moved) regardless of variant, and the piece that was captured at center
// is restored separately via st.captured/capturedSquare — recording center
// here too would addPiece the same square twice on unmake.
func (pos *Position) explodeAtomic(st *MoveState, center Square, us Color) {
	pos.removePiece(center)

	n := 0
	blast := KingAttacks(center)
	for blast != 0 {
		sq := blast.PopLSB()
		p := pos.pieces[sq]
		if p == NoPiece || p.Type() == PieceTypePawn {
			continue
		}
		st.exploded[n] = sq
		st.explodedPiece[n] = p
		n++
		pos.removePiece(sq)
	}
}

// UnmakeMove undoes a move previously applied with MakeMove. Only board
// placement needs manual rewinding; the scalar state (clocks, rights, ep
// square, Zobrist key) is restored verbatim from the saved MoveState at the
// end, the same shortcut the teacher's UnmakeMove takes.
func (pos *Position) UnmakeMove(st MoveState) {
	m := st.move
	pos.sideToMove = pos.sideToMove.Opposite()
	us := pos.sideToMove

	from, to := m.From(), m.To()
	moved := m.MovedPiece()
	kind := m.Kind()

	switch kind {
	case DropKind:
		pos.removePiece(to)
		pos.hand[us][moved.Type()]++

	case EnPassantKind:
		pos.removePiece(to)
		for i, sq := range st.exploded {
			if sq == NoSquare {
				break
			}
			pos.addPiece(sq, st.explodedPiece[i])
		}
		pos.addPiece(from, moved)
		if st.captured != NoPiece {
			pos.addPiece(st.capturedSquare, st.captured)
			if pos.IsHouse() {
				pos.hand[us][PieceTypePawn]--
			}
		}

	case CastlingKind:
		kingDest, rookDest := pos.castlingDestinations(us, from, to)
		pos.removePiece(kingDest)
		pos.removePiece(rookDest)
		pos.addPiece(from, moved)
		pos.addPiece(to, PieceFromType(us, PieceTypeRook))

	default:
		pos.removePiece(to)
		for i, sq := range st.exploded {
			if sq == NoSquare {
				break
			}
			pos.addPiece(sq, st.explodedPiece[i])
		}
		if st.captured != NoPiece {
			pos.addPiece(st.capturedSquare, st.captured)
			if pos.IsHouse() {
				pos.hand[us][unpromotedType(st.captured)]--
			}
		}
		pos.addPiece(from, moved)
	}

	pos.zobristKey = st.prevZobrist
	pos.castlingRights = st.prevCastling
	pos.epSquare = st.prevEnPassant
	pos.halfmoveClock = st.prevHalfmove
	pos.fullmoveNumber = st.prevFullmove
}
