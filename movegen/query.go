package movegen

// AttackersTo returns every piece of either color attacking sq, given an
// explicit occupancy bitboard (callers pass pos.Occupied() normally, or a
// modified one when probing "what if this square were empty", as castling
// and Atomic evasions do).
func (pos *Position) AttackersTo(sq Square, occ Bitboard) Bitboard {
	return (PawnAttacks(sq, Black) & pos.pawns[White]) |
		(PawnAttacks(sq, White) & pos.pawns[Black]) |
		(KnightAttacks(sq) & (pos.knights[White] | pos.knights[Black])) |
		(RookAttacks(sq, occ) & (pos.rooks[White] | pos.rooks[Black] | pos.queens[White] | pos.queens[Black])) |
		(BishopAttacks(sq, occ) & (pos.bishops[White] | pos.bishops[Black] | pos.queens[White] | pos.queens[Black])) |
		(KingAttacks(sq) & (pos.kings[White] | pos.kings[Black]))
}

// AttacksFrom returns the attack bitboard for a piece of type pt and color c
// standing on sq, under the current occupancy.
func (pos *Position) AttacksFrom(pt PieceType, c Color, sq Square) Bitboard {
	if pt == PieceTypePawn {
		return PawnAttacks(sq, c)
	}
	return AttacksFrom(pt, sq, pos.Occupied())
}

// Checkers returns the pieces of the side not to move that currently attack
// the side-to-move's king. Empty for Anti and Race, which have no check
// concept, and for any side that currently has no king on the board.
func (pos *Position) Checkers() Bitboard {
	if !pos.HasCheckConcept() {
		return 0
	}
	ksq := pos.KingSquare(pos.sideToMove)
	if ksq == NoSquare {
		return 0
	}
	return pos.AttackersTo(ksq, pos.Occupied()) & pos.occupancy[pos.sideToMove.Opposite()]
}

// InCheck reports whether c's king is attacked right now.
func (pos *Position) InCheck(c Color) bool {
	if !pos.HasCheckConcept() {
		return false
	}
	ksq := pos.KingSquare(c)
	if ksq == NoSquare {
		return false
	}
	return pos.AttackersTo(ksq, pos.Occupied())&pos.occupancy[c.Opposite()] != 0
}

// PinnedPieces returns the bitboard of c's own pieces that are pinned to
// c's king by an enemy slider, i.e. removing the piece would expose the
// king to that slider. Grounded on movegen.cpp's pinned_pieces via
// Position::slider_blockers in spirit: for each enemy slider with a clear
// line to the king except for exactly one of our own pieces on it, that
// piece is pinned.
func (pos *Position) PinnedPieces(c Color) Bitboard {
	ksq := pos.KingSquare(c)
	if ksq == NoSquare {
		return 0
	}
	var pinned Bitboard
	enemy := c.Opposite()
	snipers := ((rookRayFrom(ksq) & (pos.rooks[enemy] | pos.queens[enemy])) |
		(bishopRayFrom(ksq) & (pos.bishops[enemy] | pos.queens[enemy])))
	occ := pos.Occupied()
	for snipers != 0 {
		sniperSq := snipers.PopLSB()
		between := BetweenBB(ksq, sniperSq) & occ
		if between != 0 && !between.MoreThanOne() {
			if between&pos.occupancy[c] != 0 {
				pinned |= between
			}
		}
	}
	return pinned
}

func rookRayFrom(sq Square) Bitboard   { return RookAttacks(sq, 0) }
func bishopRayFrom(sq Square) Bitboard { return BishopAttacks(sq, 0) }

// DiscoveredCheckCandidates returns c's own pieces which, if moved off
// their current square (and not onto a square still covering the enemy
// king), would uncover a check on the enemy king from a slider behind them.
// Used by the quiet-checks generator.
func (pos *Position) DiscoveredCheckCandidates(c Color) Bitboard {
	enemyKsq := pos.KingSquare(c.Opposite())
	if enemyKsq == NoSquare {
		return 0
	}
	var candidates Bitboard
	snipers := ((rookRayFrom(enemyKsq) & (pos.rooks[c] | pos.queens[c])) |
		(bishopRayFrom(enemyKsq) & (pos.bishops[c] | pos.queens[c])))
	occ := pos.Occupied()
	for snipers != 0 {
		sniperSq := snipers.PopLSB()
		between := BetweenBB(enemyKsq, sniperSq) & occ
		if between != 0 && !between.MoreThanOne() {
			candidates |= between & pos.occupancy[c]
		}
	}
	return candidates
}

// CheckSquares returns, for piece type pt, the set of squares from which a
// piece of that type attacks the enemy king — used by the quiet-checks
// generator's "this square gives check" test for non-discovered moves.
func (pos *Position) CheckSquares(c Color, pt PieceType) Bitboard {
	enemyKsq := pos.KingSquare(c.Opposite())
	if enemyKsq == NoSquare {
		return 0
	}
	occ := pos.Occupied()
	switch pt {
	case PieceTypePawn:
		return PawnAttacks(enemyKsq, c.Opposite())
	case PieceTypeKnight:
		return KnightAttacks(enemyKsq)
	case PieceTypeBishop:
		return BishopAttacks(enemyKsq, occ)
	case PieceTypeRook:
		return RookAttacks(enemyKsq, occ)
	case PieceTypeQueen:
		return RookAttacks(enemyKsq, occ) | BishopAttacks(enemyKsq, occ)
	default:
		return 0
	}
}

// Legal reports whether pseudo-legal move m is actually legal in the
// current position: it does not leave (or keep) the mover's own king (or,
// in Atomic, blow it up) attacked, subject to each variant's royal rules.
// Grounded on movegen.cpp's Position::legal / generate<LEGAL>'s validate
// flag: only moves touching the king, en-passant captures, or moves of a
// pinned piece need the full check; everything else is legal by
// construction once it passed pseudo-legal generation.
func (pos *Position) Legal(m Move) bool {
	us := pos.sideToMove
	from, to := m.From(), m.To()

	if pos.IsAnti() {
		// Non-royal kings: the own-king-left-in-check rule never applies.
		// Anti's real legality constraint (obligatory capture when one is
		// available) is enforced by the generator, not here.
		return true
	}

	if pos.IsRace() {
		return true // no check concept, and Race kings may walk adjacent.
	}

	if m.Kind() == CastlingKind {
		return true // castling's own-path safety was verified during generation.
	}

	if pos.IsAtomic() && m.IsCapture() {
		return pos.legalAtomicCapture(m)
	}

	ksq := pos.KingSquare(us)
	if ksq == NoSquare {
		return true
	}

	if m.Kind() == EnPassantKind {
		return pos.legalEnPassant(m)
	}

	moved := m.MovedPiece()
	if moved.Type() == PieceTypeKing {
		if pos.IsAtomic() {
			// Next to the enemy king no capture can reach it: the blast would take both kings.
			if eksq := pos.KingSquare(us.Opposite()); eksq != NoSquare && KingAttacks(eksq)&SquareBB(to) != 0 {
				return true
			}
		}
		occ := (pos.Occupied() &^ SquareBB(from)) | SquareBB(to)
		return pos.AttackersTo(to, occ)&pos.occupancy[us.Opposite()]&^SquareBB(to) == 0
	}

	pinned := pos.PinnedPieces(us)
	if pinned&SquareBB(from) == 0 {
		return true
	}
	return LineBB(from, to)&SquareBB(ksq) != 0 || LineBB(from, ksq)&SquareBB(to) != 0
}

func (pos *Position) legalEnPassant(m Move) bool {
	us := pos.sideToMove
	ksq := pos.KingSquare(us)
	if ksq == NoSquare {
		return true
	}
	capSq := m.To() + Square(relativeDirection(us, South))
	occ := (pos.Occupied() &^ SquareBB(m.From()) &^ SquareBB(capSq)) | SquareBB(m.To())
	return pos.AttackersTo(ksq, occ)&pos.occupancy[us.Opposite()] == 0
}

func relativeDirection(c Color, d Direction) Direction {
	if c == White {
		return d
	}
	return -d
}

// legalAtomicCapture checks Atomic's explosion rule: a capture whose blast
// reaches the mover's own king is illegal, even if it also takes the enemy
// king. A capture that blows up only the enemy king is a legal, game-ending
// win. Otherwise the mover's king must not be attacked by an enemy piece
// left outside the blast.
func (pos *Position) legalAtomicCapture(m Move) bool {
	us := pos.sideToMove
	to := m.To()
	blast := KingAttacks(to) | SquareBB(to)

	ownKsq := pos.KingSquare(us)
	if ownKsq != NoSquare && blast&SquareBB(ownKsq) != 0 {
		return false // own king explodes: illegal self-destruction.
	}

	enemyKsq := pos.KingSquare(us.Opposite())
	if enemyKsq != NoSquare && blast&SquareBB(enemyKsq) != 0 {
		return true // enemy king explodes: legal, ends the game.
	}

	if ownKsq == NoSquare {
		return true
	}
	occAfter := pos.occupiedAfterAtomicCapture(m, blast)
	return pos.AttackersTo(ownKsq, occAfter)&pos.occupancy[us.Opposite()]&^blast == 0
}

func (pos *Position) occupiedAfterAtomicCapture(m Move, blast Bitboard) Bitboard {
	occ := pos.Occupied()
	occ &^= SquareBB(m.From())
	occ &^= blast
	return occ
}

// GivesCheck reports whether making m would leave the opponent's king
// attacked. Used by the quiet-checks generator to filter castling moves and
// exposed for callers (search extensions, SEE-adjacent logic).
func (pos *Position) GivesCheck(m Move) bool {
	enemyKsq := pos.KingSquare(pos.sideToMove.Opposite())
	if enemyKsq == NoSquare {
		return false
	}
	if m.Kind() == CastlingKind {
		kto, rto := pos.castlingDestinations(pos.sideToMove, m.From(), m.To())
		occ := (pos.Occupied() &^ SquareBB(m.From()) &^ SquareBB(m.To())) | SquareBB(kto) | SquareBB(rto)
		return RookAttacks(rto, occ)&SquareBB(enemyKsq) != 0
	}
	to := m.To()
	moved := m.MovedPiece()
	pt := moved.Type()
	if m.Kind() == PromotionKind {
		pt = m.PromotionPiece().Type()
	}

	occAfter := (pos.Occupied() &^ SquareBB(m.From())) | SquareBB(to)
	if m.Kind() == EnPassantKind {
		capSq := to + Square(relativeDirection(pos.sideToMove, South))
		occAfter &^= SquareBB(capSq)
	}

	direct := AttacksFrom(pt, to, occAfter) & SquareBB(enemyKsq)
	if pt == PieceTypePawn {
		direct = PawnAttacks(to, pos.sideToMove) & SquareBB(enemyKsq)
	}
	if direct != 0 {
		return true
	}

	discovered := pos.DiscoveredCheckCandidates(pos.sideToMove)
	if discovered&SquareBB(m.From()) == 0 {
		return false
	}
	return LineBB(m.From(), enemyKsq)&SquareBB(to) == 0
}

// Capture reports whether m is a capture of any kind (normal or en passant).
func (m Move) Capture() bool { return m.IsCapture() }

// CanCapture reports whether side c has any pseudo-legal capture available,
// the obligatory-capture test Anti and Losers both need before offering
// quiet moves.
func (pos *Position) CanCapture(c Color) bool {
	var buf [MaxMoves]Move
	n := pos.generateCapturesUnfiltered(c, buf[:0])
	return n > 0
}

func (pos *Position) generateCapturesUnfiltered(c Color, buf []Move) int {
	saved := pos.sideToMove
	pos.sideToMove = c
	moves := pos.GenerateCaptures(buf)
	pos.sideToMove = saved
	return len(moves)
}
