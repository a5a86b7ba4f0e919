package movegen

// generateKingMoves enumerates king moves for the side to move, grounded on
// movegen.cpp's generate_all king section: Anti iterates every king on the
// board (non-royal, can have more than one) and stops there if a capture is
// obligatory; Race restricts quiet king moves away from its own promotion
// rank and adds a forward "dash" to it among captures; Relay adds the
// bonus moves of whatever piece type currently defends the king.
func (pos *Position) generateKingMoves(buf []Move, mode GenMode, target Bitboard) []Move {
	us := pos.sideToMove

	if pos.IsAnti() {
		moved := PieceFromType(us, PieceTypeKing)
		kings := pos.kings[us]
		for kings != 0 {
			ksq := kings.PopLSB()
			b := KingAttacks(ksq) & target
			for b != 0 {
				to := b.PopLSB()
				buf = append(buf, NewMove(ksq, to, moved, pos.pieces[to], NoPiece, Normal))
			}
		}
		if mode != GenCaptures && !pos.CanCapture(us) {
			kingSide, queenSide := CastlingRightsFor(us)
			buf = pos.generateCastling(buf, kingSide, false)
			buf = pos.generateCastling(buf, queenSide, false)
		}
		return buf
	}

	if mode == GenEvasions {
		return buf
	}

	ksq := pos.KingSquare(us)
	if ksq == NoSquare {
		return buf
	}
	b := KingAttacks(ksq) & target

	if pos.IsRace() {
		if mode == GenCaptures {
			b |= KingAttacks(ksq) & PassedPawnMask(White, ksq) &^ pos.Occupied()
		}
		if mode == GenQuiets {
			b &^= PassedPawnMask(White, ksq)
		}
	}
	if pos.IsRelay() {
		b |= pos.relayBonus(us, ksq, target, false)
	}
	if mode == GenQuietChecks {
		b = 0 // a king step never gives check; only castling is tried below.
	}

	for b != 0 {
		to := b.PopLSB()
		buf = append(buf, NewMove(ksq, to, PieceFromType(us, PieceTypeKing), pos.pieces[to], NoPiece, Normal))
	}

	if pos.IsLosers() && mode != GenCaptures && pos.canCaptureLosers(us) {
		return buf
	}
	if mode != GenCaptures && mode != GenEvasions && !pos.IsRace() && (pos.CanCastle(castlingRightFor(us, true)) || pos.CanCastle(castlingRightFor(us, false))) {
		kingSide, queenSide := CastlingRightsFor(us)
		buf = pos.generateCastling(buf, kingSide, mode == GenQuietChecks)
		buf = pos.generateCastling(buf, queenSide, mode == GenQuietChecks)
	}
	return buf
}

func castlingRightFor(c Color, kingSide bool) CastlingRight {
	ks, qs := CastlingRightsFor(c)
	if kingSide {
		return ks
	}
	return qs
}

// generateCastling appends the castling move for cr if the path is clear of
// pieces and not attacked, and (Chess960-only) moving the rook does not
// uncover a hidden slider check. Grounded on movegen.cpp's
// generate_castling, dropping the Checks-filter parameter into an explicit
// bool since Go has no template specialization to lean on.
func (pos *Position) generateCastling(buf []Move, cr CastlingRight, checksOnly bool) []Move {
	if !pos.CanCastle(cr) || pos.castlingImpeded(cr) {
		return buf
	}
	us := cr.color()
	kingSide := cr == WhiteOO || cr == BlackOO

	kfrom := pos.KingSquare(us)
	if kfrom == NoSquare {
		return buf
	}
	if pos.IsAnti() {
		kfrom = pos.CastlingKingSquare(us)
	}
	rfrom := pos.CastlingRookSquare(cr)
	var kto Square
	if kingSide {
		kto = RelativeSquare(us, SquareG1)
	} else {
		kto = RelativeSquare(us, SquareC1)
	}
	enemies := pos.occupancy[us.Opposite()]

	// Chess960 ? kto > kfrom ? WEST : EAST : KingSide ? WEST : EAST
	step := Direction(-1) // WEST
	if !pos.chess960 {
		if !kingSide {
			step = 1 // EAST
		}
	} else if kto < kfrom {
		step = 1 // EAST
	}

	if !pos.IsAnti() {
		for s := kto; s != kfrom; s += Square(step) {
			if pos.IsAtomic() {
				enemyKsq := pos.KingSquare(us.Opposite())
				if enemyKsq != NoSquare && KingAttacks(enemyKsq)&SquareBB(s) != 0 {
					// adjacency to the enemy king makes the square safe to cross
				} else if pos.AttackersTo(s, pos.Occupied()&^SquareBB(kfrom))&enemies != 0 {
					return buf
				}
			} else if pos.AttackersTo(s, pos.Occupied())&enemies != 0 {
				return buf
			}
		}

		if pos.chess960 {
			occAfterRookMove := pos.Occupied() &^ SquareBB(rfrom)
			if RookAttacks(kto, occAfterRookMove)&(pos.rooks[us.Opposite()]|pos.queens[us.Opposite()]) != 0 {
				enemyKsq := pos.KingSquare(us.Opposite())
				safe := pos.IsAtomic() && enemyKsq != NoSquare && KingAttacks(enemyKsq)&SquareBB(kto) != 0
				if !safe {
					return buf
				}
			}
		}
	}

	m := NewMove(kfrom, rfrom, PieceFromType(us, PieceTypeKing), NoPiece, NoPiece, CastlingKind)
	if checksOnly && !pos.GivesCheck(m) {
		return buf
	}
	return append(buf, m)
}

// castlingImpeded reports whether any square strictly between the king and
// rook's current squares, or on the king's path up to and including its
// destination square, is occupied by a piece other than the castling
// king/rook themselves.
func (pos *Position) castlingImpeded(cr CastlingRight) bool {
	rsq := pos.CastlingRookSquare(cr)
	if rsq == NoSquare {
		return true
	}
	us := cr.color()
	ksq := pos.CastlingKingSquare(us)
	kingSide := cr == WhiteOO || cr == BlackOO
	var kto Square
	if kingSide {
		kto = RelativeSquare(us, SquareG1)
	} else {
		kto = RelativeSquare(us, SquareC1)
	}
	path := (BetweenBB(ksq, rsq) | BetweenBB(ksq, kto) | SquareBB(kto)) &^ SquareBB(ksq) &^ SquareBB(rsq)
	return path&pos.Occupied() != 0
}

func (cr CastlingRight) color() Color {
	if cr == WhiteOO || cr == WhiteOOO {
		return White
	}
	return Black
}

// canCaptureLosers mirrors pos.CanCapture but is named separately because
// Losers' obligatory-capture rule is phrased as "can_capture_losers" in the
// original to distinguish it from Anti's unconditional one.
func (pos *Position) canCaptureLosers(c Color) bool { return pos.CanCapture(c) }
