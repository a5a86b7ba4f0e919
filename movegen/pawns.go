package movegen

// generatePawnMoves is the variant-overlaid pawn move generator, grounded
// on movegen.cpp's generate_pawn_moves: one code path parametrized by
// GenMode and written from White's point of view via PawnPushDirections,
// so Black reuses the same logic with mirrored directions and ranks.
func (pos *Position) generatePawnMoves(buf []Move, mode GenMode, target Bitboard) []Move {
	us := pos.sideToMove
	them := us.Opposite()
	up, right, left := PawnPushDirections(us)

	tRank8 := relativeRankBB(us, 7)
	tRank7 := relativeRankBB(us, 6)
	tRank3 := relativeRankBB(us, 2)
	tRank2 := relativeRankBB(us, 1)

	pawns := pos.pawns[us]
	pawnsOn7 := pawns & tRank7
	pawnsNotOn7 := pawns &^ tRank7

	var enemies Bitboard
	switch mode {
	case GenEvasions:
		enemies = pos.occupancy[them] & target
	case GenCaptures:
		enemies = target
	default:
		enemies = pos.occupancy[them]
	}

	if mode != GenCaptures {
		var emptySquares Bitboard
		if mode == GenQuiets || mode == GenQuietChecks {
			emptySquares = target
		} else {
			emptySquares = ^pos.Occupied()
		}
		if pos.IsAnti() {
			emptySquares &= target
		}

		b1 := Shift(pawnsNotOn7, up) & emptySquares
		b2 := Shift(b1&tRank3, up) & emptySquares
		if pos.IsHorde() {
			b2 = Shift(b1&(tRank2|tRank3), up) & emptySquares
		}
		if pos.IsLosers() {
			b1 &= target
			b2 &= target
		}
		if mode == GenEvasions {
			b1 &= target
			b2 &= target
		}

		if mode == GenQuietChecks {
			enemyKsq := pos.KingSquare(them)
			if enemyKsq != NoSquare {
				b1 &= PawnAttacks(enemyKsq, them)
				b2 &= PawnAttacks(enemyKsq, them)

				dc := pos.DiscoveredCheckCandidates(us)
				if pawnsNotOn7&dc != 0 {
					fileMask := Bitboard(0)
					if enemyKsq != NoSquare {
						fileMask = FileABB << uint(enemyKsq.File())
					}
					dc1 := Shift(pawnsNotOn7&dc, up) & emptySquares &^ fileMask
					dc2 := Shift(dc1&tRank3, up) & emptySquares
					b1 |= dc1
					b2 |= dc2
				}
			}
		}

		moved := PieceFromType(us, PieceTypePawn)
		for b1 != 0 {
			to := b1.PopLSB()
			buf = append(buf, NewMove(to-Square(up), to, moved, NoPiece, NoPiece, Normal))
		}
		for b2 != 0 {
			to := b2.PopLSB()
			buf = append(buf, NewMove(to-Square(up)-Square(up), to, moved, NoPiece, NoPiece, Normal))
		}
	}

	if pawnsOn7 != 0 && (mode != GenEvasions || target&tRank8 != 0) {
		emptySquares := ^pos.Occupied()
		if mode == GenCaptures {
			if pos.IsAtomic() && pos.Checkers() != 0 {
				emptySquares &= target
			}
		}
		if pos.IsAnti() || pos.IsLosers() {
			emptySquares &= target
		}
		if mode == GenEvasions {
			emptySquares &= target
		}

		b1 := Shift(pawnsOn7, right) & enemies
		b2 := Shift(pawnsOn7, left) & enemies
		b3 := Shift(pawnsOn7, up) & emptySquares

		enemyKsq := pos.KingSquare(them)
		for b1 != 0 {
			to := b1.PopLSB()
			buf = pos.appendPromotions(buf, mode, to, to-Square(right), enemyKsq)
		}
		for b2 != 0 {
			to := b2.PopLSB()
			buf = pos.appendPromotions(buf, mode, to, to-Square(left), enemyKsq)
		}
		for b3 != 0 {
			to := b3.PopLSB()
			buf = pos.appendPromotions(buf, mode, to, to-Square(up), enemyKsq)
		}
	}

	if mode == GenCaptures || mode == GenEvasions || mode == GenNonEvasions {
		b1 := Shift(pawnsNotOn7, right) & enemies
		b2 := Shift(pawnsNotOn7, left) & enemies
		for b1 != 0 {
			to := b1.PopLSB()
			buf = append(buf, NewMove(to-Square(right), to, PieceFromType(us, PieceTypePawn), pos.pieces[to], NoPiece, Normal))
		}
		for b2 != 0 {
			to := b2.PopLSB()
			buf = append(buf, NewMove(to-Square(left), to, PieceFromType(us, PieceTypePawn), pos.pieces[to], NoPiece, Normal))
		}

		if pos.epSquare != NoSquare {
			if mode == GenEvasions && target&SquareBB(pos.epSquare-Square(up)) == 0 {
				return buf
			}
			b1 = pawnsNotOn7 & PawnAttacks(pos.epSquare, them)
			for b1 != 0 {
				from := b1.PopLSB()
				buf = append(buf, NewMove(from, pos.epSquare, PieceFromType(us, PieceTypePawn), pos.pieces[pos.epSquare-Square(up)], NoPiece, EnPassantKind))
			}
		}
	}

	return buf
}

// appendPromotions mirrors make_promotions: which promotion pieces are
// legal depends on GenMode (queen-only for captures/evasions/non-evasions,
// underpromotions for quiets/evasions/non-evasions), except in Anti where
// all five pieces including the king are offered, and QuietChecks only
// wants the knight promotion (the queen promotion's check is already found
// by the direct-check capture pass).
func (pos *Position) appendPromotions(buf []Move, mode GenMode, to, from, enemyKsq Square) []Move {
	us := pos.sideToMove
	moved := PieceFromType(us, PieceTypePawn)
	captured := pos.pieces[to]

	newMove := func(promo PieceType) Move {
		return NewMove(from, to, moved, captured, PieceFromType(us, promo), PromotionKind)
	}

	if pos.IsAnti() {
		if mode == GenQuiets || mode == GenCaptures || mode == GenNonEvasions {
			buf = append(buf, newMove(PieceTypeQueen), newMove(PieceTypeRook),
				newMove(PieceTypeBishop), newMove(PieceTypeKnight), newMove(PieceTypeKing))
		}
		return buf
	}

	if mode == GenCaptures || mode == GenEvasions || mode == GenNonEvasions {
		buf = append(buf, newMove(PieceTypeQueen))
	}
	if mode == GenQuiets || mode == GenEvasions || mode == GenNonEvasions {
		buf = append(buf, newMove(PieceTypeRook), newMove(PieceTypeBishop), newMove(PieceTypeKnight))
	}
	// Knight promotion is the only promotion that can give a direct check
	// not already covered by the queen-promotion capture pass.
	if mode == GenQuietChecks && enemyKsq != NoSquare && KnightAttacks(to)&SquareBB(enemyKsq) != 0 {
		buf = append(buf, newMove(PieceTypeKnight))
	}
	return buf
}

func relativeRankBB(c Color, rank int) Bitboard {
	r := rank
	if c == Black {
		r = 7 - rank
	}
	return Rank1BB << uint(8*r)
}
