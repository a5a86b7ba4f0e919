package movegen

// generatePieceMoves enumerates knight/bishop/rook/queen moves for color us,
// grounded on movegen.cpp's generate_moves<Pt>. When checks is true this is
// the quiet-checks pass: sliders are pre-filtered by check_squares and any
// piece already a discovered-check candidate is skipped (its quiet moves
// were already emitted by the discovered-check pass in generate.go).
func (pos *Position) generatePieceMoves(buf []Move, pt PieceType, target Bitboard, checks bool) []Move {
	us := pos.sideToMove
	pieces := pos.PiecesOfType(us, pt)
	dc := Bitboard(0)
	if checks {
		dc = pos.DiscoveredCheckCandidates(us)
	}

	for pieces != 0 {
		from := pieces.PopLSB()

		if checks {
			if pt.IsSlider() && AttacksFrom(pt, from, pos.Occupied())&target&pos.CheckSquares(us, pt) == 0 {
				continue
			}
			if dc&SquareBB(from) != 0 {
				continue
			}
		}

		b := AttacksFrom(pt, from, pos.Occupied()) & target
		if pos.IsRelay() {
			b |= pos.relayBonus(us, from, target, true)
		}
		if checks {
			b &= pos.CheckSquares(us, pt)
		}

		moved := PieceFromType(us, pt)
		for b != 0 {
			to := b.PopLSB()
			buf = append(buf, NewMove(from, to, moved, pos.pieces[to], NoPiece, Normal))
		}
	}
	return buf
}

// relayBonus implements the Relay variant's rule: a piece also moves like
// any piece type that currently defends it (i.e. one of its own side's
// pieces attacks the same square it stands on). Grounded on movegen.cpp's
// RELAY block inside generate_moves/generate_all, which adds a fourth,
// king-defender branch alongside knight/bishop-or-queen/rook-or-queen.
// includeKing is false at the king's own call site in king.go: a king
// defended by a friendly king is not a real Relay layout, and the king
// already generates its own king moves regardless.
func (pos *Position) relayBonus(us Color, from Square, target Bitboard, includeKing bool) Bitboard {
	defenders := pos.AttackersTo(from, pos.Occupied()) & pos.occupancy[us] &^ SquareBB(from)
	var bonus Bitboard
	if defenders&pos.knights[us] != 0 {
		bonus |= AttacksFrom(PieceTypeKnight, from, pos.Occupied()) & target
	}
	if defenders&(pos.queens[us]|pos.bishops[us]) != 0 {
		bonus |= AttacksFrom(PieceTypeBishop, from, pos.Occupied()) & target
	}
	if defenders&(pos.queens[us]|pos.rooks[us]) != 0 {
		bonus |= AttacksFrom(PieceTypeRook, from, pos.Occupied()) & target
	}
	if includeKing && defenders&pos.kings[us] != 0 {
		bonus |= KingAttacks(from) & target
	}
	return bonus
}
