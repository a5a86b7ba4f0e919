package movegen

// generateAll dispatches pawn, knight, bishop, rook, queen, drop, king and
// castling generation for the side to move against a precomputed target
// set, mirroring movegen.cpp's generate_all. target's meaning depends on
// the caller's GenMode (captures target enemy pieces, quiets target empty
// squares, evasions target the blocking/capturing squares computed by
// GenerateEvasions, and so on).
func (pos *Position) generateAll(buf []Move, mode GenMode, target Bitboard) []Move {
	checks := mode == GenQuietChecks

	buf = pos.generatePawnMoves(buf, mode, target)
	buf = pos.generatePieceMoves(buf, PieceTypeKnight, target, checks)
	buf = pos.generatePieceMoves(buf, PieceTypeBishop, target, checks)
	buf = pos.generatePieceMoves(buf, PieceTypeRook, target, checks)
	buf = pos.generatePieceMoves(buf, PieceTypeQueen, target, checks)
	buf = pos.generateDrops(buf, mode, target)
	buf = pos.generateKingMoves(buf, mode, target)
	return buf
}

// GenerateCaptures appends every pseudo-legal capture (and queen
// promotion) to buf and returns the extended slice. Grounded on
// movegen.cpp's generate<CAPTURES>.
func (pos *Position) GenerateCaptures(buf []Move) []Move {
	us := pos.sideToMove
	target := pos.occupancy[us.Opposite()]

	if pos.IsAtomic() {
		if ksq := pos.KingSquare(us); ksq != NoSquare {
			target &^= KingAttacks(ksq)
		}
	}
	return pos.generateAll(buf, GenCaptures, target)
}

// GenerateQuiets appends every pseudo-legal non-capture (and
// underpromotion, and castling) to buf.
func (pos *Position) GenerateQuiets(buf []Move) []Move {
	us := pos.sideToMove
	target := ^pos.Occupied()
	if pos.IsAnti() && pos.CanCapture(us) {
		target &= pos.occupancy[us.Opposite()]
	}
	if pos.IsLosers() && pos.canCaptureLosers(us) {
		target &= pos.occupancy[us.Opposite()]
	}
	return pos.generateAll(buf, GenQuiets, target)
}

// GenerateNonEvasions appends every pseudo-legal capture and non-capture
// (used when the side to move is not in check).
func (pos *Position) GenerateNonEvasions(buf []Move) []Move {
	us := pos.sideToMove
	target := ^pos.occupancy[us]
	if pos.IsAnti() && pos.CanCapture(us) {
		target &= pos.occupancy[us.Opposite()]
	}
	if pos.IsLosers() && pos.canCaptureLosers(us) {
		target &= pos.occupancy[us.Opposite()]
	}
	return pos.generateAll(buf, GenNonEvasions, target)
}

// GenerateQuietChecks appends every pseudo-legal non-capture that gives
// check: a direct-check pass over knight/bishop/rook/queen/drop/king plus a
// separate discovered-check pass. Anti and Race have no check concept and
// return buf unchanged.
func (pos *Position) GenerateQuietChecks(buf []Move) []Move {
	if !pos.HasCheckConcept() {
		return buf
	}
	us := pos.sideToMove
	enemyKsq := pos.KingSquare(us.Opposite())
	dc := pos.DiscoveredCheckCandidates(us)
	notOccupied := ^pos.Occupied()

	for dc != 0 {
		from := dc.PopLSB()
		p := pos.pieces[from]
		pt := p.Type()
		if pt == PieceTypePawn {
			continue // emitted together with the direct-check pass below.
		}
		b := AttacksFrom(pt, from, pos.Occupied()) & notOccupied
		if pt == PieceTypeKing && enemyKsq != NoSquare {
			b &^= KingAttacks(enemyKsq) | BishopAttacks(enemyKsq, 0) | RookAttacks(enemyKsq, 0)
		}
		moved := p
		for b != 0 {
			to := b.PopLSB()
			buf = append(buf, NewMove(from, to, moved, NoPiece, NoPiece, Normal))
		}
	}

	return pos.generateAll(buf, GenQuietChecks, notOccupied)
}

// GenerateEvasions appends every pseudo-legal move that gets the side to
// move out of check. Anti and Race have no check concept and return buf
// unchanged; callers should not call this when Checkers() is empty for a
// variant that does have the concept.
func (pos *Position) GenerateEvasions(buf []Move) []Move {
	if !pos.HasCheckConcept() {
		return buf
	}
	us := pos.sideToMove
	ksq := pos.KingSquare(us)
	if ksq == NoSquare {
		return buf
	}
	checkers := pos.Checkers()
	sliders := checkers &^ (pos.knights[White] | pos.knights[Black] | pos.pawns[White] | pos.pawns[Black])

	var enemyKingAttacks Bitboard
	if pos.IsAtomic() {
		if eksq := pos.KingSquare(us.Opposite()); eksq != NoSquare {
			enemyKingAttacks = KingAttacks(eksq)
		}
	}

	if pos.IsAtomic() {
		target := pos.occupancy[us.Opposite()]
		checkersCopy := checkers
		for checkersCopy != 0 {
			s := checkersCopy.PopLSB()
			target &= KingAttacks(s) | SquareBB(s)
		}
		target |= enemyKingAttacks
		target &= pos.occupancy[us.Opposite()] &^ KingAttacks(ksq)
		buf = pos.generateAll(buf, GenCaptures, target)
	}

	var sliderAttacks Bitboard
	for sliders != 0 {
		checkSq := sliders.PopLSB()
		sliderAttacks |= LineBB(checkSq, ksq) &^ SquareBB(checkSq)
	}

	var b Bitboard
	if pos.IsAtomic() {
		b = KingAttacks(ksq) &^ pos.Occupied() &^ (sliderAttacks &^ enemyKingAttacks)
	} else {
		b = KingAttacks(ksq) &^ pos.occupancy[us] &^ sliderAttacks
	}
	if pos.IsLosers() && pos.canCaptureLosers(us) {
		b &= pos.occupancy[us.Opposite()]
	}
	moved := PieceFromType(us, PieceTypeKing)
	for b != 0 {
		to := b.PopLSB()
		buf = append(buf, NewMove(ksq, to, moved, pos.pieces[to], NoPiece, Normal))
	}

	if checkers.MoreThanOne() {
		return buf // double check: only a king move can help.
	}

	checkSq := checkers.LSB()
	var target Bitboard
	if pos.IsAtomic() {
		target = BetweenBB(checkSq, ksq)
	} else {
		target = BetweenBB(checkSq, ksq) | SquareBB(checkSq)
	}
	if pos.IsLosers() && pos.canCaptureLosers(us) {
		target &= pos.occupancy[us.Opposite()]
	}
	return pos.generateAll(buf, GenEvasions, target)
}

// GenerateLegal appends every fully legal move in the current position to
// buf: the appropriate pseudo-legal set (evasions if in check, otherwise
// non-evasions) filtered through Legal, grounded on movegen.cpp's
// generate<LEGAL> swap-remove filter. Drops are always legal once
// pseudo-legally generated (dropping can't expose your own king, and
// Crazyhouse has no pin-through-a-drop concept); captures in Atomic are
// always re-validated because a capture's explosion can rescue or doom
// either king regardless of pins.
func (pos *Position) GenerateLegal(buf []Move) []Move {
	if pos.IsVariantEnd() {
		return buf
	}

	us := pos.sideToMove
	pinned := pos.PinnedPieces(us)
	validate := pinned != 0 || pos.IsRace()
	ksq := pos.KingSquare(us)

	start := len(buf)
	if pos.HasCheckConcept() && pos.Checkers() != 0 {
		buf = pos.GenerateEvasions(buf)
	} else {
		buf = pos.GenerateNonEvasions(buf)
	}

	i := start
	for i < len(buf) {
		m := buf[i]
		needsCheck := validate || m.From() == ksq || m.Kind() == EnPassantKind
		if pos.IsHouse() && m.Kind() == DropKind {
			needsCheck = false
		}
		if pos.IsAtomic() && m.IsCapture() {
			needsCheck = true
		}
		if needsCheck && !pos.Legal(m) {
			last := len(buf) - 1
			buf[i] = buf[last]
			buf = buf[:last]
			continue
		}
		i++
	}
	return buf
}
