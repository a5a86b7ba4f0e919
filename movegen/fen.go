package movegen

import (
	"errors"
	"strconv"
	"strings"
)

// StartFEN is the standard chess initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// HordeStartFEN, CrazyhouseStartFEN and RaceStartFEN are the usual starting
// positions for those variants; the others (Anti, Atomic, Losers, Relay)
// start from the standard array and differ only in rules. Race cannot use
// the standard array: a king already on the eighth rank ends a Race game.
const (
	HordeStartFEN      = "rnbqkbnr/pppppppp/8/1PP2PP1/PPPPPPPP/PPPPPPPP/PPPPPPPP/PPPPPPPP w kq - 0 1"
	CrazyhouseStartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR[] w KQkq - 0 1"
	RaceStartFEN       = "8/8/8/8/8/8/krbnNBRK/qrbnNBRQ w - - 0 1"
)

func pieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

func charFromPiece(p Piece) rune {
	switch p {
	case WhitePawn:
		return 'P'
	case WhiteKnight:
		return 'N'
	case WhiteBishop:
		return 'B'
	case WhiteRook:
		return 'R'
	case WhiteQueen:
		return 'Q'
	case WhiteKing:
		return 'K'
	case BlackPawn:
		return 'p'
	case BlackKnight:
		return 'n'
	case BlackBishop:
		return 'b'
	case BlackRook:
		return 'r'
	case BlackQueen:
		return 'q'
	case BlackKing:
		return 'k'
	default:
		return '?'
	}
}

// ParseFEN parses fen under the given variant's rules and returns a ready
// Position. Crazyhouse FENs carry a "[...]" hand suffix glued onto the
// piece-placement field (the usual x-FEN convention); Chess960 castling
// fields may name the rook's file letter instead of K/Q/k/q.
func ParseFEN(fen string, v Variant) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return nil, errors.New("movegen: invalid FEN: not enough fields")
	}

	pos := NewPosition(v)
	pos.epSquare = NoSquare

	placement := fields[0]
	var handField string
	if v == Crazyhouse {
		if i := strings.IndexByte(placement, '['); i >= 0 {
			j := strings.IndexByte(placement, ']')
			if j < i {
				return nil, errors.New("movegen: invalid FEN: unterminated hand field")
			}
			handField = placement[i+1 : j]
			placement = placement[:i]
		}
	}

	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, errors.New("movegen: invalid FEN: incorrect number of ranks")
	}
	for i, rankStr := range ranks {
		if len(rankStr) == 0 {
			return nil, errors.New("movegen: invalid FEN: empty rank description")
		}
		rankIndex := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			piece := pieceFromChar(ch)
			if piece == NoPiece {
				return nil, errors.New("movegen: invalid FEN: unrecognized piece character")
			}
			if file >= 8 {
				return nil, errors.New("movegen: invalid FEN: too many squares in rank")
			}
			sq := Square(rankIndex*8 + file)
			pos.addPiece(sq, piece)
			file++
		}
		if file != 8 {
			return nil, errors.New("movegen: invalid FEN: rank does not have 8 columns")
		}
	}

	if k := pos.kings[White]; k.PopCount() == 1 {
		pos.kingHome[White] = k.LSB()
	}
	if k := pos.kings[Black]; k.PopCount() == 1 {
		pos.kingHome[Black] = k.LSB()
	}

	switch fields[1] {
	case "w":
		pos.sideToMove = White
	case "b":
		pos.sideToMove = Black
	default:
		return nil, errors.New("movegen: invalid FEN: side to move must be 'w' or 'b'")
	}

	if err := pos.parseCastling(fields[2]); err != nil {
		return nil, err
	}

	if fields[3] != "-" {
		if len(fields[3]) != 2 {
			return nil, errors.New("movegen: invalid FEN: invalid en passant square")
		}
		fc, rc := fields[3][0], fields[3][1]
		if fc < 'a' || fc > 'h' || rc < '1' || rc > '8' {
			return nil, errors.New("movegen: invalid FEN: en passant square out of range")
		}
		pos.epSquare = Square(int(rc-'1')*8 + int(fc-'a'))
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return nil, errors.New("movegen: invalid FEN: halfmove clock is not a number")
		}
		pos.halfmoveClock = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return nil, errors.New("movegen: invalid FEN: fullmove number is not a number")
		}
		pos.fullmoveNumber = n
	} else {
		pos.fullmoveNumber = 1
	}

	if v == Crazyhouse {
		for _, ch := range handField {
			p := pieceFromChar(ch)
			if p == NoPiece {
				return nil, errors.New("movegen: invalid FEN: unrecognized hand piece")
			}
			pos.hand[p.Color()][p.Type()]++
		}
	}

	pos.zobristKey = pos.ComputeZobrist()
	return pos, nil
}

// parseCastling accepts both standard KQkq and Chess960 shredder-style
// (A-H for White's rook file, a-h for Black's) castling fields.
func (pos *Position) parseCastling(field string) error {
	pos.castlingRights = 0
	if field == "-" {
		return nil
	}
	for _, ch := range field {
		switch ch {
		case 'K':
			pos.setCastlingRight(WhiteOO, pos.outermostRookFile(White, true))
		case 'Q':
			pos.setCastlingRight(WhiteOOO, pos.outermostRookFile(White, false))
		case 'k':
			pos.setCastlingRight(BlackOO, pos.outermostRookFile(Black, true))
		case 'q':
			pos.setCastlingRight(BlackOOO, pos.outermostRookFile(Black, false))
		default:
			pos.chess960 = true
			if err := pos.parseShredderCastling(ch); err != nil {
				return err
			}
		}
	}
	return nil
}

func (pos *Position) parseShredderCastling(ch rune) error {
	var c Color
	var file int
	switch {
	case ch >= 'A' && ch <= 'H':
		c, file = White, int(ch-'A')
	case ch >= 'a' && ch <= 'h':
		c, file = Black, int(ch-'a')
	default:
		return errors.New("movegen: invalid FEN: invalid castling rights character")
	}
	kingFile := pos.kingHome[c].File()
	kingSide, queenSide := CastlingRightsFor(c)
	homeRank := 0
	if c == Black {
		homeRank = 7
	}
	rookSq := Square(homeRank*8 + file)
	if file > kingFile {
		pos.setCastlingRight(kingSide, rookSq)
	} else {
		pos.setCastlingRight(queenSide, rookSq)
	}
	return nil
}

// outermostRookFile locates the rook a standard K/Q/k/q flag refers to: the
// outermost rook on the back rank on the king's given side, matching x-FEN's
// compatibility rule for castling in non-960 positions.
func (pos *Position) outermostRookFile(c Color, kingSide bool) Square {
	homeRank := 0
	if c == Black {
		homeRank = 7
	}
	kingFile := pos.kingHome[c].File()
	if kingSide {
		for f := 7; f > kingFile; f-- {
			sq := Square(homeRank*8 + f)
			if pos.pieces[sq] == PieceFromType(c, PieceTypeRook) {
				return sq
			}
		}
		return Square(homeRank*8 + 7)
	}
	for f := 0; f < kingFile; f++ {
		sq := Square(homeRank*8 + f)
		if pos.pieces[sq] == PieceFromType(c, PieceTypeRook) {
			return sq
		}
	}
	return Square(homeRank * 8)
}

func (pos *Position) setCastlingRight(cr CastlingRight, rookSq Square) {
	pos.castlingRights |= cr
	pos.castlingRookSq[castlingRightIndex(cr)] = rookSq
}

// FEN renders the position back to FEN, including the Crazyhouse hand
// suffix when the position is a Crazyhouse game.
func (pos *Position) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			p := pos.pieces[sq]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(charFromPiece(p))
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if pos.variant == Crazyhouse {
		sb.WriteByte('[')
		for c := White; c <= Black; c++ {
			for pt := PieceTypePawn; pt <= PieceTypeQueen; pt++ {
				for n := 0; n < pos.hand[c][pt]; n++ {
					sb.WriteRune(charFromPiece(PieceFromType(c, pt)))
				}
			}
		}
		sb.WriteByte(']')
	}
	sb.WriteByte(' ')

	if pos.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')

	if pos.castlingRights == 0 {
		sb.WriteByte('-')
	} else {
		if pos.castlingRights&WhiteOO != 0 {
			sb.WriteByte('K')
		}
		if pos.castlingRights&WhiteOOO != 0 {
			sb.WriteByte('Q')
		}
		if pos.castlingRights&BlackOO != 0 {
			sb.WriteByte('k')
		}
		if pos.castlingRights&BlackOOO != 0 {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')

	if pos.epSquare != NoSquare {
		sb.WriteByte('a' + byte(pos.epSquare.File()))
		sb.WriteByte('1' + byte(pos.epSquare.Rank()))
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.fullmoveNumber))
	return sb.String()
}

func (pos *Position) String() string { return pos.FEN() }
