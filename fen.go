package bitchess

// Forsyth-Edwards Notation parsing and serialization. FEN itself is outside
// the move generator's core contract (the generator consumes a Position,
// however it was built) but every test fixture and scenario in this
// package is most naturally expressed as a FEN string, so a small,
// strict parser lives here rather than being pushed onto every caller.

import (
	"fmt"
	"strconv"
	"strings"
)

var fenPieceKinds = map[byte]PieceKind{
	'p': Pawn, 'n': Knight, 'b': Bishop, 'r': Rook, 'q': Queen, 'k': King,
}

// ParseFEN parses a standard six-field FEN string into a Position. It
// returns an error, rather than panicking, on missing fields, illegal
// rank lengths, symbols outside the piece alphabet, an en-passant square
// that is off the board or does not match the pawn layout, or non-numeric
// move counters. It does not check how many kings each side has, nor
// whether the side not to move is in check.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("bitchess: FEN must have 6 fields, got %d", len(fields))
	}

	var p Position

	if err := parsePlacement(&p, fields[0]); err != nil {
		return Position{}, err
	}

	switch fields[1] {
	case "w":
		p.SideToMove = White
	case "b":
		p.SideToMove = Black
	default:
		return Position{}, fmt.Errorf("bitchess: invalid side to move %q", fields[1])
	}

	for _, c := range fields[2] {
		switch c {
		case 'K':
			p.Castling[White].KingSide = true
		case 'Q':
			p.Castling[White].QueenSide = true
		case 'k':
			p.Castling[Black].KingSide = true
		case 'q':
			p.Castling[Black].QueenSide = true
		case '-':
		default:
			return Position{}, fmt.Errorf("bitchess: invalid castling field %q", fields[2])
		}
	}

	p.EPTarget = squareFromString(fields[3])
	if fields[3] != "-" && p.EPTarget == NoSquare {
		return Position{}, fmt.Errorf("bitchess: invalid en-passant square %q", fields[3])
	}
	if p.EPTarget != NoSquare {
		epRank, pawnSq, pawnColor := 5, p.EPTarget-8, Black
		if p.SideToMove == Black {
			epRank, pawnSq, pawnColor = 2, p.EPTarget+8, White
		}
		if p.EPTarget.Rank() != epRank || !p.Pieces[pawnColor][Pawn].Has(pawnSq) {
			return Position{}, fmt.Errorf("bitchess: en-passant square %q does not match the pawn layout", fields[3])
		}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return Position{}, fmt.Errorf("bitchess: invalid halfmove clock %q", fields[4])
	}
	p.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return Position{}, fmt.Errorf("bitchess: invalid fullmove number %q", fields[5])
	}
	p.FullmoveNumber = fullmove

	return p, nil
}

func parsePlacement(p *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("bitchess: piece placement must have 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				kind, ok := fenPieceKinds[lower(c)]
				if !ok {
					return fmt.Errorf("bitchess: invalid piece symbol %q", c)
				}
				if file >= 8 {
					return fmt.Errorf("bitchess: rank %d overflows 8 files", rank+1)
				}
				color := Black
				if c >= 'A' && c <= 'Z' {
					color = White
				}
				p.placePiece(color, kind, Square(rank*8+file))
				file++
			}
		}
		if file != 8 {
			return fmt.Errorf("bitchess: rank %d has %d files, want 8", rank+1, file)
		}
	}
	return nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// SerializeFEN renders p as a standard six-field FEN string.
func SerializeFEN(p *Position) string {
	var b strings.Builder
	b.Grow(64)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			kind, color, present := p.GetPieceFromSquare(sq)
			if !present {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(pieceSymbols[color][kind])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	if p.SideToMove == White {
		b.WriteString(" w ")
	} else {
		b.WriteString(" b ")
	}

	wrote := false
	if p.Castling[White].KingSide {
		b.WriteByte('K')
		wrote = true
	}
	if p.Castling[White].QueenSide {
		b.WriteByte('Q')
		wrote = true
	}
	if p.Castling[Black].KingSide {
		b.WriteByte('k')
		wrote = true
	}
	if p.Castling[Black].QueenSide {
		b.WriteByte('q')
		wrote = true
	}
	if !wrote {
		b.WriteByte('-')
	}
	b.WriteByte(' ')

	b.WriteString(p.EPTarget.String())
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.HalfmoveClock))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(p.FullmoveNumber))

	return b.String()
}
