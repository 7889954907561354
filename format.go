package bitchess

// Debug formatting: a Unicode board printer (grounded on the pack's
// format package, used there to visualize test cases) and the move's
// long-algebraic string form, the only textual contract §6 requires of a
// move ("from-square || to-square || promotion-letter-if-any").

import "strings"

var pieceGlyphs = [2][6]rune{
	White: {'♙', '♘', '♗', '♖', '♕', '♔'},
	Black: {'♟', '♞', '♝', '♜', '♛', '♚'},
}

// String renders p as an 8x8 board with files a-h labeled below, one rank
// per line from the eighth rank down to the first.
func (p *Position) String() string {
	var b strings.Builder
	b.Grow(256)

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte('1' + rank))
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			sq := Square(rank*8 + file)
			symbol := '.'
			if kind, color, present := p.GetPieceFromSquare(sq); present {
				symbol = pieceGlyphs[color][kind]
			}
			b.WriteRune(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\n")

	return b.String()
}

// String renders m in long algebraic form: from-square, to-square, and an
// uppercase promotion letter when m promotes (e.g. "e2e4", "e7e8Q").
func (m Move) String() string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(m.From().String())
	b.WriteString(m.To().String())

	if promo, ok := m.Promotion(); ok {
		switch promo {
		case Knight:
			b.WriteByte('N')
		case Bishop:
			b.WriteByte('B')
		case Rook:
			b.WriteByte('R')
		case Queen:
			b.WriteByte('Q')
		}
	}

	return b.String()
}
