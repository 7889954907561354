package bitchess

// Square is a board square index: a1=0, b1=1, ..., h1=7, a2=8, ..., h8=63.
type Square int8

// NoSquare marks the absence of a square, e.g. an unset en-passant target.
const NoSquare Square = -1

// Square name constants, usable as array indices into [Square2String] and
// similar per-square tables.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// File returns the file of sq, 0 (a-file) through 7 (h-file).
func (sq Square) File() int { return int(sq) % 8 }

// Rank returns the rank of sq, 0 (first rank) through 7 (eighth rank).
func (sq Square) Rank() int { return int(sq) / 8 }

// Square2String maps each square index to its algebraic name.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// String returns the algebraic name of sq, or "-" for NoSquare.
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return Square2String[sq]
}

func squareFromString(s string) Square {
	if s == "-" || len(s) != 2 {
		return NoSquare
	}
	if s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	return Square(rank*8 + file)
}

// sameLine reports whether a and b share a rank, a file, or either
// diagonal, which is the precondition for [SquaresBetween] to be non-empty.
func sameLine(a, b Square) (rank, file, diagUp, diagDown bool) {
	return a.Rank() == b.Rank(),
		a.File() == b.File(),
		a.Rank()-a.File() == b.Rank()-b.File(),
		a.Rank()+a.File() == b.Rank()+b.File()
}

// squaresBetweenTable[a][b] holds the open interval of squares strictly
// between a and b when they share a rank, file, or diagonal, empty otherwise.
// It is precomputed once at package init since it never depends on board
// state: the geometry of the 64-square board is fixed.
var squaresBetweenTable = buildSquaresBetween()

func buildSquaresBetween() [64][64]Bitboard {
	var table [64][64]Bitboard
	for a := Square(0); a < 64; a++ {
		for b := Square(0); b < 64; b++ {
			if a == b {
				continue
			}
			rank, file, diagUp, diagDown := sameLine(a, b)
			if !rank && !file && !diagUp && !diagDown {
				continue
			}
			step := lineStep(a, b, rank, file, diagUp, diagDown)
			var between Bitboard
			for s := a + step; s != b; s += step {
				between = between.Set(s)
			}
			table[a][b] = between
		}
	}
	return table
}

func lineStep(a, b Square, rank, file, diagUp, diagDown bool) Square {
	switch {
	case rank:
		if b > a {
			return 1
		}
		return -1
	case file:
		if b > a {
			return 8
		}
		return -8
	case diagUp:
		if b > a {
			return 9
		}
		return -9
	case diagDown:
		if b > a {
			return 7
		}
		return -7
	}
	return 0
}

// SquaresBetween returns the open interval of squares strictly between a and
// b. It is empty when a and b do not share a rank, file, or diagonal, and
// also empty when a and b are adjacent.
func SquaresBetween(a, b Square) Bitboard {
	return squaresBetweenTable[a][b]
}
