package bitchess

// Zobrist hashing: a Position.Hash() primitive only. Folding this into
// repetition or draw adjudication is explicitly out of scope; callers
// that want threefold-repetition detection can key their own table off
// Hash() without this package needing to know about it.

import "math/rand/v2"

var (
	pieceKeys    = initPieceKeys()
	epKeys       = initEPKeys()
	castlingKeys = initCastlingKeys()
	colorKey     = rand.Uint64()
)

func initPieceKeys() [2][6][64]uint64 {
	var keys [2][6][64]uint64
	for c := range keys {
		for k := range keys[c] {
			for sq := range keys[c][k] {
				keys[c][k][sq] = rand.Uint64()
			}
		}
	}
	return keys
}

func initEPKeys() [64]uint64 {
	var keys [64]uint64
	for sq := range keys {
		keys[sq] = rand.Uint64()
	}
	return keys
}

// castlingKeys is indexed by a 4-bit code: bit0 white kingside, bit1
// white queenside, bit2 black kingside, bit3 black queenside.
func initCastlingKeys() [16]uint64 {
	var keys [16]uint64
	for i := range keys {
		keys[i] = rand.Uint64()
	}
	return keys
}

func castlingCode(c [2]CastlingRights) int {
	code := 0
	if c[White].KingSide {
		code |= 1
	}
	if c[White].QueenSide {
		code |= 2
	}
	if c[Black].KingSide {
		code |= 4
	}
	if c[Black].QueenSide {
		code |= 8
	}
	return code
}

// Hash computes a Zobrist hash of p: two positions that agree on piece
// placement, en-passant target, castling rights, and side to move hash to
// the same value, independent of move-count fields.
func (p *Position) Hash() uint64 {
	var key uint64
	for c := range p.Pieces {
		for k := range p.Pieces[c] {
			for bb := p.Pieces[c][k]; bb != 0; {
				key ^= pieceKeys[c][k][bb.PopLSB()]
			}
		}
	}

	if p.EPTarget != NoSquare {
		key ^= epKeys[p.EPTarget]
	}

	key ^= castlingKeys[castlingCode(p.Castling)]

	if p.SideToMove == Black {
		key ^= colorKey
	}

	return key
}
