package bitchess

// UndoRecord carries everything Position.Undo needs to restore a position
// to exactly the state it had before the matching Apply, beyond what the
// move itself already encodes (from/to/piece/promotion).
type UndoRecord struct {
	CastlingBefore [2]CastlingRights
	EPTargetBefore Square
	HalfmoveBefore int

	// Captured is the kind of piece removed from To (or, for en passant,
	// from the square behind To), and NoPiece when the move captured
	// nothing.
	Captured PieceKind
}

// Apply plays mv on p, mutating it in place, and returns the information
// Undo needs to reverse it. Apply never validates mv's legality: it
// trusts that mv came from GenerateLegalMoves (or a value built to the
// same contract).
func (p *Position) Apply(mv Move) UndoRecord {
	us := p.SideToMove
	them := us.Other()
	from, to := mv.From(), mv.To()
	piece := mv.Piece()

	rec := UndoRecord{
		CastlingBefore: p.Castling,
		EPTargetBefore: p.EPTarget,
		HalfmoveBefore: p.HalfmoveClock,
		Captured:       NoPiece,
	}

	epTarget := p.EPTarget
	p.EPTarget = NoSquare

	isEnPassant := piece == Pawn && to == epTarget && epTarget != NoSquare
	if isEnPassant {
		forward := Square(8)
		if us == Black {
			forward = -8
		}
		capturedSq := to - forward
		rec.Captured = Pawn
		p.removePiece(them, Pawn, capturedSq)
	} else if capturedKind, capturedColor, present := p.GetPieceFromSquare(to); present && capturedColor == them {
		rec.Captured = capturedKind
		p.removePiece(them, capturedKind, to)
	}

	p.removePiece(us, piece, from)
	if promo, ok := mv.Promotion(); ok {
		p.placePiece(us, promo, to)
	} else {
		p.placePiece(us, piece, to)
	}

	if piece == Pawn && (to-from == 16 || from-to == 16) {
		p.EPTarget = (from + to) / 2
	}

	if mv.IsCastle() {
		rookFrom, rookTo := castlingRookSquares(us, to)
		p.removePiece(us, Rook, rookFrom)
		p.placePiece(us, Rook, rookTo)
	}

	p.updateCastlingRights(us, them, piece, from, to, rec.Captured)

	if piece == Pawn || rec.Captured != NoPiece {
		p.HalfmoveClock = 0
	} else {
		p.HalfmoveClock++
	}
	if us == Black {
		p.FullmoveNumber++
	}
	p.SideToMove = them

	return rec
}

// Undo reverses mv, which must be the move most recently applied to p (rec
// must be the UndoRecord Apply returned for it).
func (p *Position) Undo(mv Move, rec UndoRecord) {
	them := p.SideToMove
	us := them.Other()
	from, to := mv.From(), mv.To()
	piece := mv.Piece()

	p.SideToMove = us
	p.Castling = rec.CastlingBefore
	p.HalfmoveClock = rec.HalfmoveBefore
	if us == Black {
		p.FullmoveNumber--
	}

	if mv.IsCastle() {
		rookFrom, rookTo := castlingRookSquares(us, to)
		p.removePiece(us, Rook, rookTo)
		p.placePiece(us, Rook, rookFrom)
	}

	if promo, ok := mv.Promotion(); ok {
		p.removePiece(us, promo, to)
	} else {
		p.removePiece(us, piece, to)
	}
	p.placePiece(us, piece, from)

	isEnPassant := piece == Pawn && to == rec.EPTargetBefore && rec.EPTargetBefore != NoSquare
	if isEnPassant {
		forward := Square(8)
		if us == Black {
			forward = -8
		}
		p.placePiece(them, Pawn, to-forward)
	} else if rec.Captured != NoPiece {
		p.placePiece(them, rec.Captured, to)
	}

	p.EPTarget = rec.EPTargetBefore
}

// castlingRookSquares returns the rook's origin and destination squares for
// the castling move that lands the king on kingTo.
func castlingRookSquares(us Color, kingTo Square) (from, to Square) {
	if us == White {
		if kingTo == G1 {
			return H1, F1
		}
		return A1, D1
	}
	if kingTo == G8 {
		return H8, F8
	}
	return A8, D8
}

// updateCastlingRights clears castling rights that the just-applied move
// permanently forfeits: a king or rook moving off its home square, or an
// enemy rook being captured on its own home square.
func (p *Position) updateCastlingRights(us, them Color, piece PieceKind, from, to Square, captured PieceKind) {
	if captured == Rook {
		clearRookRight(&p.Castling[them], them, to)
	}
	if piece == King {
		p.Castling[us] = CastlingRights{}
		return
	}
	if piece == Rook {
		clearRookRight(&p.Castling[us], us, from)
	}
}

func clearRookRight(rights *CastlingRights, c Color, sq Square) {
	homeKingSide, homeQueenSide := H1, A1
	if c == Black {
		homeKingSide, homeQueenSide = H8, A8
	}
	switch sq {
	case homeKingSide:
		rights.KingSide = false
	case homeQueenSide:
		rights.QueenSide = false
	}
}
