package bitchess

// GenerateLegalMoves produces every legal move available to the side to
// move, grouped by piece. Legality is established in a single pass over
// mask composition: the checkmask, pinmasks, and danger mask computed by
// analyze confine each piece's pseudo-legal destinations to exactly its
// legal ones. No move is spun out, applied, and discarded to check for
// self-check; nothing here ever calls Apply.
func GenerateLegalMoves(pos *Position) []PieceMoves {
	us := pos.SideToMove
	U := pos.Occupancy[us]
	O := pos.occupied()
	ks := pos.KingSquare(us)

	an := analyze(pos, us)

	var out []PieceMoves

	kingDests := kingAttacks[ks] &^ U &^ an.Danger
	kingDests |= castlingDestinations(pos, us, an.Danger, O)
	if kingDests != 0 {
		out = append(out, PieceMoves{Piece: King, From: ks, Destinations: kingDests})
	}

	// A king in double check has no response but to move itself: every
	// other piece's destinations would have to simultaneously block or
	// capture two different checkers, which is impossible.
	if an.CheckerCount > 1 {
		return out
	}

	pinned := an.PinOrth | an.PinDiag

	for bb := pos.Pieces[us][Knight] &^ pinned; bb != 0; {
		from := bb.PopLSB()
		dests := knightAttacks[from] & an.CheckMask &^ U
		if dests != 0 {
			out = append(out, PieceMoves{Piece: Knight, From: from, Destinations: dests})
		}
	}

	genSliders(pos, us, Bishop, O, U, &an, &out)
	genSliders(pos, us, Rook, O, U, &an, &out)
	genSliders(pos, us, Queen, O, U, &an, &out)

	genPawnMoves(pos, us, O, &an, &out)

	return out
}

// genSliders appends the legal destinations for every bishop, rook, or
// queen of kind on the board, split into unpinned pieces (free to use
// their full attack set) and pinned pieces (confined to the ray they are
// pinned along, and only if that ray actually matches how the piece
// moves: a diagonally pinned rook or an orthogonally pinned bishop has no
// legal moves at all, since neither can move along the axis it is pinned
// to).
func genSliders(pos *Position, us Color, kind PieceKind, O, U Bitboard, an *analysis, out *[]PieceMoves) {
	pieces := pos.Pieces[us][kind]
	pinned := an.PinOrth | an.PinDiag

	for bb := pieces &^ pinned; bb != 0; {
		from := bb.PopLSB()
		dests := sliderAttacks(kind, from, O) & an.CheckMask &^ U
		if dests != 0 {
			*out = append(*out, PieceMoves{Piece: kind, From: from, Destinations: dests})
		}
	}

	if kind != Bishop {
		for bb := pieces & an.PinOrth &^ an.PinDiag; bb != 0; {
			from := bb.PopLSB()
			dests := lookupRookAttacks(from, O) & an.CheckMask & an.PinOrth &^ U
			if dests != 0 {
				*out = append(*out, PieceMoves{Piece: kind, From: from, Destinations: dests})
			}
		}
	}
	if kind != Rook {
		for bb := pieces & an.PinDiag &^ an.PinOrth; bb != 0; {
			from := bb.PopLSB()
			dests := lookupBishopAttacks(from, O) & an.CheckMask & an.PinDiag &^ U
			if dests != 0 {
				*out = append(*out, PieceMoves{Piece: kind, From: from, Destinations: dests})
			}
		}
	}
}

func sliderAttacks(kind PieceKind, from Square, occ Bitboard) Bitboard {
	switch kind {
	case Bishop:
		return lookupBishopAttacks(from, occ)
	case Rook:
		return lookupRookAttacks(from, occ)
	default:
		return lookupQueenAttacks(from, occ)
	}
}

// genPawnMoves appends the legal destinations of every pawn. Unpinned
// pawns get the full push/double-push/capture/en-passant treatment;
// orthogonally pinned pawns keep only the push component restricted to
// the pin ray (which is non-empty only when the pin runs along the
// pawn's own file); diagonally pinned pawns keep only the capture
// component restricted to the pin ray.
func genPawnMoves(pos *Position, us Color, O Bitboard, an *analysis, out *[]PieceMoves) {
	them := us.Other()
	E := pos.Occupancy[them]
	pawns := pos.Pieces[us][Pawn]
	pinned := an.PinOrth | an.PinDiag

	forward := Square(8)
	startRank := Rank2Mask
	if us == Black {
		forward = -8
		startRank = Rank7Mask
	}

	gen := func(from Square, allowPush bool, pushRay Bitboard, allowCapture bool, capRay Bitboard) {
		var dests Bitboard
		fromBB := SquareBB(from)

		if allowPush {
			to := from + forward
			toBB := SquareBB(to)
			if toBB&O == 0 {
				dests |= toBB & an.CheckMask & pushRay
				if fromBB&startRank != 0 {
					to2 := to + forward
					to2BB := SquareBB(to2)
					if to2BB&O == 0 {
						dests |= to2BB & an.CheckMask & pushRay
					}
				}
			}
		}

		if allowCapture {
			attacks := pawnAttacks[us][from]
			dests |= attacks & E & an.CheckMask & capRay

			if pos.EPTarget != NoSquare && attacks&SquareBB(pos.EPTarget) != 0 && fromBB&an.EPForbidden == 0 {
				capturedSq := pos.EPTarget - forward
				if an.CheckMask&(SquareBB(pos.EPTarget)|SquareBB(capturedSq)) != 0 {
					dests |= SquareBB(pos.EPTarget) & capRay
				}
			}
		}

		if dests != 0 {
			*out = append(*out, PieceMoves{Piece: Pawn, From: from, Destinations: dests})
		}
	}

	for bb := pawns &^ pinned; bb != 0; {
		gen(bb.PopLSB(), true, FullBoard, true, FullBoard)
	}
	for bb := pawns & an.PinOrth &^ an.PinDiag; bb != 0; {
		gen(bb.PopLSB(), true, an.PinOrth, false, 0)
	}
	for bb := pawns & an.PinDiag &^ an.PinOrth; bb != 0; {
		gen(bb.PopLSB(), false, 0, true, an.PinDiag)
	}
}

// Castling path/safety masks. Each "path" mask is the set of squares that
// must be empty; each "safe" mask is the set of squares (including the
// king's current square) that must not be under attack. The king-side
// path and safe masks differ only by the king's own square, because both
// squares the king crosses also need to be empty; queenside they also
// differ because b1/b8 must be
// empty for the rook to pass but need not be free of attack, since the
// king never sets foot there.
const (
	whiteKingSidePath  = Bitboard(1)<<F1 | Bitboard(1)<<G1
	whiteKingSideSafe  = Bitboard(1)<<E1 | Bitboard(1)<<F1 | Bitboard(1)<<G1
	whiteQueenSidePath = Bitboard(1)<<B1 | Bitboard(1)<<C1 | Bitboard(1)<<D1
	whiteQueenSideSafe = Bitboard(1)<<E1 | Bitboard(1)<<D1 | Bitboard(1)<<C1

	blackKingSidePath  = Bitboard(1)<<F8 | Bitboard(1)<<G8
	blackKingSideSafe  = Bitboard(1)<<E8 | Bitboard(1)<<F8 | Bitboard(1)<<G8
	blackQueenSidePath = Bitboard(1)<<B8 | Bitboard(1)<<C8 | Bitboard(1)<<D8
	blackQueenSideSafe = Bitboard(1)<<E8 | Bitboard(1)<<D8 | Bitboard(1)<<C8
)

func castlingDestinations(pos *Position, us Color, danger, O Bitboard) Bitboard {
	var dests Bitboard
	rights := pos.Castling[us]

	if us == White {
		if rights.KingSide && O&whiteKingSidePath == 0 && danger&whiteKingSideSafe == 0 &&
			pos.Pieces[White][Rook]&SquareBB(H1) != 0 {
			dests |= SquareBB(G1)
		}
		if rights.QueenSide && O&whiteQueenSidePath == 0 && danger&whiteQueenSideSafe == 0 &&
			pos.Pieces[White][Rook]&SquareBB(A1) != 0 {
			dests |= SquareBB(C1)
		}
		return dests
	}

	if rights.KingSide && O&blackKingSidePath == 0 && danger&blackKingSideSafe == 0 &&
		pos.Pieces[Black][Rook]&SquareBB(H8) != 0 {
		dests |= SquareBB(G8)
	}
	if rights.QueenSide && O&blackQueenSidePath == 0 && danger&blackQueenSideSafe == 0 &&
		pos.Pieces[Black][Rook]&SquareBB(A8) != 0 {
		dests |= SquareBB(C8)
	}
	return dests
}
