package bitchess

import "testing"

func TestMovePacking(t *testing.T) {
	m := NewMove(Knight, B1, C3)
	if m.From() != B1 {
		t.Errorf("From() = %v, want B1", m.From())
	}
	if m.To() != C3 {
		t.Errorf("To() = %v, want C3", m.To())
	}
	if m.Piece() != Knight {
		t.Errorf("Piece() = %v, want Knight", m.Piece())
	}
	if _, ok := m.Promotion(); ok {
		t.Error("non-promoting move reported a promotion")
	}
}

func TestMovePromotionPacking(t *testing.T) {
	m := NewPromotionMove(A7, A8, Queen)
	if m.Piece() != Pawn {
		t.Errorf("Piece() = %v, want Pawn", m.Piece())
	}
	promo, ok := m.Promotion()
	if !ok || promo != Queen {
		t.Errorf("Promotion() = (%v, %v), want (Queen, true)", promo, ok)
	}
}

func TestMoveIsCastle(t *testing.T) {
	if !NewMove(King, E1, G1).IsCastle() {
		t.Error("e1g1 king move should report IsCastle")
	}
	if !NewMove(King, E1, C1).IsCastle() {
		t.Error("e1c1 king move should report IsCastle")
	}
	if NewMove(King, E1, E2).IsCastle() {
		t.Error("e1e2 king move should not report IsCastle")
	}
	if NewMove(Rook, A1, C1).IsCastle() {
		t.Error("a non-king two-file move should not report IsCastle")
	}
}

func TestPieceMovesLenNonPawn(t *testing.T) {
	pm := PieceMoves{Piece: Rook, From: A1, Destinations: SquareBB(A2) | SquareBB(A3)}
	if got := pm.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestPieceMovesLenPromotion(t *testing.T) {
	pm := PieceMoves{Piece: Pawn, From: A7, Destinations: SquareBB(A8) | SquareBB(B8)}
	if got := pm.Len(); got != 8 {
		t.Errorf("Len() = %d, want 8 (two promotion destinations x4)", got)
	}
}

func TestExpandFlattensPromotions(t *testing.T) {
	groups := []PieceMoves{
		{Piece: Pawn, From: A7, Destinations: SquareBB(A8)},
	}
	moves := Expand(groups)
	if len(moves) != 4 {
		t.Fatalf("Expand produced %d moves, want 4", len(moves))
	}
	seen := map[PieceKind]bool{}
	for _, m := range moves {
		promo, ok := m.Promotion()
		if !ok {
			t.Fatal("expanded pawn move on back rank should always promote")
		}
		seen[promo] = true
	}
	for _, k := range promotionKinds {
		if !seen[k] {
			t.Errorf("Expand missing promotion to %v", k)
		}
	}
}

// TestExpandDoesNotTreatBackRankAsPromotionForNonPawns guards against
// mistaking the destination-square test (Rank1Mask|Rank8Mask) for a
// piece-kind test: a king or rook landing on rank 1 or rank 8 is not a
// promotion and must expand to exactly one move.
func TestExpandDoesNotTreatBackRankAsPromotionForNonPawns(t *testing.T) {
	groups := []PieceMoves{
		{Piece: King, From: E1, Destinations: SquareBB(F1)},
		{Piece: Rook, From: A1, Destinations: SquareBB(H1) | SquareBB(A8)},
	}
	moves := Expand(groups)
	if len(moves) != 3 {
		t.Fatalf("Expand produced %d moves, want 3 (no back-rank promotion for non-pawns)", len(moves))
	}
	for _, m := range moves {
		if _, ok := m.Promotion(); ok {
			t.Errorf("non-pawn move %v should never report a promotion", m)
		}
	}
}

func TestPlaceRemovePieceKeepsCachesInSync(t *testing.T) {
	var p Position
	p.placePiece(White, Queen, D4)

	kind, color, present := p.GetPieceFromSquare(D4)
	if !present || kind != Queen || color != White {
		t.Fatalf("GetPieceFromSquare(D4) = (%v, %v, %v), want (Queen, White, true)", kind, color, present)
	}
	if p.Occupancy[White]&SquareBB(D4) == 0 {
		t.Error("Occupancy[White] missing d4 after placePiece")
	}

	p.removePiece(White, Queen, D4)
	if _, _, present := p.GetPieceFromSquare(D4); present {
		t.Error("square should be empty after removePiece")
	}
	if p.Occupancy[White]&SquareBB(D4) != 0 {
		t.Error("Occupancy[White] should not have d4 after removePiece")
	}
}

func TestKingSquare(t *testing.T) {
	var p Position
	p.placePiece(White, King, E1)
	p.placePiece(Black, King, E8)
	if got := p.KingSquare(White); got != E1 {
		t.Errorf("KingSquare(White) = %v, want E1", got)
	}
	if got := p.KingSquare(Black); got != E8 {
		t.Errorf("KingSquare(Black) = %v, want E8", got)
	}
}
