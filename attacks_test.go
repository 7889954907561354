package bitchess

import "testing"

func TestGenKnightAttacksCorner(t *testing.T) {
	got := genKnightAttacks(SquareBB(A1))
	want := SquareBB(B3) | SquareBB(C2)
	if got != want {
		t.Errorf("knight attacks from a1 = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestGenKingAttacksCorner(t *testing.T) {
	got := genKingAttacks(SquareBB(A1))
	want := SquareBB(A2) | SquareBB(B2) | SquareBB(B1)
	if got != want {
		t.Errorf("king attacks from a1 = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestGenPawnAttacksColors(t *testing.T) {
	white := genPawnAttacks(SquareBB(D4), White)
	if want := SquareBB(C5) | SquareBB(E5); white != want {
		t.Errorf("white pawn attacks from d4 = %#x, want %#x", uint64(white), uint64(want))
	}
	black := genPawnAttacks(SquareBB(D4), Black)
	if want := SquareBB(C3) | SquareBB(E3); black != want {
		t.Errorf("black pawn attacks from d4 = %#x, want %#x", uint64(black), uint64(want))
	}
}

func TestReferenceBishopAttacksEmptyBoard(t *testing.T) {
	got := referenceBishopAttacks(SquareBB(D4), 0)
	want := SquareBB(A1) | SquareBB(B2) | SquareBB(C3) | SquareBB(E5) | SquareBB(F6) | SquareBB(G7) | SquareBB(H8) |
		SquareBB(A7) | SquareBB(B6) | SquareBB(C5) | SquareBB(E3) | SquareBB(F2) | SquareBB(G1)
	if got != want {
		t.Errorf("bishop attacks from d4 (empty board) = %#x, want %#x", uint64(got), uint64(want))
	}
}

func TestReferenceBishopAttacksBlocked(t *testing.T) {
	occ := SquareBB(F6)
	got := referenceBishopAttacks(SquareBB(D4), occ)
	if got&SquareBB(G7) != 0 {
		t.Errorf("bishop attacks should stop at first blocker f6, found g7 beyond it")
	}
	if got&SquareBB(F6) == 0 {
		t.Errorf("bishop attacks should include the blocking square f6 itself")
	}
}

func TestReferenceRookAttacksEmptyBoard(t *testing.T) {
	got := referenceRookAttacks(SquareBB(D4), 0)
	if got.Count() != 14 {
		t.Errorf("rook on d4 with empty board should see 14 squares, got %d", got.Count())
	}
}

func TestReferenceRookAttacksBlocked(t *testing.T) {
	occ := SquareBB(D6)
	got := referenceRookAttacks(SquareBB(D4), occ)
	if got&SquareBB(D8) != 0 {
		t.Errorf("rook attacks should stop at first blocker d6, found d8 beyond it")
	}
	if got&SquareBB(D6) == 0 {
		t.Errorf("rook attacks should include the blocking square d6 itself")
	}
}

func TestBishopBlockerMaskExcludesEdges(t *testing.T) {
	mask := bishopBlockerMask(SquareBB(D4))
	edges := []Square{A1, H8, A7, G1}
	for _, sq := range edges {
		if mask.Has(sq) {
			t.Errorf("bishop blocker mask for d4 should exclude rim square %v", sq)
		}
	}
}

func TestRookBlockerMaskExcludesEdges(t *testing.T) {
	mask := rookBlockerMask(SquareBB(D4))
	edges := []Square{D1, D8, A4, H4}
	for _, sq := range edges {
		if mask.Has(sq) {
			t.Errorf("rook blocker mask for d4 should exclude rim square %v", sq)
		}
	}
}
