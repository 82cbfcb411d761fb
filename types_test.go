package chego

import "testing"

func TestNewMoveRoundTrip(t *testing.T) {
	testcases := []struct {
		from, to Square
		pt       PieceType
	}{
		{SE2, SE4, Pawn},
		{SG1, SF3, Knight},
		{SE1, SG1, King},
		{SA1, SA8, Rook},
	}

	for _, tc := range testcases {
		m := NewMove(tc.from, tc.to, tc.pt)
		if got := m.From(); got != tc.from {
			t.Errorf("NewMove(%d,%d,%d).From() = %d, want %d", tc.from, tc.to, tc.pt, got, tc.from)
		}
		if got := m.To(); got != tc.to {
			t.Errorf("NewMove(%d,%d,%d).To() = %d, want %d", tc.from, tc.to, tc.pt, got, tc.to)
		}
		if got := m.PieceType(); got != tc.pt {
			t.Errorf("NewMove(%d,%d,%d).PieceType() = %d, want %d", tc.from, tc.to, tc.pt, got, tc.pt)
		}
		if m.IsPromotion() {
			t.Errorf("NewMove(%d,%d,%d).IsPromotion() = true, want false", tc.from, tc.to, tc.pt)
		}
	}
}

func TestNewPromotionMoveRoundTrip(t *testing.T) {
	testcases := []struct {
		from, to  Square
		promoType PieceType
	}{
		{SD7, SE8, Queen},
		{SB2, SB1, Knight},
		{SC7, SC8, Rook},
		{SG7, SH8, Bishop},
	}

	for _, tc := range testcases {
		m := NewPromotionMove(tc.from, tc.to, tc.promoType)
		if !m.IsPromotion() {
			t.Fatalf("NewPromotionMove(%d,%d,%d).IsPromotion() = false, want true", tc.from, tc.to, tc.promoType)
		}
		if got := m.From(); got != tc.from {
			t.Errorf("From() = %d, want %d", got, tc.from)
		}
		if got := m.To(); got != tc.to {
			t.Errorf("To() = %d, want %d", got, tc.to)
		}
		if got := m.PieceType(); got != tc.promoType {
			t.Errorf("PieceType() = %d, want %d", got, tc.promoType)
		}
	}
}

func TestMoveListPush(t *testing.T) {
	var l MoveList
	if l.Len() != 0 {
		t.Fatalf("new MoveList.Len() = %d, want 0", l.Len())
	}

	l.Push(NewMove(SE2, SE4, Pawn))
	l.Push(NewMove(SG1, SF3, Knight))

	if l.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", l.Len())
	}
	if l.Moves[0].Move.From() != SE2 || l.Moves[0].Move.To() != SE4 {
		t.Errorf("first pushed move not preserved correctly")
	}
	if l.Moves[1].Move.PieceType() != Knight {
		t.Errorf("second pushed move's piece type not preserved correctly")
	}
}

func TestNewPieceAndPieceTypeOf(t *testing.T) {
	testcases := []struct {
		color Color
		pt    PieceType
		piece Piece
	}{
		{ColorWhite, Pawn, WhitePawn},
		{ColorWhite, King, WhiteKing},
		{ColorBlack, Pawn, BlackPawn},
		{ColorBlack, Queen, BlackQueen},
	}

	for _, tc := range testcases {
		if got := NewPiece(tc.color, tc.pt); got != tc.piece {
			t.Errorf("NewPiece(%d,%d) = %d, want %d", tc.color, tc.pt, got, tc.piece)
		}
		if got := pieceTypeOf(tc.piece); got != tc.pt {
			t.Errorf("pieceTypeOf(%d) = %d, want %d", tc.piece, got, tc.pt)
		}
	}
}
