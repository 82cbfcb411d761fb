package chego

import "testing"

func TestMove2UCI(t *testing.T) {
	testcases := []struct {
		move     Move
		expected string
	}{
		{NewMove(SE2, SE4, Pawn), "e2e4"},
		{NewMove(SE1, SG1, King), "e1g1"},
		{NewMove(SE8, SC8, King), "e8c8"},
		{NewPromotionMove(SD7, SE8, Queen), "d7e8q"},
		{NewPromotionMove(SA7, SA8, Knight), "a7a8n"},
	}

	for _, tc := range testcases {
		if got := Move2UCI(tc.move); got != tc.expected {
			t.Errorf("Move2UCI(%v) = %q, want %q", tc.move, got, tc.expected)
		}
	}
}

func BenchmarkMove2UCI(b *testing.B) {
	m := NewPromotionMove(SD7, SE8, Queen)
	for b.Loop() {
		Move2UCI(m)
	}
}
