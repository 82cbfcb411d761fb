package chego

import "testing"

func TestMakeMoveUnmakeMove(t *testing.T) {
	testcases := []struct {
		name     string
		fenStr   string
		expected string
		move     Move
	}{
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
			"rnbqkbnr/ppp1pppp/8/3P4/2B5/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 1",
			NewMove(SE4, SD5, Pawn),
		},
		{
			"white en passant",
			"rnbqkbnr/pp1ppppp/8/1Pp5/8/8/P1PPPPPP/RNBQKBNR w KQkq c6 0 1",
			"rnbqkbnr/pp1ppppp/2P5/8/8/8/P1PPPPPP/RNBQKBNR b KQkq - 0 1",
			NewMove(SB5, SC6, Pawn),
		},
		{
			"black en passant",
			"rnbqkbnr/pppp1ppp/8/8/4pP2/8/PPPPP1PP/RNBQKBNR b KQkq f3 0 1",
			"rnbqkbnr/pppp1ppp/8/8/8/5p2/PPPPP1PP/RNBQKBNR w KQkq - 0 2",
			NewMove(SE4, SF3, Pawn),
		},
		{
			"capture promotion",
			"rnbqkbnr/ppP1pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R w KQkq - 0 1",
			"rRbqkbnr/pp2pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R b KQkq - 0 1",
			NewPromotionMove(SC7, SB8, Rook),
		},
		{
			"promotion",
			"2bqkbnr/4pppp/8/8/8/3N1N2/PpPP1PPP/R1BQK2R b KQkq - 0 1",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQK2R w KQkq - 0 2",
			NewPromotionMove(SB2, SB1, Queen),
		},
		{
			"white O-O",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQK2R w KQkq - 0 1",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b kq - 1 1",
			NewMove(SE1, SG1, King),
		},
		{
			"black O-O-O",
			"r3kbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b KQkq - 0 1",
			"2kr1bnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 w KQ - 1 2",
			NewMove(SE8, SC8, King),
		},
		{
			"white rook",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
			NewMove(SA1, SB1, Rook),
		},
		{
			"black rook",
			"r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
			"r3k1r1/8/8/8/8/8/8/1R2K2R w Kq - 2 2",
			NewMove(SH8, SG8, Rook),
		},
		{
			"white double pawn push",
			"4k3/8/8/8/3p4/8/4P3/4K3 w - - 0 1",
			"4k3/8/8/8/3pP3/8/8/4K3 b - e3 0 1",
			NewMove(SE2, SE4, Pawn),
		},
		{
			"black double pawn push",
			"4k3/4p3/8/3P4/8/8/8/4K3 b - - 0 1",
			"4k3/8/8/3Pp3/8/8/8/4K3 w - e6 0 2",
			NewMove(SE7, SE5, Pawn),
		},
	}

	for _, tc := range testcases {
		before, err := ParseFEN(tc.fenStr)
		if err != nil {
			t.Fatalf("%s: ParseFEN(%q): %v", tc.name, tc.fenStr, err)
		}

		pos := before
		pos.MakeMove(tc.move)

		got := SerializeFEN(pos)
		if got != tc.expected {
			t.Fatalf("%s: MakeMove: expected %s got %s", tc.name, tc.expected, got)
		}

		pos.UnmakeMove(tc.move)
		if got := SerializeFEN(pos); got != tc.fenStr {
			t.Fatalf("%s: UnmakeMove: expected %s got %s", tc.name, tc.fenStr, got)
		}
		if pos.HashKey != before.HashKey {
			t.Fatalf("%s: UnmakeMove: hash key not restored: %#x want %#x", tc.name, pos.HashKey, before.HashKey)
		}
	}
}

// The starting position's Zobrist key is a Polyglot-compatible fixed value,
// useful as a sanity check that the random table and key assembly match.
func TestZobristStartpos(t *testing.T) {
	p, err := ParseFEN(InitialPos)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	const want = uint64(0x463b96181691fc9c)
	if p.HashKey != want {
		t.Fatalf("startpos HashKey = %#x, want %#x", p.HashKey, want)
	}
}

func TestMakeNullMoveUnmakeNullMove(t *testing.T) {
	p, err := ParseFEN("rnbqkbnr/pp1ppppp/8/1Pp5/8/8/P1PPPPPP/RNBQKBNR w KQkq c6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.EPTarget != SC6 {
		t.Fatalf("setup: EPTarget = %d, want SC6", p.EPTarget)
	}
	before := p

	p.MakeNullMove()
	if p.ActiveColor != ColorBlack {
		t.Fatalf("MakeNullMove: ActiveColor = %d, want %d", p.ActiveColor, ColorBlack)
	}
	if p.EPTarget != NoSquare {
		t.Fatalf("MakeNullMove: EPTarget = %d, want NoSquare", p.EPTarget)
	}

	p.UnmakeNullMove()
	if p.ActiveColor != before.ActiveColor || p.EPTarget != before.EPTarget ||
		p.CastlingRights != before.CastlingRights || p.HalfmoveCnt != before.HalfmoveCnt ||
		p.HashKey != before.HashKey {
		t.Fatalf("UnmakeNullMove did not restore the position exactly")
	}
}

func BenchmarkMakeMove(b *testing.B) {
	before, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1")

	for b.Loop() {
		pos := before
		pos.MakeMove(NewMove(SE1, SG1, King))
	}
}

func BenchmarkMakeUnmakeMove(b *testing.B) {
	before, _ := ParseFEN("rnbqkbnr/pppppppp/8/8/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1")
	m := NewMove(SE1, SG1, King)

	for b.Loop() {
		pos := before
		pos.MakeMove(m)
		pos.UnmakeMove(m)
	}
}
