package chego

import "testing"

// perft walks the legal-move tree to depth and counts leaf nodes. It is the
// primary correctness oracle for GenLegalMoves: wrong move counts at any
// depth beyond 1 mean the pin/check/en-passant machinery let through an
// illegal move or missed a legal one.
func perft(p Position, depth int) int {
	if depth == 0 {
		return 1
	}

	var l MoveList
	GenLegalMoves(&p, FilterAll, &l)

	if depth == 1 {
		return l.Count
	}

	nodes := 0
	for i := 0; i < l.Count; i++ {
		child := p
		child.MakeMove(l.Moves[i].Move)
		nodes += perft(child, depth-1)
	}
	return nodes
}

func TestPerft(t *testing.T) {
	testcases := []struct {
		name  string
		fen   string
		depth int
		want  int
	}{
		{"startpos depth 1", InitialPos, 1, 20},
		{"startpos depth 2", InitialPos, 2, 400},
		{"startpos depth 3", InitialPos, 3, 8902},
		{"startpos depth 4", InitialPos, 4, 197281},
		{
			"kiwipete depth 1",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			1, 48,
		},
		{
			"kiwipete depth 2",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			2, 2039,
		},
		{
			"kiwipete depth 3",
			"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
			3, 97862,
		},
		{
			"en passant and pin pathology depth 4",
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			4, 43238,
		},
		{
			"en passant and pin pathology depth 5",
			"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
			5, 674624,
		},
	}

	for _, tc := range testcases {
		p, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("%s: ParseFEN(%q): %v", tc.name, tc.fen, err)
		}
		if got := perft(p, tc.depth); got != tc.want {
			t.Errorf("%s: perft(%d) = %d, want %d", tc.name, tc.depth, got, tc.want)
		}
	}
}

// A horizontally pinned en-passant capture must be excluded even though
// neither pawn individually blocks the rook's check on the king.
func TestEnPassantHorizontalPin(t *testing.T) {
	p, err := ParseFEN("7k/8/8/K1Pp3r/8/8/8/8 w - d6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var l MoveList
	GenLegalMoves(&p, FilterAll, &l)

	if l.Count != 6 {
		t.Fatalf("expected 6 legal moves, got %d", l.Count)
	}

	for i := 0; i < l.Count; i++ {
		m := l.Moves[i].Move
		if m.PieceType() == Pawn && m.From() == SC5 && m.To() == SD6 {
			t.Fatalf("en-passant capture d6 should be illegal (horizontal pin), but was generated")
		}
	}
}

func TestHasLegalMovesMatchesGenLegalMoves(t *testing.T) {
	testcases := []string{
		InitialPos,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", // checkmate
		"7k/8/6Q1/8/8/8/8/6K1 b - - 0 1",    // stalemate
	}

	for _, fen := range testcases {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		var l MoveList
		GenLegalMoves(&p, FilterAll, &l)

		want := l.Count > 0
		if got := HasLegalMoves(&p); got != want {
			t.Errorf("%q: HasLegalMoves = %v, want %v", fen, got, want)
		}
	}
}

func TestGenLegalMovesFilter(t *testing.T) {
	p, err := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	var all, captures, quiets MoveList
	GenLegalMoves(&p, FilterAll, &all)
	GenLegalMoves(&p, FilterCapture, &captures)
	GenLegalMoves(&p, FilterQuiet, &quiets)

	if captures.Count+quiets.Count != all.Count {
		t.Fatalf("FilterCapture (%d) + FilterQuiet (%d) != FilterAll (%d)",
			captures.Count, quiets.Count, all.Count)
	}

	for i := 0; i < captures.Count; i++ {
		m := captures.Moves[i].Move
		captured := p.PieceAt(m.To())
		isEP := m.PieceType() == Pawn && captured == PieceNone && m.To() == p.EPTarget
		if captured == PieceNone && !isEP {
			t.Errorf("FilterCapture produced a non-capture move %s", Move2UCI(m))
		}
	}
}

func BenchmarkGenLegalMoves(b *testing.B) {
	p, _ := ParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")

	for b.Loop() {
		var l MoveList
		GenLegalMoves(&p, FilterAll, &l)
	}
}

func BenchmarkPerft(b *testing.B) {
	p, _ := ParseFEN(InitialPos)

	for b.Loop() {
		perft(p, 4)
	}
}

func BenchmarkLookupBishopAttacks(b *testing.B) {
	for b.Loop() {
		lookupBishopAttacks(SD5, 0)
	}
}

func BenchmarkLookupRookAttacks(b *testing.B) {
	for b.Loop() {
		lookupRookAttacks(SD5, 0)
	}
}

func BenchmarkLookupQueenAttacks(b *testing.B) {
	for b.Loop() {
		lookupQueenAttacks(SD5, 0)
	}
}
