package chego

import "testing"

func TestParseFEN(t *testing.T) {
	testcases := []struct {
		fen            string
		activeColor    Color
		castlingRights CastlingRights
		epTarget       Square
		halfmoveCnt    int
		fullmoveCnt    int
		pieceAtE1      Piece
		pieceAtE8      Piece
	}{
		{
			InitialPos,
			ColorWhite, 0xF, NoSquare, 0, 2,
			WhiteKing, BlackKing,
		},
		{
			"rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			ColorBlack, 0xF, SE3, 0, 3,
			WhiteKing, BlackKing,
		},
		{
			"4k3/8/8/8/8/3P4/2K5/8 w - - 0 64",
			ColorWhite, 0, NoSquare, 0, 128,
			PieceNone, BlackKing,
		},
	}

	for _, tc := range testcases {
		p, err := ParseFEN(tc.fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", tc.fen, err)
		}
		if p.ActiveColor != tc.activeColor {
			t.Errorf("%q: ActiveColor = %d, want %d", tc.fen, p.ActiveColor, tc.activeColor)
		}
		if p.CastlingRights != tc.castlingRights {
			t.Errorf("%q: CastlingRights = %d, want %d", tc.fen, p.CastlingRights, tc.castlingRights)
		}
		if p.EPTarget != tc.epTarget {
			t.Errorf("%q: EPTarget = %d, want %d", tc.fen, p.EPTarget, tc.epTarget)
		}
		if p.HalfmoveCnt != tc.halfmoveCnt {
			t.Errorf("%q: HalfmoveCnt = %d, want %d", tc.fen, p.HalfmoveCnt, tc.halfmoveCnt)
		}
		if p.FullmoveCnt != tc.fullmoveCnt {
			t.Errorf("%q: FullmoveCnt = %d, want %d", tc.fen, p.FullmoveCnt, tc.fullmoveCnt)
		}
		if p.PieceAt(SE1) != tc.pieceAtE1 {
			t.Errorf("%q: piece at e1 = %d, want %d", tc.fen, p.PieceAt(SE1), tc.pieceAtE1)
		}
		if p.PieceAt(SE8) != tc.pieceAtE8 {
			t.Errorf("%q: piece at e8 = %d, want %d", tc.fen, p.PieceAt(SE8), tc.pieceAtE8)
		}
		if got := zobristKey(&p); got != p.HashKey {
			t.Errorf("%q: HashKey = %#x, recompute = %#x", tc.fen, p.HashKey, got)
		}
	}
}

// A "dead" en-passant field (no enemy pawn can actually play the capture)
// must not be retained, per the hashing discipline spec calls out.
func TestParseFENDropsDeadEnPassant(t *testing.T) {
	p, err := ParseFEN("4k3/8/8/8/8/8/4P3/4K3 w - e6 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if p.EPTarget != NoSquare {
		t.Fatalf("expected dead EP field to be dropped, got EPTarget=%d", p.EPTarget)
	}
}

func TestParseFENErrors(t *testing.T) {
	testcases := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",    // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1",   // rank short a file
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNRR w KQkq - 0 1", // rank overflows
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",           // too few ranks
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",  // bad active color
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XQkq - 0 1",  // bad castling char
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", // bad EP square
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", // negative halfmove
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",  // zero fullmove
	}

	for _, fen := range testcases {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q): expected error, got none", fen)
		}
	}
}

func TestSerializeFENRoundTrip(t *testing.T) {
	testcases := []string{
		InitialPos,
		"r1bk3r/ppqpbQpp/2p4n/6B1/2BpP3/3P1P2/PPP3PP/RN3RK1 w - - 0 1",
		"rnbqkbnr/pppppp1p/8/8/5Pp1/8/PPPPP1PP/RNBQKBNR b KQkq f3 0 1",
		"4k3/8/8/8/8/3P4/2K5/8 w - - 0 64",
	}

	for _, fen := range testcases {
		p, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := SerializeFEN(p); got != fen {
			t.Errorf("round trip: expected %q, got %q", fen, got)
		}
	}
}

func BenchmarkParseFEN(b *testing.B) {
	for b.Loop() {
		ParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	}
}

func BenchmarkSerializeFEN(b *testing.B) {
	p, _ := ParseFEN(InitialPos)
	for b.Loop() {
		SerializeFEN(p)
	}
}
