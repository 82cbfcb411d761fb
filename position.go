/*
position.go defines the Position structure: piece bitboards plus a redundant
square array, and the make/unmake pair that keeps the Zobrist hash correct
incrementally rather than by full recomputation.
*/

package chego

// undoState is the irreversible-field snapshot pushed by MakeMove/MakeNullMove
// and popped by the matching unmake call. Bitboards need no snapshot: the
// move itself carries enough information (from, to, piece-type, promotion
// flag) to reconstruct the board edits in reverse.
type undoState struct {
	EPTarget       Square
	CastlingRights CastlingRights
	HalfmoveCnt    int
	Captured       Piece
	HashBefore     uint64
}

/*
Position is a chessboard state: twelve piece bitboards, a 64-square piece
array kept coherent with them for O(1) square lookup, derived per-color and
combined occupancy, and the bookkeeping (castling, en passant, clocks,
incremental Zobrist hash, undo stack, hash history) needed to make and unmake
moves without ever copying the whole board.
*/
type Position struct {
	Bitboards [12]uint64
	Squares   [64]Piece

	WhiteBB, BlackBB, AllBB uint64

	ActiveColor    Color
	CastlingRights CastlingRights
	EPTarget       Square
	HalfmoveCnt    int
	// FullmoveCnt is, despite the name (kept for FEN-field parity), a
	// half-move ply counter internally: it increments once per MakeMove
	// call. The FEN loader stores twice the FEN fullmove value here, plus
	// one if Black is to move (so the parity always matches ActiveColor);
	// the writer emits half of it back out.
	FullmoveCnt int

	HashKey     uint64
	HashHistory []uint64

	prevStates []undoState
}

// occupancyOf returns the combined occupancy of color c.
func (p *Position) occupancyOf(c Color) uint64 {
	if c == ColorWhite {
		return p.WhiteBB
	}
	return p.BlackBB
}

// PieceAt returns the piece standing on sq, or PieceNone.
func (p *Position) PieceAt(sq Square) Piece { return p.Squares[sq] }

func (p *Position) placePieceOnBoard(piece Piece, sq Square) {
	bb := uint64(1) << sq
	p.Bitboards[piece] |= bb
	p.Squares[sq] = piece
	if piece < 6 {
		p.WhiteBB |= bb
	} else {
		p.BlackBB |= bb
	}
	p.AllBB |= bb
}

func (p *Position) removePieceOnBoard(piece Piece, sq Square) {
	bb := uint64(1) << sq
	p.Bitboards[piece] &^= bb
	p.Squares[sq] = PieceNone
	if piece < 6 {
		p.WhiteBB &^= bb
	} else {
		p.BlackBB &^= bb
	}
	p.AllBB &^= bb
}

func (p *Position) movePieceOnBoard(piece Piece, from, to Square) {
	p.removePieceOnBoard(piece, from)
	p.placePieceOnBoard(piece, to)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// castlingRookSquares returns the rook's origin and destination for a castle
// whose king lands on kingTo.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SG1:
		return SH1, SF1
	case SC1:
		return SA1, SD1
	case SG8:
		return SH8, SF8
	case SC8:
		return SA8, SD8
	}
	panic("chego: castlingRookSquares called with a non-castling king square")
}

// epCapturable reports whether a pawn of the color opposite pawnColor (the
// side about to move) stands diagonally behind sq, i.e. whether the
// en-passant capture onto sq would be playable. Only then does the position hash the EP file, matching
// the Polyglot discipline.
func (p *Position) epCapturable(sq Square, pawnColor Color) bool {
	capturer := opposite(pawnColor)
	return pawnAttacks[pawnColor][sq]&p.Bitboards[NewPiece(capturer, Pawn)] != 0
}

// updateCastlingRights drops rights invalidated by this move: the mover
// vacating e1/e8, a rook leaving a1/h1/a8/h8, or a rook being captured there.
func (p *Position) updateCastlingRights(pt PieceType, moved Piece, from, to Square, captured Piece) {
	if pt == King {
		if moved < 6 {
			p.CastlingRights &^= CastlingWhiteShort | CastlingWhiteLong
		} else {
			p.CastlingRights &^= CastlingBlackShort | CastlingBlackLong
		}
	}
	switch from {
	case SA1:
		p.CastlingRights &^= CastlingWhiteLong
	case SH1:
		p.CastlingRights &^= CastlingWhiteShort
	case SA8:
		p.CastlingRights &^= CastlingBlackLong
	case SH8:
		p.CastlingRights &^= CastlingBlackShort
	}
	if captured != PieceNone {
		switch to {
		case SA1:
			p.CastlingRights &^= CastlingWhiteLong
		case SH1:
			p.CastlingRights &^= CastlingWhiteShort
		case SA8:
			p.CastlingRights &^= CastlingBlackLong
		case SH8:
			p.CastlingRights &^= CastlingBlackShort
		}
	}
}

/*
MakeMove applies m to the position, maintaining the Zobrist hash
incrementally. The caller must pass only a move produced by [GenLegalMoves]
(or another legal move list) for this exact position; behaviour on any other
input is undefined.
*/
func (p *Position) MakeMove(m Move) {
	from, to := m.From(), m.To()
	color := p.ActiveColor
	moved := p.Squares[from]
	pt := pieceTypeOf(moved)
	captured := p.Squares[to]
	isEP := pt == Pawn && p.EPTarget != NoSquare && to == p.EPTarget

	p.prevStates = append(p.prevStates, undoState{
		EPTarget:       p.EPTarget,
		CastlingRights: p.CastlingRights,
		HalfmoveCnt:    p.HalfmoveCnt,
		Captured:       captured,
		HashBefore:     p.HashKey,
	})
	p.HashHistory = append(p.HashHistory, p.HashKey)

	p.HalfmoveCnt++
	p.FullmoveCnt++

	if p.EPTarget != NoSquare {
		p.HashKey ^= epKey(p.EPTarget)
	}
	p.EPTarget = NoSquare

	p.HashKey ^= castlingKeyTable[p.CastlingRights]

	if pt == King && abs(to-from) == 2 {
		rookFrom, rookTo := castlingRookSquares(to)
		rook := NewPiece(color, Rook)
		p.HashKey ^= pieceKey(rook, rookFrom)
		p.HashKey ^= pieceKey(rook, rookTo)
		p.movePieceOnBoard(rook, rookFrom, rookTo)
	}

	p.updateCastlingRights(pt, moved, from, to, captured)

	if pt == Pawn {
		p.HalfmoveCnt = 0
		if isEP {
			capSq := to - 8
			if color == ColorBlack {
				capSq = to + 8
			}
			capturedPawn := NewPiece(opposite(color), Pawn)
			p.HashKey ^= pieceKey(capturedPawn, capSq)
			p.removePieceOnBoard(capturedPawn, capSq)
		} else if abs(to-from) == 16 {
			epSquare := (from + to) / 2
			if p.epCapturable(epSquare, color) {
				p.EPTarget = epSquare
				p.HashKey ^= epKey(epSquare)
			}
		}
	}

	if captured != PieceNone && !isEP {
		p.HashKey ^= pieceKey(captured, to)
		p.HalfmoveCnt = 0
		p.removePieceOnBoard(captured, to)
	}

	p.HashKey ^= pieceKey(moved, from)
	p.removePieceOnBoard(moved, from)

	placed := moved
	if m.IsPromotion() {
		placed = NewPiece(color, m.PieceType())
	}
	p.HashKey ^= pieceKey(placed, to)
	p.placePieceOnBoard(placed, to)

	p.HashKey ^= sideKey
	p.HashKey ^= castlingKeyTable[p.CastlingRights]

	p.ActiveColor = opposite(color)
}

// UnmakeMove is the exact inverse of MakeMove, driven by the undo stack.
func (p *Position) UnmakeMove(m Move) {
	n := len(p.prevStates)
	state := p.prevStates[n-1]
	p.prevStates = p.prevStates[:n-1]
	p.HashHistory = p.HashHistory[:len(p.HashHistory)-1]

	color := opposite(p.ActiveColor)
	from, to := m.From(), m.To()

	var moved Piece
	if m.IsPromotion() {
		moved = NewPiece(color, Pawn)
		placed := NewPiece(color, m.PieceType())
		p.removePieceOnBoard(placed, to)
		p.placePieceOnBoard(moved, from)
	} else {
		moved = p.Squares[to]
		p.removePieceOnBoard(moved, to)
		p.placePieceOnBoard(moved, from)
	}
	pt := pieceTypeOf(moved)

	if pt == King && abs(to-from) == 2 {
		rookFrom, rookTo := castlingRookSquares(to)
		rook := NewPiece(color, Rook)
		p.removePieceOnBoard(rook, rookTo)
		p.placePieceOnBoard(rook, rookFrom)
	}

	isEP := pt == Pawn && state.EPTarget != NoSquare && to == state.EPTarget
	if isEP {
		capSq := to - 8
		if color == ColorBlack {
			capSq = to + 8
		}
		p.placePieceOnBoard(NewPiece(opposite(color), Pawn), capSq)
	} else if state.Captured != PieceNone {
		p.placePieceOnBoard(state.Captured, to)
	}

	p.EPTarget = state.EPTarget
	p.CastlingRights = state.CastlingRights
	p.HalfmoveCnt = state.HalfmoveCnt
	p.HashKey = state.HashBefore
	p.FullmoveCnt--
	p.ActiveColor = color
}

// MakeNullMove flips the side to move without moving a piece; used by search
// to probe "what if I could pass". Does not touch HashHistory.
func (p *Position) MakeNullMove() {
	p.prevStates = append(p.prevStates, undoState{
		EPTarget:       p.EPTarget,
		CastlingRights: p.CastlingRights,
		HalfmoveCnt:    p.HalfmoveCnt,
		Captured:       PieceNone,
		HashBefore:     p.HashKey,
	})

	if p.EPTarget != NoSquare {
		p.HashKey ^= epKey(p.EPTarget)
	}
	p.EPTarget = NoSquare
	p.HashKey ^= sideKey
	p.ActiveColor = opposite(p.ActiveColor)
}

// UnmakeNullMove is the exact inverse of MakeNullMove.
func (p *Position) UnmakeNullMove() {
	n := len(p.prevStates)
	state := p.prevStates[n-1]
	p.prevStates = p.prevStates[:n-1]

	p.ActiveColor = opposite(p.ActiveColor)
	p.EPTarget = state.EPTarget
	p.CastlingRights = state.CastlingRights
	p.HalfmoveCnt = state.HalfmoveCnt
	p.HashKey = state.HashBefore
}

/*
IsRepetition scans HashHistory backwards in strides of 2 (positions with the
same side to move), stopping at the start of history or at
len(HashHistory)-HalfmoveCnt, whichever bound is reached first — an
irreversible move (pawn push or capture) can never have repeated across it.
Returns true once draw prior occurrences of the current hash are found:
draw=1 reports a two-fold repeat, draw=2 reports three-fold.
*/
func (p *Position) IsRepetition(draw int) bool {
	n := len(p.HashHistory)
	stop := n - p.HalfmoveCnt
	if stop < 0 {
		stop = 0
	}

	found := 0
	for i := n - 2; i >= stop; i -= 2 {
		if p.HashHistory[i] == p.HashKey {
			found++
			if found >= draw {
				return true
			}
		}
	}
	return false
}

// calculateMaterial sums material weight of all non-king pieces on the
// board; used to detect draws by insufficient material.
func (p *Position) calculateMaterial() (material int) {
	for piece := 0; piece < 12; piece++ {
		if piece == WhiteKing || piece == BlackKing {
			continue
		}
		material += CountBits(p.Bitboards[piece]) * pieceWeights[pieceTypeOf(piece)]
	}
	return material
}
