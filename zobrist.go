/*
zobrist.go derives the keys the incremental make/unmake in position.go XORs
in and out, from the fixed Polyglot random table in zobrist_table.go, and
provides a from-scratch recompute used to check the incremental hash against
("hashKey == recompute_from_scratch()" is one of the package's invariants).
*/

package chego

// castlingKeyTable collapses the XOR of the four castling-right keys for
// every possible 4-bit rights mask, so MakeMove and zobristKey can XOR in a
// single precomputed value rather than looping over set bits.
var castlingKeyTable [16]uint64

func init() {
	wk := polyglotRandom[768]
	wq := polyglotRandom[769]
	bk := polyglotRandom[770]
	bq := polyglotRandom[771]

	for mask := range 16 {
		var key uint64
		if mask&CastlingWhiteShort != 0 {
			key ^= wk
		}
		if mask&CastlingWhiteLong != 0 {
			key ^= wq
		}
		if mask&CastlingBlackShort != 0 {
			key ^= bk
		}
		if mask&CastlingBlackLong != 0 {
			key ^= bq
		}
		castlingKeyTable[mask] = key
	}
}

// pieceKey returns the Polyglot piece-square key for piece p on square sq.
// Polyglot numbers pieces BlackPawn=0, WhitePawn=1, BlackKnight=2, ...,
// WhiteKing=11 — color-minor within each piece type, the reverse of this
// package's Piece encoding.
func pieceKey(p Piece, sq Square) uint64 {
	pt := pieceTypeOf(p)
	white := 0
	if p/6 == ColorWhite {
		white = 1
	}
	idx := pt*2 + white
	return polyglotRandom[64*idx+sq]
}

// epKey returns the en-passant key for the file of sq.
func epKey(sq Square) uint64 {
	return polyglotRandom[772+File(sq)]
}

// sideKey is XORed into the hash when White is to move.
var sideKey = polyglotRandom[780]

/*
zobristKey recomputes a position's hash from scratch: over every piece on the
board, the castling rights, the (already-filtered) en-passant file, and side
to move. Used to validate the incrementally maintained hashKey, not on the
make/unmake hot path.
*/
func zobristKey(p *Position) (key uint64) {
	for sq := 0; sq < 64; sq++ {
		pc := p.Squares[sq]
		if pc != PieceNone {
			key ^= pieceKey(pc, sq)
		}
	}

	key ^= castlingKeyTable[p.CastlingRights]

	if p.EPTarget != NoSquare {
		key ^= epKey(p.EPTarget)
	}

	if p.ActiveColor == ColorWhite {
		key ^= sideKey
	}

	return key
}
