/*
san.go implements serialization of moves into Standard Algebraic Notation.
See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt Section 8.2.3.
*/

package chego

import "strings"

var pieceLetters = [7]byte{0, 'N', 'B', 'R', 'Q', 'K', 0}

/*
Move2SAN encodes m, played from pos, to its SAN representation. legalMoves
must be the full legal move list generated from pos before m is played (used
for disambiguation); isCapture/isCheck/isCheckmate describe m's effect and
are the caller's responsibility to determine, since SAN depends on knowing
check/checkmate and this package does not compute them eagerly.

SAN string consists of these parts:
 1. Piece letter, omitted for pawns;
 2. Optional originating file or rank, used for disambiguation. If a pawn
    performs a capture, its originating file is always included;
 3. Denotation of capture by 'x'. Mandatory for capture moves;
 4. Destination file and rank;
 5. Promotion suffix ("=Q" etc) for promoting pawn moves;
 6. Denotation of check by '+', omitted when the move is checkmate;
 7. Denotation of checkmate by '#'.

King castling and queen castling are encoded as "O-O" and "O-O-O" respectively.
*/
func Move2SAN(m Move, pos *Position, legalMoves MoveList, isCapture, isCheck, isCheckmate bool) string {
	pt := m.PieceType()
	if m.IsPromotion() {
		pt = Pawn
	}
	from, to := m.From(), m.To()

	if pt == King && abs(to-from) == 2 {
		if File(to) == 2 {
			return "O-O-O"
		}
		return "O-O"
	}

	var b strings.Builder
	b.Grow(6)

	if pt != Pawn {
		b.WriteByte(pieceLetters[pt])

		for i := 0; i < legalMoves.Count; i++ {
			other := legalMoves.Moves[i].Move
			if other.PieceType() == pt && other.To() == to && other.From() != from &&
				pos.Squares[other.From()] == pos.Squares[from] {
				b.WriteByte(disambiguate(from, other.From()))
				break
			}
		}
	}

	if isCapture {
		if pt == Pawn {
			b.WriteByte("abcdefgh"[File(from)])
		}
		b.WriteByte('x')
	}

	b.WriteString(Square2String[to])

	if m.IsPromotion() {
		b.WriteByte('=')
		b.WriteByte(pieceLetters[m.PieceType()])
	}

	if isCheckmate {
		b.WriteByte('#')
	} else if isCheck {
		b.WriteByte('+')
	}

	return b.String()
}

/*
disambiguate resolves the ambiguity that arises when multiple pieces of the
same type can move to the same square:
 1. If the moving pieces can be distinguished by their originating files,
    the originating file letter is used;
 2. Otherwise the originating rank digit is used.
*/
func disambiguate(fromA, fromB Square) byte {
	if File(fromA) != File(fromB) {
		return "abcdefgh"[File(fromA)]
	}
	return byte(Rank(fromA) + 1 + '0')
}
