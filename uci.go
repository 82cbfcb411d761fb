// uci.go implements Universal Chess Interface move notation.

package chego

import "strings"

// Move2UCI converts m into long algebraic notation. Examples: e2e4, e7e5,
// e1g1 (white short castling, encoded as the king's own two-square hop),
// e7e8q (promotion).
func Move2UCI(m Move) string {
	var b strings.Builder
	b.Grow(5)

	b.WriteString(Square2String[m.From()])
	b.WriteString(Square2String[m.To()])

	if m.IsPromotion() {
		b.WriteByte(pieceLetters[m.PieceType()] + ('a' - 'A'))
	}

	return b.String()
}
