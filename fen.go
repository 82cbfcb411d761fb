/*
fen.go converts between Forsyth-Edwards Notation strings and [Position]
values. Unlike most of this package's hot path, FEN parsing is not a
programmer-error-only surface: the string usually comes from outside the
process (a UI, a saved game, a network peer), so ParseFEN reports a
structured *FENError* rather than panicking or silently producing a broken
position.
*/

package chego

import (
	"fmt"
	"strconv"
	"strings"
)

// FENError describes why a FEN string could not be parsed: which of the six
// space-separated fields was at fault, and what was wrong with it.
type FENError struct {
	Field string
	Msg   string
}

func (e *FENError) Error() string {
	return fmt.Sprintf("chego: invalid FEN %s field: %s", e.Field, e.Msg)
}

/*
ParseFEN parses a FEN string into a [Position]. A FEN string has six
space-separated fields: piece placement, active color, castling rights,
en-passant target square, halfmove clock, fullmove number.

The en-passant field is accepted from the string as given, but only retained
on the returned Position (and hashed) if a pawn of the side to move actually
stands in a position to play the capture — this matches Polyglot's hashing
convention and spec's rule that a "dead" en-passant field never affects the
hash.
*/
func ParseFEN(fen string) (Position, error) {
	var p Position

	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return p, &FENError{"FEN", fmt.Sprintf("expected 6 fields, got %d", len(fields))}
	}

	squares, err := parsePiecePlacement(fields[0])
	if err != nil {
		return p, err
	}
	for sq, piece := range squares {
		if piece != PieceNone {
			p.placePieceOnBoard(piece, sq)
		} else {
			p.Squares[sq] = PieceNone
		}
	}

	switch fields[1] {
	case "w":
		p.ActiveColor = ColorWhite
	case "b":
		p.ActiveColor = ColorBlack
	default:
		return p, &FENError{"active color", fmt.Sprintf("expected \"w\" or \"b\", got %q", fields[1])}
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.CastlingRights |= CastlingWhiteShort
			case 'Q':
				p.CastlingRights |= CastlingWhiteLong
			case 'k':
				p.CastlingRights |= CastlingBlackShort
			case 'q':
				p.CastlingRights |= CastlingBlackLong
			default:
				return p, &FENError{"castling rights", fmt.Sprintf("unexpected character %q", fields[2][i])}
			}
		}
	}

	p.EPTarget = NoSquare
	if fields[3] != "-" {
		sq, err := parseSquare(fields[3])
		if err != nil {
			return p, err
		}
		if p.epCapturable(sq, opposite(p.ActiveColor)) {
			p.EPTarget = sq
		}
	}

	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil || p.HalfmoveCnt < 0 {
		return p, &FENError{"halfmove clock", fmt.Sprintf("not a non-negative integer: %q", fields[4])}
	}

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return p, &FENError{"fullmove number", fmt.Sprintf("not a positive integer: %q", fields[5])}
	}
	p.FullmoveCnt = fullmove * 2
	if p.ActiveColor == ColorBlack {
		p.FullmoveCnt++
	}

	p.HashKey = zobristKey(&p)
	p.HashHistory = append(p.HashHistory, p.HashKey)

	return p, nil
}

// parsePiecePlacement parses the first FEN field into a 64-square array,
// PieceNone everywhere a rank's digit run leaves empty.
func parsePiecePlacement(field string) ([64]Piece, error) {
	var squares [64]Piece
	for i := range squares {
		squares[i] = PieceNone
	}

	ranks := strings.Split(field, "/")
	if len(ranks) != 8 {
		return squares, &FENError{"piece placement", fmt.Sprintf("expected 8 ranks, got %d", len(ranks))}
	}

	for i, rank := range ranks {
		rankIdx := 7 - i
		file := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				pt, color, ok := pieceFromFENChar(c)
				if !ok {
					return squares, &FENError{"piece placement", fmt.Sprintf("unexpected character %q", c)}
				}
				if file >= 8 {
					return squares, &FENError{"piece placement", fmt.Sprintf("rank %d overflows 8 files", rankIdx+1)}
				}
				squares[rankIdx*8+file] = NewPiece(color, pt)
				file++
			}
		}
		if file != 8 {
			return squares, &FENError{"piece placement", fmt.Sprintf("rank %d has %d files, want 8", rankIdx+1, file)}
		}
	}

	return squares, nil
}

func pieceFromFENChar(c byte) (pt PieceType, color Color, ok bool) {
	switch c {
	case 'P':
		return Pawn, ColorWhite, true
	case 'N':
		return Knight, ColorWhite, true
	case 'B':
		return Bishop, ColorWhite, true
	case 'R':
		return Rook, ColorWhite, true
	case 'Q':
		return Queen, ColorWhite, true
	case 'K':
		return King, ColorWhite, true
	case 'p':
		return Pawn, ColorBlack, true
	case 'n':
		return Knight, ColorBlack, true
	case 'b':
		return Bishop, ColorBlack, true
	case 'r':
		return Rook, ColorBlack, true
	case 'q':
		return Queen, ColorBlack, true
	case 'k':
		return King, ColorBlack, true
	}
	return 0, 0, false
}

// parseSquare parses an algebraic square such as "e3".
func parseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, &FENError{"en passant target", fmt.Sprintf("not a square: %q", s)}
	}
	return int(s[1]-'1')*8 + int(s[0]-'a'), nil
}

// SerializeFEN serializes p into a FEN string.
func SerializeFEN(p Position) string {
	var b strings.Builder
	b.Grow(64)

	b.WriteString(serializePiecePlacement(&p))
	b.WriteByte(' ')

	if p.ActiveColor == ColorWhite {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}
	b.WriteByte(' ')

	if p.CastlingRights == 0 {
		b.WriteByte('-')
	} else {
		if p.CastlingRights&CastlingWhiteShort != 0 {
			b.WriteByte('K')
		}
		if p.CastlingRights&CastlingWhiteLong != 0 {
			b.WriteByte('Q')
		}
		if p.CastlingRights&CastlingBlackShort != 0 {
			b.WriteByte('k')
		}
		if p.CastlingRights&CastlingBlackLong != 0 {
			b.WriteByte('q')
		}
	}
	b.WriteByte(' ')

	if p.EPTarget == NoSquare {
		b.WriteByte('-')
	} else {
		b.WriteString(Square2String[p.EPTarget])
	}
	b.WriteByte(' ')

	b.WriteString(strconv.Itoa(p.HalfmoveCnt))
	b.WriteByte(' ')
	// FullmoveCnt is carried internally as a half-ply counter (see
	// Position.FullmoveCnt); divide back down for the FEN field.
	b.WriteString(strconv.Itoa(p.FullmoveCnt / 2))

	return b.String()
}

func serializePiecePlacement(p *Position) string {
	var b strings.Builder
	b.Grow(20)

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := p.Squares[rank*8+file]
			if piece == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteByte('0' + byte(empty))
				empty = 0
			}
			b.WriteByte(PieceSymbols[piece])
		}
		if empty > 0 {
			b.WriteByte('0' + byte(empty))
		}
		if rank != 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}
