// types.go contains declarations of the core data types: squares, colors,
// pieces, the packed move encoding, and the move list.

package chego

// Square indexes the board 0..63: a1=0, b1=1, ..., h8=63.
type Square = int

// NoSquare is the sentinel for "no square", used for an absent en-passant
// target and for pieces that aren't on the board.
const NoSquare Square = 64

// File returns the file (0=a..7=h) of a square.
func File(sq Square) int { return sq % 8 }

// Rank returns the rank (0=rank1..7=rank8) of a square.
func Rank(sq Square) int { return sq / 8 }

// Color is an alias type to avoid bothersome conversion between int and Color.
type Color = int

const (
	ColorWhite Color = iota
	ColorBlack
)

// opposite returns the other color.
func opposite(c Color) Color { return 1 ^ c }

// PieceType is an alias type to avoid bothersome conversion between int and
// PieceType.  It names the moving/promoted piece's kind independent of color,
// and occupies the Move's 3-bit piece-type field directly.
type PieceType = int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NoPieceType
)

// Piece is Color*PieceType encoded 0..11: the White block occupies 0..5
// (Pawn..King), the Black block occupies 6..11. PieceNone = 12.
type Piece = int

const (
	WhitePawn Piece = iota
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
	PieceNone
)

// NewPiece builds the Piece index from a color and a piece type.
func NewPiece(c Color, pt PieceType) Piece { return c*6 + pt }

// pieceTypeOf returns the piece type of the piece, discarding color.
func pieceTypeOf(p Piece) PieceType {
	if p == PieceNone {
		return NoPieceType
	}
	return p % 6
}

// PieceSymbols maps each Piece index to its FEN letter.
var PieceSymbols = [12]byte{
	'P', 'N', 'B', 'R', 'Q', 'K',
	'p', 'n', 'b', 'r', 'q', 'k',
}

// Square2String maps each board square to its algebraic string representation.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

/*
Move represents a chess move, packed into a 16 bit unsigned integer:
  - bits 0-5:   from (source) square index.
  - bits 6-11:  to (destination) square index.
  - bits 12-14: piece-type of the moving piece, or (when the promotion flag is
    set) the target promotion type.
  - bit 15:     promotion flag.

NoMove (0) and NullMove (65, i.e. from=1 to=1) are reserved sentinels; neither
is ever produced by the generator as a real move.
*/
type Move uint16

const (
	NoMove   Move = 0
	NullMove Move = 65
)

// NewMove packs a non-promoting move. pt is the type of the piece making the
// move (needed by the generator and by SAN disambiguation without consulting
// the board again).
func NewMove(from, to Square, pt PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(pt)<<12
}

// NewPromotionMove packs a promoting pawn move; promoType must be one of
// Knight, Bishop, Rook, Queen.
func NewPromotionMove(from, to Square, promoType PieceType) Move {
	return Move(from) | Move(to)<<6 | Move(promoType)<<12 | 1<<15
}

func (m Move) From() Square        { return Square(m & 0x3F) }
func (m Move) To() Square          { return Square((m >> 6) & 0x3F) }
func (m Move) PieceType() PieceType { return PieceType((m >> 12) & 0x7) }
func (m Move) IsPromotion() bool   { return m&0x8000 != 0 }

// ExtMove is a move paired with a signed ordering score.
type ExtMove struct {
	Move  Move
	Score int32
}

// defaultScore is assigned to every freshly generated move; it sorts below
// any move a caller has since scored.
const defaultScore int32 = -100000

/*
MoveList is a fixed-capacity sequence of [ExtMove], preallocated large enough
to hold every legal move in any reachable chess position (218, comfortably
above the documented 128 bound) so that generation never allocates.
*/
type MoveList struct {
	Moves [218]ExtMove
	Count int
}

// Push appends m to the list with the default score.
func (l *MoveList) Push(m Move) {
	l.Moves[l.Count] = ExtMove{Move: m, Score: defaultScore}
	l.Count++
}

// Len reports the number of moves currently in the list.
func (l *MoveList) Len() int { return l.Count }

/*
CastlingRights is a 4-bit mask:
  - bit 0: white king can O-O.
  - bit 1: white king can O-O-O.
  - bit 2: black king can O-O.
  - bit 3: black king can O-O-O.
*/
type CastlingRights = int

const (
	CastlingWhiteShort CastlingRights = 1
	CastlingWhiteLong  CastlingRights = 2
	CastlingBlackShort CastlingRights = 4
	CastlingBlackLong  CastlingRights = 8
)

// Result represents the possible outcomes of a chess game.
type Result int

const (
	ResultUnscored Result = iota // Default value: the game isn't finished yet.
	ResultCheckmate
	ResultTimeout
	ResultStalemate
	ResultInsufficientMaterial
	ResultFiftyMove
	ResultThreefoldRepetition
	ResultResignation
	ResultDrawByAgreement
)
