/*
game.go implements chess game state management: the mutable wrapper around a
[Position] that tracks legal moves, move history, and game termination.
*/

package chego

// Game wraps a [Position] with the bookkeeping a UI or server needs: the
// legal move list for the side to move, SAN history, and the detected
// Result once the game ends.
type Game struct {
	LegalMoves MoveList
	Result     Result

	position Position
	history  []Move
	sans     []string
}

// NewGame returns a Game starting from the standard initial position.
func NewGame() *Game {
	// InitialPos is a constant, known-valid FEN string.
	pos, _ := ParseFEN(InitialPos)
	return newGame(pos)
}

// NewGameFromFEN returns a Game starting from the position fen describes.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return newGame(pos), nil
}

func newGame(pos Position) *Game {
	g := &Game{position: pos, Result: ResultUnscored}
	GenLegalMoves(&g.position, FilterAll, &g.LegalMoves)
	return g
}

// Position returns the game's current position.
func (g *Game) Position() *Position { return &g.position }

// IsMoveLegal reports whether m appears in the current legal move list.
func (g *Game) IsMoveLegal(m Move) bool {
	for i := 0; i < g.LegalMoves.Count; i++ {
		if g.LegalMoves.Moves[i].Move == m {
			return true
		}
	}
	return false
}

/*
PushMove plays m, which the caller must have already confirmed legal (e.g.
via [Game.IsMoveLegal]), and returns its Standard Algebraic Notation
including any trailing '+' or '#'. Not safe for concurrent use.

Once played, Game.Result reflects checkmate, stalemate, insufficient
material, the fifty-move rule, or a detected repetition; it stays
ResultUnscored otherwise and the caller decides when a draw offer or
resignation ends the game.
*/
func (g *Game) PushMove(m Move) string {
	captured := g.position.PieceAt(m.To())
	isEP := m.PieceType() == Pawn && captured == PieceNone && m.To() == g.position.EPTarget
	isCapture := captured != PieceNone || isEP

	base := Move2SAN(m, &g.position, g.LegalMoves, isCapture, false, false)

	g.position.MakeMove(m)
	g.history = append(g.history, m)
	g.LegalMoves = MoveList{}
	GenLegalMoves(&g.position, FilterAll, &g.LegalMoves)

	inCheck := InCheck(&g.position)
	hasMoves := g.LegalMoves.Count > 0

	suffix := ""
	switch {
	case inCheck && !hasMoves:
		suffix = "#"
		g.Result = ResultCheckmate
	case inCheck:
		suffix = "+"
	case !hasMoves:
		g.Result = ResultStalemate
	}

	if g.Result == ResultUnscored {
		switch {
		case g.IsInsufficientMaterial():
			g.Result = ResultInsufficientMaterial
		case g.position.HalfmoveCnt >= 100:
			g.Result = ResultFiftyMove
		case g.position.IsRepetition(2):
			g.Result = ResultThreefoldRepetition
		}
	}

	sanMove := base + suffix
	g.sans = append(g.sans, sanMove)
	return sanMove
}

/*
IsInsufficientMaterial returns true if one of the following statements is
true:
  - Both sides have a bare king.
  - One side has a king and a minor piece against a bare king.
  - Both sides have a king and a bishop, the bishops standing on the same
    colored squares.
  - Both sides have a king and a knight.
*/
func (g *Game) IsInsufficientMaterial() bool {
	const dark = uint64(0xAA55AA55AA55AA55)
	p := &g.position
	material := p.calculateMaterial()

	noPawns := p.Bitboards[WhitePawn] == 0 && p.Bitboards[BlackPawn] == 0
	if material == 0 || (material == pieceWeights[Bishop] && noPawns) {
		return true
	}

	if material == 2*pieceWeights[Bishop] {
		wb := p.Bitboards[WhiteBishop]
		bb := p.Bitboards[BlackBishop]
		sameBishopColor := wb != 0 && bb != 0 &&
			((wb&dark != 0 && bb&dark != 0) || (wb&^dark != 0 && bb&^dark != 0))
		twoKnights := p.Bitboards[WhiteKnight] != 0 && p.Bitboards[BlackKnight] != 0
		return sameBishopColor || twoKnights
	}

	return false
}
