/*
movegen.go enumerates legal moves directly from the pin/check/seen analysis
in pins.go: each piece's destination set is built as
attacks & targetFilter & checkMask & pinConstraint, so no pseudo-legal move is
ever generated only to be discarded later.
*/

package chego

// MoveFilter selects which class of legal moves GenLegalMoves reports.
type MoveFilter int

const (
	FilterAll MoveFilter = iota
	FilterCapture
	FilterQuiet
)

// GenLegalMoves appends every legal move for the side to move, matching
// filter, to l. l is not cleared first — pass an empty list if that matters
// to the caller.
func GenLegalMoves(p *Position, filter MoveFilter, l *MoveList) {
	c := p.ActiveColor
	enemy := opposite(c)
	a := analyzePosition(p, c)

	var targetFilter uint64
	switch filter {
	case FilterCapture:
		targetFilter = p.occupancyOf(enemy)
	case FilterQuiet:
		targetFilter = ^p.AllBB
	default:
		targetFilter = ^p.occupancyOf(c)
	}

	genKingMoves(p, &a, c, filter, l)

	if a.doubleCheck >= 2 {
		return
	}

	genPawnMoves(p, &a, c, filter, targetFilter, l)
	genEnPassant(p, &a, c, filter, l)
	genPieceMoves(p, &a, c, targetFilter, l, Knight)
	genPieceMoves(p, &a, c, targetFilter, l, Bishop)
	genPieceMoves(p, &a, c, targetFilter, l, Rook)
	genPieceMoves(p, &a, c, targetFilter, l, Queen)
}

// HasLegalMoves reports whether the side to move has any legal move,
// short-circuiting rather than building the full list. Used to tell
// checkmate (in check, nothing survives) from stalemate (not in check,
// nothing survives).
func HasLegalMoves(p *Position) bool {
	c := p.ActiveColor
	a := analyzePosition(p, c)
	king := bitScan(p.Bitboards[NewPiece(c, King)])

	if kingAttacks[king]&^p.occupancyOf(c)&^a.seen != 0 {
		return true
	}
	if a.doubleCheck >= 2 {
		return false
	}

	targetFilter := ^p.occupancyOf(c)
	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
		pieces := p.Bitboards[NewPiece(c, pt)]
		slidesHV := pt == Rook || pt == Queen
		slidesD := pt == Bishop || pt == Queen
		for pieces != 0 {
			from := popLSB(&pieces)
			attacks := pieceAttacks(pt, from, p.AllBB)
			if attacks&targetFilter&a.checkMask&pinMaskFor(from, &a, slidesHV, slidesD) != 0 {
				return true
			}
		}
	}

	var tmp MoveList
	genPawnMoves(p, &a, c, FilterAll, targetFilter, &tmp)
	if tmp.Count > 0 {
		return true
	}
	genEnPassant(p, &a, c, FilterAll, &tmp)
	return tmp.Count > 0
}

func pieceAttacks(pt PieceType, from Square, occ uint64) uint64 {
	switch pt {
	case Knight:
		return knightAttacks[from]
	case Bishop:
		return lookupBishopAttacks(from, occ)
	case Rook:
		return lookupRookAttacks(from, occ)
	case Queen:
		return lookupQueenAttacks(from, occ)
	}
	return 0
}

// pinMaskFor returns the legal-destination restriction a pin places on a
// piece standing on sq: all-ones if unpinned, the pin ray if the piece slides
// along the direction it's pinned on, zero otherwise (a pinned knight, a
// diagonally-pinned rook, an orthogonally-pinned bishop).
func pinMaskFor(sq Square, a *analysis, slidesHV, slidesD bool) uint64 {
	bit := uint64(1) << sq
	onHV := a.pinHV&bit != 0
	onD := a.pinD&bit != 0

	switch {
	case !onHV && !onD:
		return ALL_SQUARES
	case onHV:
		if slidesHV {
			return a.pinHV
		}
		return 0
	default: // onD
		if slidesD {
			return a.pinD
		}
		return 0
	}
}

func genPieceMoves(p *Position, a *analysis, c Color, targetFilter uint64, l *MoveList, pt PieceType) {
	slidesHV := pt == Rook || pt == Queen
	slidesD := pt == Bishop || pt == Queen

	pieces := p.Bitboards[NewPiece(c, pt)]
	for pieces != 0 {
		from := popLSB(&pieces)
		attacks := pieceAttacks(pt, from, p.AllBB)
		dests := attacks & targetFilter & a.checkMask & pinMaskFor(from, a, slidesHV, slidesD)
		for dests != 0 {
			l.Push(NewMove(from, popLSB(&dests), pt))
		}
	}
}

func genKingMoves(p *Position, a *analysis, c Color, filter MoveFilter, l *MoveList) {
	king := bitScan(p.Bitboards[NewPiece(c, King)])

	var targetFilter uint64
	switch filter {
	case FilterCapture:
		targetFilter = p.occupancyOf(opposite(c))
	case FilterQuiet:
		targetFilter = ^p.AllBB
	default:
		targetFilter = ^p.occupancyOf(c)
	}

	dests := kingAttacks[king] & targetFilter &^ a.seen
	for dests != 0 {
		l.Push(NewMove(king, popLSB(&dests), King))
	}

	if a.doubleCheck != 0 || filter == FilterCapture {
		return
	}

	var shortRight, longRight CastlingRights
	var shortTo, longTo Square
	if c == ColorWhite {
		shortRight, longRight, shortTo, longTo = CastlingWhiteShort, CastlingWhiteLong, SG1, SC1
	} else {
		shortRight, longRight, shortTo, longTo = CastlingBlackShort, CastlingBlackLong, SG8, SC8
	}

	occWithoutKing := p.AllBB &^ (uint64(1) << king)

	tryCastle := func(right CastlingRights, kingTo Square) {
		if p.CastlingRights&right == 0 {
			return
		}
		idx := bitScan(uint64(right))
		if occWithoutKing&castlingPath[idx] != 0 {
			return
		}
		if a.seen&castlingAttackPath[idx] != 0 {
			return
		}
		l.Push(NewMove(king, kingTo, King))
	}
	tryCastle(shortRight, shortTo)
	tryCastle(longRight, longTo)
}

func emitPromotions(from, to Square, l *MoveList) {
	l.Push(NewPromotionMove(from, to, Knight))
	l.Push(NewPromotionMove(from, to, Bishop))
	l.Push(NewPromotionMove(from, to, Rook))
	l.Push(NewPromotionMove(from, to, Queen))
}

func genPawnMoves(p *Position, a *analysis, c Color, filter MoveFilter, targetFilter uint64, l *MoveList) {
	enemy := opposite(c)
	genCaptures := filter != FilterQuiet
	genQuiets := filter != FilterCapture

	dir, promoRank, startRank := 8, RANK_8, RANK_2
	if c == ColorBlack {
		dir, promoRank, startRank = -8, RANK_1, RANK_7
	}

	pawns := p.Bitboards[NewPiece(c, Pawn)]
	for pawns != 0 {
		from := popLSB(&pawns)
		fromBB := uint64(1) << from
		pinPush := pinMaskFor(from, a, true, false)
		pinCap := pinMaskFor(from, a, false, true)

		to := from + dir
		toBB := uint64(1) << to
		pushBlocked := toBB&p.AllBB != 0
		if !pushBlocked {
			allowed := toBB&a.checkMask != 0 && toBB&pinPush != 0
			isPromo := toBB&promoRank != 0
			if allowed {
				if isPromo {
					if genCaptures {
						emitPromotions(from, to, l)
					}
				} else if genQuiets {
					l.Push(NewMove(from, to, Pawn))
				}
			}
			if !isPromo && fromBB&startRank != 0 && genQuiets {
				to2 := from + 2*dir
				to2BB := uint64(1) << to2
				if to2BB&p.AllBB == 0 && to2BB&a.checkMask != 0 && to2BB&pinPush != 0 {
					l.Push(NewMove(from, to2, Pawn))
				}
			}
		}

		attacks := pawnAttacks[c][from] & p.occupancyOf(enemy) & a.checkMask & pinCap
		for attacks != 0 {
			capTo := popLSB(&attacks)
			if uint64(1)<<capTo&promoRank != 0 {
				if genCaptures {
					emitPromotions(from, capTo, l)
				}
			} else if genCaptures {
				l.Push(NewMove(from, capTo, Pawn))
			}
		}
	}
}

// genEnPassant generates the en-passant capture, if one is available and the
// filter admits captures. Guards: reject if HV-pinned; if D-pinned, only
// along the pin diagonal; in check, only if it resolves the check; and the
// rare horizontal discovered-check case, probed with a transient board edit.
func genEnPassant(p *Position, a *analysis, c Color, filter MoveFilter, l *MoveList) {
	if p.EPTarget == NoSquare || filter == FilterQuiet {
		return
	}

	enemy := opposite(c)
	epSq := p.EPTarget
	capturedSq := epSq - 8
	if c == ColorBlack {
		capturedSq = epSq + 8
	}

	candidates := pawnAttacks[enemy][epSq] & p.Bitboards[NewPiece(c, Pawn)]
	for candidates != 0 {
		from := popLSB(&candidates)
		bit := uint64(1) << from

		if a.pinHV&bit != 0 {
			continue
		}
		if a.pinD&bit != 0 && a.pinD&(uint64(1)<<epSq) == 0 {
			continue
		}
		if a.checkMask&(uint64(1)<<capturedSq) == 0 {
			continue
		}
		if !p.epHorizontalPinSafe(from, capturedSq, epSq, c) {
			continue
		}

		l.Push(NewMove(from, epSq, Pawn))
	}
}

// epHorizontalPinSafe performs the matched remove/place probe required when
// the king shares a rank with an enemy rook or queen: with both pawns lifted
// and the capturer placed on the EP square, would that slider then check the
// king along the rank? The board is restored exactly before returning.
func (p *Position) epHorizontalPinSafe(from, capturedSq, epSq Square, c Color) bool {
	king := bitScan(p.Bitboards[NewPiece(c, King)])
	if Rank(king) != Rank(capturedSq) {
		return true
	}

	enemy := opposite(c)
	hvEnemies := p.Bitboards[NewPiece(enemy, Rook)] | p.Bitboards[NewPiece(enemy, Queen)]
	if hvEnemies == 0 {
		return true
	}

	mover := NewPiece(c, Pawn)
	victim := NewPiece(enemy, Pawn)

	p.removePieceOnBoard(mover, from)
	p.removePieceOnBoard(victim, capturedSq)
	p.placePieceOnBoard(mover, epSq)

	safe := !isSquareAttacked(p, king, enemy)

	p.removePieceOnBoard(mover, epSq)
	p.placePieceOnBoard(victim, capturedSq)
	p.placePieceOnBoard(mover, from)

	return safe
}
