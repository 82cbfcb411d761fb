// Command perft walks the move generation tree of strictly legal moves to a
// given depth and counts the number of visited leaf nodes, optionally broken
// down by move category. It is excluded from the chego package: this is a
// debugging and benchmarking tool, not library code.
package main

import (
	"flag"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"github.com/corvid-chess/chego"
)

// result holds the per-category counts a verbose perft run reports.
type result struct {
	nodes        int
	captures     int
	epCaptures   int
	castles      int
	promotions   int
	checks       int
	doubleChecks int
	checkmates   int
}

// perft counts leaf nodes at depth without collecting per-category stats.
func perft(p chego.Position, depth int) int {
	var l chego.MoveList
	chego.GenLegalMoves(&p, chego.FilterAll, &l)

	if depth == 1 {
		return l.Count
	}

	nodes := 0
	for i := 0; i < l.Count; i++ {
		m := l.Moves[i].Move
		child := p
		child.MakeMove(m)
		nodes += perft(child, depth-1)
	}
	return nodes
}

// perftVerbose follows the same principle as perft, but also tallies r.
// Use this to debug the move generation tree, not to measure raw throughput.
func perftVerbose(p chego.Position, depth int, r *result, isRoot bool) int {
	var l chego.MoveList
	chego.GenLegalMoves(&p, chego.FilterAll, &l)

	if depth == 1 {
		for i := 0; i < l.Count; i++ {
			tallyLeaf(&p, l.Moves[i].Move, r)
		}
		return l.Count
	}

	nodes := 0
	for i := 0; i < l.Count; i++ {
		m := l.Moves[i].Move
		tallyLeaf(&p, m, r)

		child := p
		child.MakeMove(m)

		cnt := chego.CheckersCount(&child)
		if cnt > 0 {
			r.checks++
		}
		if cnt > 1 {
			r.doubleChecks++
		}
		if cnt > 0 && !chego.HasLegalMoves(&child) {
			r.checkmates++
		}

		childNodes := perftVerbose(child, depth-1, r, false)
		if isRoot {
			log.Printf("%s %d", chego.Move2UCI(m), childNodes)
		}
		nodes += childNodes
	}
	return nodes
}

// tallyLeaf categorizes a single move about to be played from p.
func tallyLeaf(p *chego.Position, m chego.Move, r *result) {
	captured := p.PieceAt(m.To())
	isEP := m.PieceType() == chego.Pawn && captured == chego.PieceNone && m.To() == p.EPTarget
	if captured != chego.PieceNone || isEP {
		r.captures++
	}
	if isEP {
		r.epCaptures++
	}
	if m.PieceType() == chego.King {
		from, to := m.From(), m.To()
		diff := to - from
		if diff == 2 || diff == -2 {
			r.castles++
		}
	}
	if m.IsPromotion() {
		r.promotions++
	}
}

func main() {
	depth := flag.Int("depth", 2, "perft search depth")
	verbose := flag.Bool("verbose", false, "print per-category move counts and the root's per-move node counts")
	fen := flag.String("fen", chego.InitialPos, "FEN of the position to search from")
	cpuprofile := flag.String("cpuprofile", "", "file to write a CPU profile to")
	memprofile := flag.String("memprofile", "", "file to write a memory profile to")
	flag.Parse()

	p, err := chego.ParseFEN(*fen)
	if err != nil {
		log.Fatalf("parsing FEN: %v", err)
	}

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}
	if *memprofile != "" {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			pprof.WriteHeapProfile(f)
			f.Close()
		}()
	}

	r := &result{}
	start := time.Now()

	if *verbose {
		log.Printf("\n%s\n\t%s\n", position(p), *fen)
		r.nodes = perftVerbose(p, *depth, r, true)
		log.Printf("depth=%d nodes=%d captures=%d ep=%d castles=%d promotions=%d checks=%d double_checks=%d checkmates=%d",
			*depth, r.nodes, r.captures, r.epCaptures, r.castles, r.promotions, r.checks, r.doubleChecks, r.checkmates)
	} else {
		r.nodes = perft(p, *depth)
		log.Printf("nodes reached: %d", r.nodes)
	}

	log.Printf("elapsed: %s", time.Since(start))
}

// position formats a full chess position into a human-readable string.
func position(p chego.Position) string {
	var b strings.Builder

	for rank := 7; rank >= 0; rank-- {
		b.WriteByte(byte(rank) + '1')
		b.WriteString("  ")
		for file := 0; file < 8; file++ {
			piece := p.PieceAt(rank*8 + file)
			symbol := byte('.')
			if piece != chego.PieceNone {
				symbol = chego.PieceSymbols[piece]
			}
			b.WriteByte(symbol)
			b.WriteString("  ")
		}
		b.WriteByte('\n')
	}
	b.WriteString("   a  b  c  d  e  f  g  h\nActive color: ")

	if p.ActiveColor == chego.ColorWhite {
		b.WriteString("white\nEn passant: ")
	} else {
		b.WriteString("black\nEn passant: ")
	}

	if p.EPTarget == chego.NoSquare {
		b.WriteString("none\nCastling rights: ")
	} else {
		b.WriteString(chego.Square2String[p.EPTarget])
		b.WriteString("\nCastling rights: ")
	}

	if p.CastlingRights&chego.CastlingWhiteShort != 0 {
		b.WriteByte('K')
	}
	if p.CastlingRights&chego.CastlingWhiteLong != 0 {
		b.WriteByte('Q')
	}
	if p.CastlingRights&chego.CastlingBlackShort != 0 {
		b.WriteByte('k')
	}
	if p.CastlingRights&chego.CastlingBlackLong != 0 {
		b.WriteByte('q')
	}

	return b.String()
}
