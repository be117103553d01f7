// Tool bench benchmarks c4solver.
//
// The benchmark scores a fixed suite of positions and reports the
// total number of nodes expanded and nodes per second, so a change
// that regresses node count or throughput shows up immediately.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	c4solver "github.com/YKhan142008/c4-solver"
	"github.com/YKhan142008/c4-solver/internal/position"
)

// A fixed suite of positions from the empty board to a near-full one,
// covering a narrow win, a narrow loss and a scored-zero endgame for the
// side to move.
var suite = []positionInfo{
	{"empty board", ""},
	{"centre-stacked narrow win", "444444"},
	{"narrow loss for the side to move", "1234"},
	{"near-full board holding a four-in-a-row, scores 0", "1234567123456712345671234567123456712345"},
	{"off-centre opening", "323455566712"},
}

var weak = flag.Bool("weak", false, "weak-solve each position instead of computing the exact score")

type positionInfo struct {
	description  string
	moveSequence string
}

// eval scores one position and returns its score and node count.
func (p *positionInfo) eval(solver *c4solver.Solver) (int, uint64) {
	pos, err := position.PositionFromMoves(p.moveSequence)
	if err != nil {
		log.Fatalf("%s: invalid move sequence %q: %v", p.description, p.moveSequence, err)
	}
	if *weak {
		return solver.WeakScore(pos)
	}
	return solver.Score(pos)
}

// evalAll scores every position in suite, starting from a fresh
// transposition table for each so results don't depend on run order.
func evalAll() (uint64, float64) {
	start := time.Now()
	var nodes uint64
	for i := range suite {
		solver := c4solver.NewSolver()
		value, n := suite[i].eval(solver)
		nodes += n
		log.Printf("#%d score=%d nodes=%s %s\n", i, value, humanize.Comma(int64(n)), suite[i].description)
	}
	elapsed := time.Since(start)
	return nodes, float64(nodes) / elapsed.Seconds()
}

func main() {
	flag.Parse()
	nodes, nps := evalAll()
	fmt.Printf("nodes %s\n", humanize.Comma(int64(nodes)))
	fmt.Printf("  nps %s\n", humanize.Comma(int64(nps)))
}
