package search

import (
	"github.com/YKhan142008/c4-solver/internal/position"
	"github.com/YKhan142008/c4-solver/internal/tt"
)

// Score runs the null-window iterative-deepening driver to bisect the
// exact game-theoretic score of pos, returning the score and the total
// number of nodes expanded across every probe. pos is restored
// bit-exactly on return and the transposition table persists across
// probes, so later probes amortize against earlier ones.
func Score(pos *position.Position, table *tt.Table) (int, uint64) {
	return bisect(pos, table, minScore(pos), maxScore(pos))
}

// WeakScore runs the same bisection narrowed to the [-1, 1] window: it
// answers only who wins (the sign of the true score), not how fast,
// which converges in far fewer probes than the exact score.
func WeakScore(pos *position.Position, table *tt.Table) (int, uint64) {
	lo, hi := -1, 1
	if minScore(pos) > lo {
		lo = minScore(pos)
	}
	if maxScore(pos) < hi {
		hi = maxScore(pos)
	}
	return bisect(pos, table, lo, hi)
}

func minScore(pos *position.Position) int {
	return -(position.BoardSize - pos.Moves()) / 2
}

func maxScore(pos *position.Position) int {
	return (position.BoardSize + 1 - pos.Moves()) / 2
}

func bisect(pos *position.Position, table *tt.Table, lo, hi int) (int, uint64) {
	// Negamax assumes the side to move has no immediate win, so a win on
	// this very move is detected here and scored as the top of the window.
	for col := 0; col < position.Width; col++ {
		if pos.IsLegalMove(col) && pos.IsWinningMove(col) {
			return hi, 1
		}
	}
	var totalNodes uint64
	for lo < hi {
		med := lo + (hi-lo)/2
		if med <= 0 && lo/2 < med {
			med = lo / 2
		}
		if med >= 0 && hi/2 > med {
			med = hi / 2
		}
		result := Negamax(pos, med, med+1, table)
		totalNodes += result.Nodes
		if result.Value <= med {
			hi = result.Value
		} else {
			lo = result.Value
		}
	}
	return lo, totalNodes
}
