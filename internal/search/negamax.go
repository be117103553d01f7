// Package search implements the negamax alpha-beta core and the
// null-window iterative-deepening driver that binary-searches the
// exact game-theoretic score of a Connect Four position.
package search

import (
	"github.com/YKhan142008/c4-solver/internal/ordering"
	"github.com/YKhan142008/c4-solver/internal/position"
	"github.com/YKhan142008/c4-solver/internal/tt"
)

// Result is the outcome of a single negamax call: the fail-soft score
// within the requested window, and the number of nodes expanded to
// compute it (this call included).
type Result struct {
	Value int
	Nodes uint64
}

// Negamax searches pos within the open window (alpha, beta), alpha <
// beta, returning the fail-soft value and node count. pos is restored
// bit-exactly on return: every MakeMove this call performs is undone
// before it returns.
func Negamax(pos *position.Position, alpha, beta int, table *tt.Table) Result {
	key := pos.Key()

	// 1. TT probe.
	if entry, ok := table.Get(key); ok {
		switch entry.Bound {
		case tt.Exact:
			return Result{Value: entry.Score, Nodes: 1}
		case tt.Lower:
			if entry.Score > alpha {
				alpha = entry.Score
			}
		case tt.Upper:
			if entry.Score < beta {
				beta = entry.Score
			}
		}
		if alpha >= beta {
			return Result{Value: alpha, Nodes: 1}
		}
	}

	// 2. Terminal: draw.
	if pos.Moves() == position.BoardSize {
		return Result{Value: 0, Nodes: 1}
	}

	// 3. Forced-loss detection.
	threats := pos.OpponentThreats()
	live := position.LiveThreats(threats, pos.HeightMask())
	if position.IsLosingPosition(threats, live) {
		return Result{Value: (pos.Moves() - position.BoardSize) / 2, Nodes: 1}
	}

	// 4. Upper bound on score: the side to move cannot win on this ply
	// (the driver rules that out at the root, and the pruning above rules
	// it out below), so the fastest possible win is on its following move.
	maxPossible := (position.BoardSize - 1 - pos.Moves()) / 2
	if beta > maxPossible {
		beta = maxPossible
	}
	if alpha >= beta {
		return Result{Value: beta, Nodes: 1}
	}

	originalAlpha := alpha
	nodes := uint64(1) // this call itself

	// 5. Forced reply.
	if forced := position.MustPlay(live); forced != position.NoForcedMove {
		pos.MakeMove(forced)
		child := Negamax(pos, -beta, -alpha, table)
		pos.UndoMove()
		nodes += child.Nodes
		value := -child.Value
		store(table, key, originalAlpha, beta, value)
		return Result{Value: value, Nodes: nodes}
	}

	// 6. Ordered move loop.
	value := alpha
	for _, move := range ordering.Order(pos) {
		col := move.Col
		if position.IsLosingMove(col, threats, pos.ColHeightMask(col)) {
			continue
		}
		pos.MakeMove(col)
		child := Negamax(pos, -beta, -value, table)
		pos.UndoMove()
		nodes += child.Nodes
		v := -child.Value
		if v > value {
			value = v
		}
		if value >= beta {
			break
		}
	}

	// 7. TT store.
	store(table, key, originalAlpha, beta, value)

	// 8.
	return Result{Value: value, Nodes: nodes}
}

func store(table *tt.Table, key uint64, alpha0, beta, value int) {
	switch {
	case value <= alpha0:
		table.Put(key, tt.Upper, value)
	case value >= beta:
		table.Put(key, tt.Lower, value)
	default:
		table.Put(key, tt.Exact, value)
	}
}
