// Package ordering ranks the seven Connect Four columns by a
// threats-created heuristic so the negamax core explores the most
// promising moves first, maximizing alpha-beta cutoffs.
package ordering

import "github.com/YKhan142008/c4-solver/internal/position"

// ColumnOrder is the fixed center-out preference the search falls back
// on for columns of equal priority, so that among ties the center
// column is still explored first.
var ColumnOrder = [position.Width]int{3, 2, 4, 1, 5, 0, 6}

// Move pairs a column with its computed move-ordering priority.
type Move struct {
	Col      int
	Priority int
}

// Order returns the legal columns among pos's seven, sorted descending
// by the number of threats playing that column would create for the
// side to move, ties broken by the center-out ColumnOrder. The negamax
// core is responsible for skipping losing moves from the result; Order
// only orders, it does not prune.
func Order(pos *position.Position) []Move {
	moves := make([]Move, 0, position.Width)
	for _, col := range ColumnOrder {
		if !pos.IsLegalMove(col) {
			continue
		}
		priority := priorityOf(pos, col)
		moves = append(moves, Move{Col: col, Priority: priority})
	}
	insertionSortDescending(moves)
	return moves
}

// priorityOf scores col by playing it on a scratch copy of the side to
// move's stones, leaving the opponent's stones untouched, and counting
// the resulting threats for the side to move.
func priorityOf(pos *position.Position, col int) int {
	turn := pos.Turn()
	scratchSelf := pos.Board(turn) | pos.ColHeightMask(col)
	opponent := pos.Board(1 - turn)
	threats := position.Threats(scratchSelf, opponent, scratchSelf)
	return popcount(threats)
}

// insertionSortDescending sorts moves by Priority descending. Insertion
// sort is optimal here: n is always <= 7, and it is stable, which
// preserves the center-out ColumnOrder among equal-priority moves.
func insertionSortDescending(moves []Move) {
	for i := 1; i < len(moves); i++ {
		key := moves[i]
		j := i - 1
		for j >= 0 && moves[j].Priority < key.Priority {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = key
	}
}

func popcount(mask uint64) int {
	count := 0
	for mask != 0 {
		mask &= mask - 1
		count++
	}
	return count
}
