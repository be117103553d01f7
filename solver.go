// Package c4solver is the small external interface the search engine
// exposes: construct a position from the empty board or a move
// sequence, mutate it with MakeMove/UndoMove, and ask for its
// game-theoretic Score.
package c4solver

import (
	"github.com/YKhan142008/c4-solver/internal/position"
	"github.com/YKhan142008/c4-solver/internal/search"
	"github.com/YKhan142008/c4-solver/internal/tt"
)

// Position is a mutable Connect Four game state.
type Position = position.Position

// NewPosition returns an empty board with player 0 to move.
func NewPosition() *Position {
	return position.NewPosition()
}

// PositionFromMoves replays a 1-indexed column-digit move sequence
// (e.g. "444444") from the empty board.
func PositionFromMoves(moveSequence string) (*Position, error) {
	return position.PositionFromMoves(moveSequence)
}

// IsLegalMove reports whether col (0-indexed) still has room.
func IsLegalMove(pos *Position, col int) bool {
	return pos.IsLegalMove(col)
}

// MakeMove drops the side to move's piece into col.
func MakeMove(pos *Position, col int) {
	pos.MakeMove(col)
}

// UndoMove reverses the most recent MakeMove.
func UndoMove(pos *Position) {
	pos.UndoMove()
}

// Score computes the exact game-theoretic score of pos under perfect
// play and the number of nodes the search expanded to prove it. pos is
// restored bit-exactly on return. Each call allocates its own
// transposition table, used only for the duration of this call, per
// the single-significant-allocation resource model: callers that score
// many positions back to back should use a Solver instead to amortize
// that allocation and its cache contents across calls.
func Score(pos *Position) (int, uint64) {
	table := tt.New()
	return search.Score(pos, table)
}

// Solver owns a transposition table that persists across calls,
// amortizing both the allocation and any positions the table has
// already resolved across an entire batch (a harness file, an
// interactive session scoring several root moves).
type Solver struct {
	table *tt.Table
}

// NewSolver allocates a fresh, empty transposition table.
func NewSolver() *Solver {
	return &Solver{table: tt.New()}
}

// Score computes pos's exact game-theoretic score using this solver's
// table, reusing whatever entries earlier calls already populated.
func (s *Solver) Score(pos *Position) (int, uint64) {
	return search.Score(pos, s.table)
}

// WeakScore answers only the sign of pos's score (who wins), not the
// exact margin, converging faster than Score.
func (s *Solver) WeakScore(pos *Position) (int, uint64) {
	return search.WeakScore(pos, s.table)
}

// Reset clears the solver's transposition table without reallocating,
// for reuse across unrelated positions.
func (s *Solver) Reset() {
	s.table.Reset()
}

// Table exposes the solver's transposition table for snapshot
// persistence (internal/store); not for use in scoring.
func (s *Solver) Table() *tt.Table {
	return s.table
}
