// Package position implements the bitboard representation of a Connect
// Four position: the board layout, legality checks, win detection, and
// the make/undo move pair the search engine drives the tree with.
//
// The standard 7x6 Connect Four board is represented unambiguously using
// 49 bits per player, in the following bit order:
//
// ```comment
//    6 13 20 27 34 41 48   <- sentinel row, always empty
//  ---------------------
// | 5 12 19 26 33 40 47 |
// | 4 11 18 25 32 39 46 |
// | 3 10 17 24 31 38 45 |
// | 2  9 16 23 30 37 44 |
// | 1  8 15 22 29 36 43 |
// | 0  7 14 21 28 35 42 |
//  ---------------------
// ```
//
// Column c, row r (0 = bottom) occupies bit 7*c + r. Row 6 in every
// column is a sentinel that is never played; it stops shifted-AND win
// checks from wrapping a run of pieces across a column boundary.
package position

const (
	Width     int = 7
	Height    int = 6
	BoardSize int = Width * Height
	Centre    int = Width / 2
	colBits   int = Height + 1 // 7: one extra sentinel bit per column

	// MinScore and MaxScore bound the game-theoretic score returned by the
	// search: a side that can force a win on its very first move scores
	// MaxScore, a side that is lost from the first move scores MinScore.
	MinScore int = -(BoardSize) / 2
	MaxScore int = (BoardSize) / 2
)

// Position is a mutable, reachable Connect Four game state. It is
// constructed empty and evolves only through MakeMove/UndoMove, which
// are exact inverses of one another.
type Position struct {
	// board[i] holds the bitboard of player i's stones.
	board [2]uint64
	// turn is the index, 0 or 1, of the side to move.
	turn int
	// moves is the LIFO stack of columns played from the empty board;
	// its length equals the number of stones on the board.
	moves []int
	// heightMask has exactly one set bit per column: the next square
	// that a piece dropped into that column would occupy.
	heightMask uint64
}

// NewPosition returns an empty board with player 0 to move.
func NewPosition() *Position {
	return &Position{
		board:      [2]uint64{0, 0},
		turn:       0,
		moves:      make([]int, 0, BoardSize),
		heightMask: initialHeightMask(),
	}
}

func initialHeightMask() uint64 {
	var mask uint64
	for c := 0; c < Width; c++ {
		mask |= uint64(1) << uint64(c*colBits)
	}
	return mask
}

// colHeightMask isolates the single set bit of heightMask that lies in
// column col's 7-bit group.
func (p *Position) colHeightMask(col int) uint64 {
	return p.heightMask & columnGroupMask(col)
}

// columnGroupMask covers all seven bits of column col's group, the
// sentinel row included.
func columnGroupMask(col int) uint64 {
	return ((uint64(1) << uint64(colBits)) - 1) << uint64(col*colBits)
}

// columnMask covers the six playable squares of column col.
func columnMask(col int) uint64 {
	return ((uint64(1) << uint64(Height)) - 1) << uint64(col*colBits)
}

// topRowMask has the sentinel bit (row 6) set within column col's
// group: the bit that is never a legal play target.
func topRowMask(col int) uint64 {
	return uint64(1) << uint64(col*colBits+Height)
}

// Turn returns the index, 0 or 1, of the side to move.
func (p *Position) Turn() int {
	return p.turn
}

// Board returns the bitboard of player i's stones.
func (p *Position) Board(i int) uint64 {
	return p.board[i]
}

// HeightMask returns the current next-playable-square mask.
func (p *Position) HeightMask() uint64 {
	return p.heightMask
}

// Moves returns the number of plies played so far.
func (p *Position) Moves() int {
	return len(p.moves)
}

// LastMove returns the most recently played column, or -1 on an empty
// position.
func (p *Position) LastMove() int {
	if len(p.moves) == 0 {
		return -1
	}
	return p.moves[len(p.moves)-1]
}

// IsLegalMove reports whether col has room for another piece.
func (p *Position) IsLegalMove(col int) bool {
	return p.colHeightMask(col)&topRowMask(col) == 0
}

// MakeMove drops the side to move's piece into col. The caller must
// ensure IsLegalMove(col) holds first; the search never calls this
// without having checked legality on the hot path, so dropping into a
// full column is a contract violation left undefined here.
func (p *Position) MakeMove(col int) {
	m := p.colHeightMask(col)
	p.board[p.turn] |= m
	p.turn ^= 1
	p.moves = append(p.moves, col)
	p.heightMask ^= m | (m << 1)
}

// UndoMove reverses the most recent MakeMove. Calling it on an empty
// position is a contract violation.
func (p *Position) UndoMove() {
	n := len(p.moves)
	col := p.moves[n-1]
	p.moves = p.moves[:n-1]
	m := p.colHeightMask(col) >> 1
	p.heightMask ^= m | (m << 1)
	p.turn ^= 1
	p.board[p.turn] &^= m
}

// IsWinningMove reports whether dropping a piece into col completes a
// four-in-a-row for the side to move.
func (p *Position) IsWinningMove(col int) bool {
	b := p.board[p.turn] | p.colHeightMask(col)
	return hasFourInARow(b)
}

// IsWonPosition reports whether either player already has four in a
// row on the board, regardless of whose turn it is.
func (p *Position) IsWonPosition() bool {
	return hasFourInARow(p.board[0]) || hasFourInARow(p.board[1])
}

// hasFourInARow tests a single player's stone mask b for a
// four-in-a-row along any of the four directions, relying on the
// sentinel row to prevent cross-column wraparound.
func hasFourInARow(b uint64) bool {
	// vertical
	if b&(b<<1)&(b<<2)&(b<<3) != 0 {
		return true
	}
	// horizontal
	if b&(b<<colBits)&(b<<(2*colBits))&(b<<(3*colBits)) != 0 {
		return true
	}
	// "/" diagonal
	if b&(b<<(colBits+1))&(b<<(2*(colBits+1)))&(b<<(3*(colBits+1))) != 0 {
		return true
	}
	// "\" diagonal
	if b&(b<<(colBits-1))&(b<<(2*(colBits-1)))&(b<<(3*(colBits-1))) != 0 {
		return true
	}
	return false
}

// PositionFromMoves replays a move sequence (each character '1'-'7',
// 1-indexed columns) from the empty board. An empty moveSequence
// yields the empty board itself. It rejects illegal full-column
// moves, matching the contract the test harness's fixture files
// expect of a move sequence.
func PositionFromMoves(moveSequence string) (*Position, error) {
	p := NewPosition()
	for i, c := range moveSequence {
		if c < '1' || c > '9' {
			return nil, InvalidCharacter{Character: c, Index: i}
		}
		col := int(c-'0') - 1
		if col < 0 || col >= Width {
			return nil, InvalidColumn{Column: col + 1, Index: i}
		}
		if !p.IsLegalMove(col) {
			return nil, InvalidFullColumnMove{Column: col + 1, Index: i}
		}
		p.MakeMove(col)
	}
	return p, nil
}

// PositionFromBoardString parses a Position from a 42-character board
// string read row by row from the top-left, over the alphabet
// ['.', 'o', 'x']: 'x' is the side to move in the resulting position,
// 'o' the opponent, '.' empty. Pieces are replayed column by column,
// bottom-to-top, which is always a legal move order that reaches the
// given board regardless of the real history, so the resulting
// Position supports UndoMove exactly like one built by MakeMove.
func PositionFromBoardString(boardString string) (*Position, error) {
	var chars []rune
	for _, c := range boardString {
		switch c {
		case '.', 'o', 'x':
			chars = append(chars, c)
		}
	}
	if len(chars) != BoardSize {
		return nil, InvalidBoardStringLength{Actual: len(chars), Expected: BoardSize}
	}

	colChars := make([][]rune, Width)
	total := 0
	for i, c := range chars {
		row := Height - (i/Width) - 1
		col := i % Width
		if len(colChars[col]) <= row {
			grown := make([]rune, row+1)
			copy(grown, colChars[col])
			colChars[col] = grown
		}
		colChars[col][row] = c
		if c != '.' {
			total++
		}
	}

	p := NewPosition()
	finalTurn := total % 2
	for col := 0; col < Width; col++ {
		for row := 0; row < len(colChars[col]); row++ {
			c := colChars[col][row]
			if c == 0 || c == '.' {
				continue
			}
			if !p.IsLegalMove(col) {
				return nil, InvalidFullColumnMove{Column: col + 1, Index: row}
			}
			owner := 1 - finalTurn
			if c == 'x' {
				owner = finalTurn
			}
			m := p.colHeightMask(col)
			p.board[owner] |= m
			p.heightMask ^= m | (m << 1)
			p.moves = append(p.moves, col)
		}
	}
	p.turn = finalTurn
	return p, nil
}
