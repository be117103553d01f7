package search

import (
	"testing"

	"github.com/YKhan142008/c4-solver/internal/position"
	"github.com/YKhan142008/c4-solver/internal/tt"
)

func scoreSequence(t *testing.T, seq string) (int, uint64) {
	t.Helper()
	pos, err := position.PositionFromMoves(seq)
	if err != nil {
		t.Fatalf("PositionFromMoves(%q): %v", seq, err)
	}
	table := tt.New()
	return Score(pos, table)
}

func TestLiteralEndToEndScenarios(t *testing.T) {
	cases := []struct {
		seq   string
		score int
	}{
		{"11111122222234333334444455555567676776767", 0},
		{"1111112222223433333444445555556767677", 0},
		{"1111112222223433333444445555556767", 3},
		{"1111112222223433333444445555556766", -2},
		{"111111222222343333344444555555676", 2},
	}
	for _, c := range cases {
		got, _ := scoreSequence(t, c.seq)
		if got != c.score {
			t.Errorf("Score(%q) = %d, want %d", c.seq, got, c.score)
		}
	}
}

func TestScoreBoundsWithinMaxRange(t *testing.T) {
	seqs := []string{"444444", "4444", "1234567", "112233"}
	for _, seq := range seqs {
		pos, err := position.PositionFromMoves(seq)
		if err != nil {
			t.Fatal(err)
		}
		table := tt.New()
		value, _ := Score(pos, table)
		limit := (position.BoardSize + 1 - pos.Moves()) / 2
		if value > limit || value < -limit {
			t.Errorf("Score(%q) = %d, exceeds bound +-%d", seq, value, limit)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	seq := "444444"
	v1, n1 := scoreSequence(t, seq)
	v2, n2 := scoreSequence(t, seq)
	if v1 != v2 || n1 != n2 {
		t.Fatalf("non-deterministic: (%d,%d) != (%d,%d)", v1, n1, v2, n2)
	}
}

func TestScoreRestoresPositionBitExactly(t *testing.T) {
	pos, err := position.PositionFromMoves("112233")
	if err != nil {
		t.Fatal(err)
	}
	before := [2]uint64{pos.Board(0), pos.Board(1)}
	beforeTurn := pos.Turn()
	beforeMoves := pos.Moves()
	beforeHeight := pos.HeightMask()

	table := tt.New()
	Score(pos, table)

	if pos.Board(0) != before[0] || pos.Board(1) != before[1] ||
		pos.Turn() != beforeTurn || pos.Moves() != beforeMoves ||
		pos.HeightMask() != beforeHeight {
		t.Fatalf("Score mutated the position")
	}
}

func TestImmediateWinScoresMax(t *testing.T) {
	// After "1212121" (0-indexed [0,1,0,1,0,1,0]) the side to move has
	// three stacked in column 1 with the square above open and playable
	// right now, so it wins on this move and scores the maximum. (Column 0
	// already holds four of the opponent's stones; PositionFromMoves does
	// not reject moves played after a win.)
	pos, err := position.PositionFromMoves("1212121")
	if err != nil {
		t.Fatal(err)
	}
	table := tt.New()
	value, _ := Score(pos, table)
	limit := (position.BoardSize + 1 - pos.Moves()) / 2
	if value != limit {
		t.Fatalf("Score = %d, want max possible %d", value, limit)
	}
}

func TestMirrorPositionsScoreEqual(t *testing.T) {
	v1, _ := scoreSequence(t, "1122")
	v2, _ := scoreSequence(t, "7766")
	if v1 != v2 {
		t.Fatalf("mirrored positions scored differently: %d != %d", v1, v2)
	}
}
