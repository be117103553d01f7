package search

import (
	"testing"

	"github.com/YKhan142008/c4-solver/internal/position"
	"github.com/YKhan142008/c4-solver/internal/tt"
)

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func TestWeakScoreMatchesStrongScoreSign(t *testing.T) {
	seqs := []string{
		"1111112222223433333444445555556767",
		"1111112222223433333444445555556766",
		"111111222222343333344444555555676",
	}
	for _, seq := range seqs {
		pos, err := position.PositionFromMoves(seq)
		if err != nil {
			t.Fatal(err)
		}
		strong, _ := Score(pos, tt.New())
		weak, _ := WeakScore(pos, tt.New())
		if sign(strong) != sign(weak) {
			t.Fatalf("%q: strong sign %d != weak sign %d (strong=%d weak=%d)", seq, sign(strong), sign(weak), strong, weak)
		}
	}
}

func TestWeakScoreCheaperThanStrongScore(t *testing.T) {
	seq := "1111112222223433333444445555556767"
	pos, err := position.PositionFromMoves(seq)
	if err != nil {
		t.Fatal(err)
	}
	_, strongNodes := Score(pos, tt.New())
	_, weakNodes := WeakScore(pos, tt.New())
	if weakNodes > strongNodes {
		t.Fatalf("weak solve expanded more nodes (%d) than strong solve (%d)", weakNodes, strongNodes)
	}
}

func TestTranspositionTablePersistsAcrossProbes(t *testing.T) {
	pos, err := position.PositionFromMoves("444444")
	if err != nil {
		t.Fatal(err)
	}
	table := tt.New()
	_, nodesFirst := Score(pos, table)
	_, nodesSecond := Score(pos, table)
	if nodesSecond > nodesFirst {
		t.Fatalf("second solve with warm table expanded more nodes (%d) than the first (%d)", nodesSecond, nodesFirst)
	}
}
