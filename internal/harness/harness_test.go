package harness

import (
	"strings"
	"testing"

	c4solver "github.com/YKhan142008/c4-solver"
)

const fixture = `444444 0
1111112222223433333444445555556767 3
1111112222223433333444445555556766 -2

111111222222343333344444555555676 2
`

func TestReadParsesFixture(t *testing.T) {
	cases, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(cases) != 4 {
		t.Fatalf("len(cases) = %d, want 4", len(cases))
	}
	if cases[0].MoveSequence != "444444" || cases[0].ExpectedScore != 0 {
		t.Fatalf("cases[0] = %+v", cases[0])
	}
	if cases[1].ExpectedScore != 3 {
		t.Fatalf("cases[1].ExpectedScore = %d, want 3", cases[1].ExpectedScore)
	}
}

func TestReadRejectsMalformedLine(t *testing.T) {
	_, err := Read(strings.NewReader("444444 not-a-score\n"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var perr ParseError
	if pe, ok := err.(ParseError); ok {
		perr = pe
	} else {
		t.Fatalf("expected ParseError, got %T", err)
	}
	if perr.Line != 1 {
		t.Fatalf("ParseError.Line = %d, want 1", perr.Line)
	}
}

func TestReadRejectsIllegalMoveSequence(t *testing.T) {
	_, err := Read(strings.NewReader("1111111 0\n"))
	if err == nil {
		t.Fatalf("expected parse error for overfull column")
	}
}

func TestChecksumStableAcrossRuns(t *testing.T) {
	cases, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	c1 := Checksum(cases)
	cases2, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	c2 := Checksum(cases2)
	if c1 != c2 {
		t.Fatalf("checksum not stable: %d != %d", c1, c2)
	}
}

func TestRunReportsPassAndFail(t *testing.T) {
	cases, err := Read(strings.NewReader(fixture))
	if err != nil {
		t.Fatal(err)
	}
	solver := c4solver.NewSolver()
	results, err := Run(cases, solver)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(cases) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(cases))
	}
	for _, r := range results {
		if !r.Passed {
			t.Errorf("case %q: got %d, want %d", r.Case.MoveSequence, r.Got, r.Case.ExpectedScore)
		}
	}
	if len(Mismatches(results)) != 0 {
		t.Fatalf("expected no mismatches for the known-good fixture")
	}
}
