// Command c4solver scores a single Connect Four position, runs a
// harness test file, or breaks down every root move's score.
//
// Usage:
//
//	c4solver -moves 444444
//	c4solver -test testcases.txt
//	c4solver -moves 1234 -analyze
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	c4solver "github.com/YKhan142008/c4-solver"
	"github.com/YKhan142008/c4-solver/internal/harness"
	"github.com/YKhan142008/c4-solver/internal/logging"
	"github.com/YKhan142008/c4-solver/internal/position"
	"github.com/YKhan142008/c4-solver/internal/store"
	"github.com/YKhan142008/c4-solver/internal/telemetry"
)

var (
	moves     = flag.String("moves", "", "move sequence to score, e.g. 444444")
	testFile  = flag.String("test", "", "path to a harness test file (lines of '<move-sequence> <score>') to run")
	analyze   = flag.Bool("analyze", false, "score every legal root move instead of just the position")
	weak      = flag.Bool("weak", false, "weak-solve: report only who wins, not the exact margin")
	verbosity = flag.Int("v", 0, "log verbosity")

	snapshotDB   = flag.String("snapshot-db", "", "badger directory to load/save the transposition table from/to")
	snapshotFile = flag.String("snapshot", "", "compressed snapshot file to load/save via -snapshot-db")
)

func main() {
	flag.Parse()
	logger := logging.New(os.Stdout, *verbosity)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	recorder, err := telemetry.NewRecorder(provider.Meter("c4solver"))
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}

	solver := c4solver.NewSolver()
	if *snapshotDB != "" {
		snap, err := store.Open(*snapshotDB, logger)
		if err != nil {
			log.Fatalf("open snapshot db: %v", err)
		}
		defer snap.Close()
		if *snapshotFile != "" {
			if _, statErr := os.Stat(*snapshotFile); statErr == nil {
				if err := snap.LoadCompressed(*snapshotFile); err != nil {
					log.Fatalf("load snapshot: %v", err)
				}
			}
		}
		if err := snap.Import(solver.Table()); err != nil {
			log.Fatalf("import snapshot: %v", err)
		}
		defer func() {
			if err := snap.Export(solver.Table()); err != nil {
				logger.Error(err, "export snapshot")
				return
			}
			if *snapshotFile != "" {
				if err := snap.SaveCompressed(*snapshotFile); err != nil {
					logger.Error(err, "save snapshot")
				}
			}
		}()
	}

	ctx := context.Background()

	switch {
	case *testFile != "":
		runTestFile(ctx, solver, recorder, *testFile)
	case *moves != "":
		if *analyze {
			runAnalyze(ctx, solver, recorder, *moves)
		} else {
			runScore(ctx, solver, recorder, *moves, *weak)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: c4solver -moves <sequence> | -test <file>")
		os.Exit(2)
	}
}

func runScore(ctx context.Context, solver *c4solver.Solver, rec *telemetry.Recorder, moves string, weak bool) {
	pos, err := position.PositionFromMoves(moves)
	if err != nil {
		log.Fatalf("invalid move sequence: %v", err)
	}
	scoreFn := solver.Score
	if weak {
		scoreFn = solver.WeakScore
	}
	value, nodes, elapsed := telemetry.Timed(ctx, rec, func() (int, uint64) { return scoreFn(pos) })
	fmt.Printf("score=%d nodes=%s elapsed=%s\n", value, humanize.Comma(int64(nodes)), elapsed)
}

func runAnalyze(ctx context.Context, solver *c4solver.Solver, rec *telemetry.Recorder, moves string) {
	pos, err := position.PositionFromMoves(moves)
	if err != nil {
		log.Fatalf("invalid move sequence: %v", err)
	}
	for col := 0; col < position.Width; col++ {
		if !pos.IsLegalMove(col) {
			fmt.Printf("column %d: full\n", col+1)
			continue
		}
		pos.MakeMove(col)
		value, nodes, elapsed := telemetry.Timed(ctx, rec, func() (int, uint64) { return solver.Score(pos) })
		pos.UndoMove()
		// Score is from the perspective of the side now to move (the
		// opponent), so negate to report from the analyzing side's view.
		fmt.Printf("column %d: score=%d nodes=%s elapsed=%s\n", col+1, -value, humanize.Comma(int64(nodes)), elapsed)
	}
}

func runTestFile(ctx context.Context, solver *c4solver.Solver, rec *telemetry.Recorder, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	cases, err := harness.Read(f)
	if err != nil {
		log.Fatalf("parse %s: %v", path, err)
	}
	fmt.Printf("loaded %d cases (checksum %x)\n", len(cases), harness.Checksum(cases))

	start := time.Now()
	results, err := harness.Run(cases, solver)
	if err != nil {
		log.Fatalf("run %s: %v", path, err)
	}
	var totalNodes uint64
	for _, r := range results {
		totalNodes += r.Nodes
	}
	rec.RecordSearch(ctx, totalNodes, time.Since(start))

	mismatches := harness.Mismatches(results)
	for _, m := range mismatches {
		fmt.Printf("line %d: %q got %d, want %d\n", m.Case.Line, m.Case.MoveSequence, m.Got, m.Case.ExpectedScore)
	}
	fmt.Printf("%d/%d passed, %s nodes total\n", len(results)-len(mismatches), len(results), humanize.Comma(int64(totalNodes)))
	if len(mismatches) > 0 {
		os.Exit(1)
	}
}

