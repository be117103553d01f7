// Package telemetry instruments the solver with OpenTelemetry metrics:
// a counter of nodes expanded and a histogram of search wall-clock
// duration, recorded by the c4solver CLI around each score call or
// harness run. The bench tool does not use it.
package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// Recorder records node counts and search durations against a given
// metric.Meter (typically the global MeterProvider's "c4solver" meter,
// or a no-op meter in tests).
type Recorder struct {
	nodesExpanded metric.Int64Counter
	searchSeconds metric.Float64Histogram
}

// NewRecorder builds a Recorder's instruments on meter.
func NewRecorder(meter metric.Meter) (*Recorder, error) {
	nodes, err := meter.Int64Counter(
		"c4solver.nodes_expanded",
		metric.WithDescription("total search nodes expanded"),
		metric.WithUnit("{node}"),
	)
	if err != nil {
		return nil, err
	}
	seconds, err := meter.Float64Histogram(
		"c4solver.search_duration",
		metric.WithDescription("wall-clock time to score one position"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}
	return &Recorder{nodesExpanded: nodes, searchSeconds: seconds}, nil
}

// RecordSearch records a completed Score call's node count and
// duration.
func (r *Recorder) RecordSearch(ctx context.Context, nodes uint64, elapsed time.Duration) {
	r.nodesExpanded.Add(ctx, int64(nodes))
	r.searchSeconds.Record(ctx, elapsed.Seconds())
}

// Timed runs fn, recording the elapsed wall-clock time and the node
// count fn reports, and returns fn's result unchanged.
func Timed(ctx context.Context, r *Recorder, fn func() (int, uint64)) (int, uint64, time.Duration) {
	start := time.Now()
	value, nodes := fn()
	elapsed := time.Since(start)
	r.RecordSearch(ctx, nodes, elapsed)
	return value, nodes, elapsed
}
