package bench

import (
	"context"
	"time"
)

// Strategy names an initial-solution constructor.
type Strategy string

const (
	StrategyRandom    Strategy = "random"
	StrategyHeuristic Strategy = "heuristic"
)

// Strategies lists the benchmarked strategies in reporting order.
var Strategies = []Strategy{StrategyRandom, StrategyHeuristic}

// Record is the outcome of one strategy in one run. Records are keyed by
// (RunID, Strategy).
type Record struct {
	ExperimentID string
	RunID        string
	Run          int
	Strategy     Strategy

	Vertices   int
	Edges      int
	Components int
	Cycle      int
	Seed       int64

	// Penalty is the total penalty of the constructed plan.
	Penalty int64
	// Variety is the mean distance to the plans of earlier runs with the
	// same strategy; 0 for run 0.
	Variety  float64
	Duration time.Duration

	// Refinement fields are set when the local-search phase ran.
	Refined          bool
	RefinedPenalty   int64
	RefineIterations int
	RefineDuration   time.Duration

	CreatedAt time.Time
}

// RecordSink receives every finalized Record in run order.
// storage.Store implementations satisfy it.
type RecordSink interface {
	SaveRecord(ctx context.Context, rec Record) error
}
