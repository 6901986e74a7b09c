package heuristic

import (
	"errors"

	"github.com/katalvlaran/greenwave/core"
)

// Sentinel errors. Callers branch with errors.Is.
var (
	// ErrInvalidGraph is returned when the graph violates the preconditions of
	// the algorithms (no vertices, cycle < 1, isolated vertex where a neighbor
	// is required).
	ErrInvalidGraph = errors.New("heuristic: invalid graph")

	// ErrInvalidParameter is returned for a zero candidate count, a zero
	// perturbation count, or a missing solution/stop criteria.
	ErrInvalidParameter = errors.New("heuristic: invalid parameter")
)

// DefaultTuplesPerIteration is the sample width K used by the benchmark for
// ConstructHeuristicSolution.
const DefaultTuplesPerIteration = 1

// LocalSearchMetrics are the counters a StopCriteria inspects. Iterations
// only grows; IterationsWithoutImprovement resets to 0 after an improving
// iteration.
type LocalSearchMetrics struct {
	// Iterations counts completed iterations.
	Iterations int

	// IterationsWithoutImprovement counts consecutive iterations in which no
	// perturbation beat the working solution's penalty at the touched vertex.
	IterationsWithoutImprovement int
}

// IterationReport describes one completed LocalSearch iteration.
// It is passed to the hook installed with WithIterationHook.
type IterationReport struct {
	// Vertex is the light perturbed in this iteration.
	Vertex core.Vertex

	// BestPenaltyBefore and BestPenaltyAfter are VertexPenalty(Vertex) on the
	// best-so-far plan before and after the iteration; After ≤ Before.
	BestPenaltyBefore core.TimeUnit
	BestPenaltyAfter  core.TimeUnit

	// AcceptedTiming is the timing the roulette committed to the working plan.
	AcceptedTiming core.TimeUnit

	// Improved reports whether some perturbation beat the working penalty.
	Improved bool

	// Metrics are the counters after this iteration.
	Metrics LocalSearchMetrics
}

// perturbation is one candidate timing for the vertex of the current iteration.
type perturbation struct {
	timing  core.TimeUnit
	penalty core.TimeUnit
}
