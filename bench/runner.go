package bench

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/greenwave/builder"
	"github.com/katalvlaran/greenwave/core"
	"github.com/katalvlaran/greenwave/heuristic"
)

// Seed streams derived from a run seed.
const (
	streamGraph uint64 = iota
	streamRandom
	streamHeuristic
)

// refineStream is mixed into a construction seed to seed its refinement.
const refineStream uint64 = 0x5eed

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithObserver adds an observer. Panics on nil.
func WithObserver(o Observer) RunnerOption {
	if o == nil {
		panic("bench: WithObserver(nil)")
	}
	return func(r *Runner) { r.observers.list = append(r.observers.list, o) }
}

// WithRecordSink makes the Runner save every record. Panics on nil.
func WithRecordSink(s RecordSink) RunnerOption {
	if s == nil {
		panic("bench: WithRecordSink(nil)")
	}
	return func(r *Runner) { r.sink = s }
}

// Runner executes the initial-solution benchmark: for every run a fresh
// random network is built and each strategy constructs (and optionally
// refines) a plan on it.
type Runner struct {
	cfg       Config
	observers observers
	sink      RecordSink
}

// Result is everything a Run produced.
type Result struct {
	Experiment Experiment
	Records    []Record
	Summary    Summary
}

// NewRunner validates cfg and applies opts.
func NewRunner(cfg Config, opts ...RunnerOption) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("NewRunner: %w", err)
	}
	r := &Runner{cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run executes cfg.Runs runs, at most cfg.Parallel at a time. Every run owns
// its network, plans and generators; with a fixed cfg.Seed the records are
// identical across executions up to timings and ids.
//
// Records are finalized, saved and reported in run order. On error the
// records finalized so far are returned with it.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	seed := r.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	exp := Experiment{ID: uuid.NewString(), Seed: seed, Config: r.cfg}

	r.observers.benchmarkBegun(exp)

	em := newEmitter(r, exp)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Parallel)
	for run := 0; run < r.cfg.Runs; run++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.observers.runBegun(exp, run)

			out, err := r.runOnce(gctx, exp, run)
			if err != nil {
				return fmt.Errorf("run %d: %w", run, err)
			}
			return em.complete(gctx, out)
		})
	}
	if err := g.Wait(); err != nil {
		return Result{Experiment: exp, Records: em.records}, fmt.Errorf("Run: %w", err)
	}

	summary := Summarize(exp.ID, em.records)
	r.observers.benchmarkEnded(exp, summary)

	return Result{Experiment: exp, Records: em.records, Summary: summary}, nil
}

// runOutcome is a finished run awaiting finalization.
type runOutcome struct {
	run     int
	graph   *core.Network
	plans   []*core.Solution // parallel to Strategies
	records []Record         // parallel to Strategies
}

func (r *Runner) runOnce(ctx context.Context, exp Experiment, run int) (*runOutcome, error) {
	runSeed := heuristic.DeriveSeed(exp.Seed, uint64(run))

	g, err := r.buildNetwork(heuristic.DeriveSeed(runSeed, streamGraph))
	if err != nil {
		return nil, err
	}

	out := &runOutcome{
		run:     run,
		graph:   g,
		plans:   make([]*core.Solution, len(Strategies)),
		records: make([]Record, len(Strategies)),
	}
	runID := uuid.NewString()
	components := len(g.ConnectedComponents())
	streams := map[Strategy]uint64{StrategyRandom: streamRandom, StrategyHeuristic: streamHeuristic}

	for i, st := range Strategies {
		seed := heuristic.DeriveSeed(runSeed, streams[st])

		start := time.Now()
		plan, err := r.construct(g, st, seed)
		elapsed := time.Since(start)
		if err != nil {
			return nil, fmt.Errorf("%s construction: %w", st, err)
		}

		rec := Record{
			ExperimentID: exp.ID,
			RunID:        runID,
			Run:          run,
			Strategy:     st,
			Vertices:     g.NumberOfVertices(),
			Edges:        g.EdgeCount(),
			Components:   components,
			Cycle:        int(g.Cycle()),
			Seed:         runSeed,
			Penalty:      int64(g.TotalPenalty(plan)),
			Duration:     elapsed,
		}
		if r.cfg.LocalSearch.Enabled {
			if err := r.refine(ctx, g, plan, heuristic.DeriveSeed(seed, refineStream), &rec); err != nil {
				return nil, fmt.Errorf("%s refinement: %w", st, err)
			}
		}
		rec.CreatedAt = time.Now().UTC()

		out.plans[i] = plan
		out.records[i] = rec
	}

	return out, nil
}

func (r *Runner) buildNetwork(seed int64) (*core.Network, error) {
	minDeg, maxDeg := r.cfg.degreeRange()
	minW, maxW := r.cfg.weightRange()

	return builder.BuildNetwork(r.cfg.Vertices,
		[]core.NetworkOption{core.WithCycle(core.TimeUnit(r.cfg.Cycle))},
		[]builder.BuilderOption{
			builder.WithSeed(seed),
			builder.WithWeightRange(core.Weight(minW), core.Weight(maxW)),
		},
		builder.RandomDegree(minDeg, maxDeg),
	)
}

func (r *Runner) construct(g core.Graph, st Strategy, seed int64) (*core.Solution, error) {
	switch st {
	case StrategyRandom:
		return heuristic.ConstructRandomSolution(g, heuristic.WithSeed(seed))
	case StrategyHeuristic:
		return heuristic.ConstructHeuristicSolution(g, r.cfg.TuplesPerIteration, heuristic.WithSeed(seed))
	default:
		return nil, fmt.Errorf("unknown strategy %q", st)
	}
}

// refine runs the local-search phase and fills the refinement fields of rec.
// Cancellation of ctx stops the search at the next iteration boundary.
func (r *Runner) refine(ctx context.Context, g core.Graph, plan *core.Solution, seed int64, rec *Record) error {
	ls := r.cfg.LocalSearch
	criteria := []heuristic.StopCriteria{
		heuristic.NumberOfIterations(ls.MaxIterations),
		heuristic.StopFunc(func(heuristic.LocalSearchMetrics) bool { return ctx.Err() == nil }),
	}
	if ls.MaxStall > 0 {
		criteria = append(criteria, heuristic.NumberOfIterationsWithoutImprovement(ls.MaxStall))
	}

	start := time.Now()
	best, m, err := heuristic.LocalSearch(g, plan, ls.Perturbations, heuristic.AllOf(criteria...), heuristic.WithSeed(seed))
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	rec.Refined = true
	rec.RefinedPenalty = int64(g.TotalPenalty(best))
	rec.RefineIterations = m.Iterations
	rec.RefineDuration = elapsed
	return nil
}
