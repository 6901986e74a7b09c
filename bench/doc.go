// Package bench runs the initial-solution benchmark.
//
// For every run a fresh random network is built (RandomDegree with
// [MinDegree, Vertices/3] neighbors and weights in [1, Cycle-1] by default),
// then each Strategy constructs a plan on it. The runner records the total
// penalty, the construction time, and the variety, i.e. the mean Distance of
// the plan to the plans of all earlier runs with the same strategy. With
// LocalSearch enabled every plan is also refined and the refined penalty is
// recorded.
//
// Seeds: one experiment seed derives a seed per run, and the run seed one per
// network and per strategy, so a fixed Config.Seed reproduces every plan
// regardless of Parallel.
//
// Reporting goes through Observer (TerminalObserver, LogObserver,
// MetricsObserver) and, when configured, a RecordSink. Both see runs in order.
//
//	cfg := bench.DefaultConfig()
//	r, _ := bench.NewRunner(cfg, bench.WithObserver(bench.NewTerminalObserver(os.Stdout, "initial solution construction")))
//	res, err := r.Run(ctx)
package bench
