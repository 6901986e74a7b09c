// Package greenwave computes and refines traffic-light timing plans so that
// platoons travelling between neighbouring lights are delayed as little as
// possible.
//
// 🚦 What is greenwave?
//
//	A small, seedable toolkit for benchmarking construction and local-search
//	strategies on the green-wave timing problem:
//		• Core model: lights, streets with travel times, a cycle of C ticks
//		• Builders: random bounded-degree cities, rings, paths, cliques
//		• Constructors: uniform random, randomized pairwise heuristic
//		• Distance: circular timing distance to measure plan variety
//		• Local search: roulette acceptance with a shadow best-so-far plan
//		• Benchmark: parallel runs, observers, Prometheus metrics, record stores
//
// ✨ Why greenwave?
//
//   - Reproducible: every entry point takes a seed; nothing shares a generator
//   - Plain errors: sentinel errors for every precondition, no panics on input
//   - Composable: stop criteria combine with AllOf/AnyOf/Timeout
//
// Layout:
//
//	core/       - Graph contract, Network, Solution, the lag penalty
//	builder/    - seeded network constructors
//	heuristic/  - constructors, Distance, LocalSearch, stop criteria
//	bench/      - benchmark runner, config, observers
//	storage/    - memory, SQLite and PostgreSQL record stores
//	cmd/greenwave-bench/ - command-line benchmark
//
// Quick ASCII example:
//
//	    0 ──3── 1 ──2── 2
//
//	three lights on a corridor; timings {0, 3, 5} form a green wave.
//
//	go get github.com/katalvlaran/greenwave
package greenwave
