// Package builder assembles street networks for benchmarks, tests and examples
// from small, composable "functional-options"-style building blocks.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildNetwork:      creates a core.Network and applies Constructors in order.
//     – Constructor:       a closure that adds edges to a network using builderConfig.
//   - Topologies:
//     – Ring, Path, Complete: deterministic fixtures.
//     – RandomDegree:      every vertex draws a target degree in [minDeg,maxDeg]
//     and is paired with random partners; the benchmark topology.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: RNG for stochastic topologies and weights.
//     – WithWeightFn/WithWeightRange/WithConstWeight: travel-time policy.
//   - Travel-time distributions (WeightFn implementations):
//     – ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Determinism: same size, options, seed and constructor order ⇒ identical networks.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name (errors.Is friendly).
//   - RandomDegree never leaves an isolated vertex, so its output always passes
//     core.Network.Validate.
package builder
