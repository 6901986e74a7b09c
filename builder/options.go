// SPDX-License-Identifier: MIT
// Package: greenwave/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math/rand"

	"github.com/katalvlaran/greenwave/core"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before network construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-street travel-time generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithWeightRange draws travel times uniformly in [min, max].
// Panics under the same conditions as UniformWeightFn.
func WithWeightRange(min, max core.Weight) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithConstWeight gives every street travel time w. Panics if w < 0.
func WithConstWeight(w core.Weight) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}
