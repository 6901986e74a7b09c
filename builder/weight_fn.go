package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/greenwave/core"
)

// DefaultEdgeWeight is the travel time assigned to each street when no
// custom WeightFn is provided.
const DefaultEdgeWeight core.Weight = 1

// WeightFn produces a street travel time given an optional *rand.Rand source.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) core.Weight

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) core.Weight {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value core.Weight) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) core.Weight {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if min < 0 or max < min. With a nil rng it yields min.
// Complexity: O(1) time, O(1) space.
func UniformWeightFn(min, max core.Weight) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) core.Weight {
		if rng == nil || max == min {
			return min
		}
		return min + core.Weight(rng.Intn(int(max-min)+1))
	}
}
