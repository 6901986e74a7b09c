package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greenwave/builder"
	"github.com/katalvlaran/greenwave/core"
)

func TestOptions_PanicOnMeaninglessInput(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithWeightRange(5, 1) })
	assert.Panics(t, func() { builder.WithWeightRange(-1, 1) })
	assert.Panics(t, func() { builder.WithConstWeight(-2) })
}

func TestOptions_LastWins(t *testing.T) {
	t.Parallel()
	n, err := builder.BuildNetwork(4, nil,
		[]builder.BuilderOption{builder.WithConstWeight(2), builder.WithConstWeight(7)},
		builder.Path())
	require.NoError(t, err)
	for _, e := range n.Edges() {
		require.Equal(t, core.Weight(7), e.Weight)
	}
}

func TestOptions_WithRandDrivesWeights(t *testing.T) {
	t.Parallel()
	build := func() []core.Edge {
		n, err := builder.BuildNetwork(8, nil,
			[]builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(11))), builder.WithWeightRange(0, 50)},
			builder.Complete())
		require.NoError(t, err)
		return n.Edges()
	}
	require.Equal(t, build(), build())
}

func TestUniformWeightFn(t *testing.T) {
	t.Parallel()
	fn := builder.UniformWeightFn(3, 6)
	require.Equal(t, core.Weight(3), fn(nil), "nil rng yields min")

	rng := rand.New(rand.NewSource(5))
	seen := map[core.Weight]bool{}
	for i := 0; i < 500; i++ {
		w := fn(rng)
		require.GreaterOrEqual(t, w, core.Weight(3))
		require.LessOrEqual(t, w, core.Weight(6))
		seen[w] = true
	}
	require.Len(t, seen, 4, "every value of the closed range is reachable")

	require.Equal(t, core.Weight(4), builder.UniformWeightFn(4, 4)(rng))
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	require.Equal(t, core.Weight(9), builder.ConstantWeightFn(9)(nil))
}
