package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/greenwave/core"
)

func TestSolution_CloneIsIndependent(t *testing.T) {
	t.Parallel()
	s := core.SolutionFromTimings([]core.TimeUnit{1, 2, 3})
	c := s.Clone()
	require.True(t, s.Equal(c))

	c.SetTiming(0, 9)
	require.Equal(t, core.TimeUnit(1), s.Timing(0), "clone must not alias the original")
	require.False(t, s.Equal(c))

	c.CopyFrom(s)
	require.True(t, s.Equal(c))
}

func TestSolution_TimingsReturnsCopy(t *testing.T) {
	t.Parallel()
	s := core.NewSolution(2)
	ts := s.Timings()
	ts[0] = 5
	require.Zero(t, s.Timing(0))
	require.Equal(t, 2, s.Len())
}

func TestSolution_NegativeSize(t *testing.T) {
	t.Parallel()
	require.Zero(t, core.NewSolution(-3).Len())
}

func TestSolution_EqualNil(t *testing.T) {
	t.Parallel()
	var a, b *core.Solution
	require.True(t, a.Equal(b))
	require.False(t, core.NewSolution(1).Equal(nil))
}

func TestSolution_Validate(t *testing.T) {
	t.Parallel()
	n, err := core.NewNetwork(3, core.WithCycle(4))
	require.NoError(t, err)

	require.NoError(t, core.SolutionFromTimings([]core.TimeUnit{0, 3, 2}).Validate(n))
	require.ErrorIs(t, core.NewSolution(2).Validate(n), core.ErrSolutionMismatch)
	require.ErrorIs(t, core.SolutionFromTimings([]core.TimeUnit{0, 4, 0}).Validate(n), core.ErrTimingOutOfRange)
	require.ErrorIs(t, core.SolutionFromTimings([]core.TimeUnit{-1, 0, 0}).Validate(n), core.ErrTimingOutOfRange)
}
