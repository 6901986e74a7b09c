package heuristic_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/greenwave/builder"
	"github.com/katalvlaran/greenwave/core"
	"github.com/katalvlaran/greenwave/heuristic"
)

type LocalSearchSuite struct {
	suite.Suite
	triangle *core.Network
	city     *core.Network
}

func (s *LocalSearchSuite) SetupTest() {
	var err error
	s.triangle, err = builder.BuildNetwork(3,
		[]core.NetworkOption{core.WithCycle(6)}, nil, builder.Ring())
	s.Require().NoError(err)

	s.city, err = builder.BuildNetwork(30,
		[]core.NetworkOption{core.WithCycle(20)},
		[]builder.BuilderOption{builder.WithSeed(8), builder.WithWeightRange(1, 19)},
		builder.RandomDegree(1, 6))
	s.Require().NoError(err)
}

func TestLocalSearchSuite(t *testing.T) {
	suite.Run(t, new(LocalSearchSuite))
}

func (s *LocalSearchSuite) TestTriangle_BestNotWorseThanInitial() {
	initial := core.NewSolution(3)
	initialTotal := s.triangle.TotalPenalty(initial)

	best, m, err := heuristic.LocalSearch(s.triangle, initial, 3,
		heuristic.NumberOfIterations(100), heuristic.WithSeed(17))
	s.Require().NoError(err)
	s.Equal(100, m.Iterations)
	s.LessOrEqual(s.triangle.TotalPenalty(best), initialTotal)
	s.NoError(best.Validate(s.triangle))
}

func (s *LocalSearchSuite) TestExactIterationCount() {
	initial, err := heuristic.ConstructRandomSolution(s.city, heuristic.WithSeed(1))
	s.Require().NoError(err)

	for _, k := range []int{0, 1, 7, 250} {
		_, m, err := heuristic.LocalSearch(s.city, initial, 2, heuristic.NumberOfIterations(k))
		s.Require().NoError(err)
		s.Equal(k, m.Iterations)
	}
}

func (s *LocalSearchSuite) TestBestTrackingIsMonotonic() {
	initial, err := heuristic.ConstructRandomSolution(s.city, heuristic.WithSeed(2))
	s.Require().NoError(err)

	var reports []heuristic.IterationReport
	hook := heuristic.WithIterationHook(func(r heuristic.IterationReport) {
		reports = append(reports, r)
	})

	best, m, err := heuristic.LocalSearch(s.city, initial, 4,
		heuristic.NumberOfIterations(500), heuristic.WithSeed(3), hook)
	s.Require().NoError(err)
	s.Require().Len(reports, 500)

	for i, r := range reports {
		s.LessOrEqualf(r.BestPenaltyAfter, r.BestPenaltyBefore, "iteration %d", i)
		s.Equal(i+1, r.Metrics.Iterations)
		s.GreaterOrEqual(r.AcceptedTiming, core.TimeUnit(0))
		s.Less(r.AcceptedTiming, s.city.Cycle())
	}
	s.Equal(reports[len(reports)-1].Metrics, m)
	s.LessOrEqual(s.city.TotalPenalty(best), s.city.TotalPenalty(initial))
}

func (s *LocalSearchSuite) TestStallCounter() {
	initial, err := heuristic.ConstructHeuristicSolution(s.city, 4, heuristic.WithSeed(4))
	s.Require().NoError(err)

	var prev heuristic.LocalSearchMetrics
	hook := heuristic.WithIterationHook(func(r heuristic.IterationReport) {
		if r.Improved {
			s.Zero(r.Metrics.IterationsWithoutImprovement)
		} else {
			s.Equal(prev.IterationsWithoutImprovement+1, r.Metrics.IterationsWithoutImprovement)
		}
		prev = r.Metrics
	})

	_, m, err := heuristic.LocalSearch(s.city, initial, 1,
		heuristic.AllOf(
			heuristic.NumberOfIterations(2000),
			heuristic.NumberOfIterationsWithoutImprovement(25),
		),
		heuristic.WithSeed(5), hook)
	s.Require().NoError(err)
	s.LessOrEqual(m.Iterations, 2000)
	s.True(m.Iterations == 2000 || m.IterationsWithoutImprovement == 25, "metrics %+v", m)
}

// TestStallLimitOnFlatLandscape runs on a single-tick cycle where every timing
// is 0, so no iteration can improve and the stall limit ends the search.
func (s *LocalSearchSuite) TestStallLimitOnFlatLandscape() {
	flat, err := builder.BuildNetwork(6, []core.NetworkOption{core.WithCycle(1)}, nil, builder.Ring())
	s.Require().NoError(err)

	_, m, err := heuristic.LocalSearch(flat, core.NewSolution(6), 3,
		heuristic.NumberOfIterationsWithoutImprovement(25), heuristic.WithSeed(5))
	s.Require().NoError(err)
	s.Equal(heuristic.LocalSearchMetrics{Iterations: 25, IterationsWithoutImprovement: 25}, m)
}

func (s *LocalSearchSuite) TestInitialIsNotModified() {
	initial, err := heuristic.ConstructRandomSolution(s.city, heuristic.WithSeed(6))
	s.Require().NoError(err)
	snapshot := initial.Clone()

	_, _, err = heuristic.LocalSearch(s.city, initial, 3, heuristic.NumberOfIterations(200))
	s.Require().NoError(err)
	s.True(initial.Equal(snapshot))
}

func (s *LocalSearchSuite) TestDeterministic() {
	initial, err := heuristic.ConstructRandomSolution(s.city, heuristic.WithSeed(7))
	s.Require().NoError(err)

	a, ma, err := heuristic.LocalSearch(s.city, initial, 3, heuristic.NumberOfIterations(300), heuristic.WithSeed(77))
	s.Require().NoError(err)
	b, mb, err := heuristic.LocalSearch(s.city, initial, 3, heuristic.NumberOfIterations(300), heuristic.WithSeed(77))
	s.Require().NoError(err)
	s.True(a.Equal(b))
	s.Equal(ma, mb)
}

func (s *LocalSearchSuite) TestErrors() {
	initial := core.NewSolution(3)
	stop := heuristic.NumberOfIterations(1)

	_, _, err := heuristic.LocalSearch(s.triangle, initial, 0, stop)
	s.ErrorIs(err, heuristic.ErrInvalidParameter)

	_, _, err = heuristic.LocalSearch(s.triangle, initial, 1, nil)
	s.ErrorIs(err, heuristic.ErrInvalidParameter)

	_, _, err = heuristic.LocalSearch(s.triangle, nil, 1, stop)
	s.ErrorIs(err, heuristic.ErrInvalidParameter)

	_, _, err = heuristic.LocalSearch(s.triangle, core.NewSolution(4), 1, stop)
	s.ErrorIs(err, core.ErrSolutionMismatch)

	_, _, err = heuristic.LocalSearch(nil, initial, 1, stop)
	s.ErrorIs(err, heuristic.ErrInvalidGraph)
}

func TestStopCriteria(t *testing.T) {
	t.Parallel()
	m := func(it, stall int) heuristic.LocalSearchMetrics {
		return heuristic.LocalSearchMetrics{Iterations: it, IterationsWithoutImprovement: stall}
	}

	iters := heuristic.NumberOfIterations(10)
	assert.True(t, iters.Continue(m(9, 0)))
	assert.False(t, iters.Continue(m(10, 0)))

	stall := heuristic.NumberOfIterationsWithoutImprovement(3)
	assert.True(t, stall.Continue(m(100, 2)))
	assert.False(t, stall.Continue(m(1, 3)))

	all := heuristic.AllOf(iters, stall)
	assert.True(t, all.Continue(m(5, 1)))
	assert.False(t, all.Continue(m(5, 3)))
	assert.False(t, all.Continue(m(10, 0)))

	either := heuristic.AnyOf(iters, stall)
	assert.True(t, either.Continue(m(5, 3)))
	assert.True(t, either.Continue(m(10, 0)))
	assert.False(t, either.Continue(m(10, 3)))

	assert.True(t, heuristic.AllOf().Continue(m(0, 0)))
	assert.False(t, heuristic.AnyOf(nil).Continue(m(0, 0)))

	f := heuristic.StopFunc(func(lm heuristic.LocalSearchMetrics) bool { return lm.Iterations < 2 })
	assert.True(t, f.Continue(m(1, 0)))
	assert.False(t, f.Continue(m(2, 0)))
}

func TestTimeout(t *testing.T) {
	t.Parallel()
	g, err := builder.BuildNetwork(10, []core.NetworkOption{core.WithCycle(10)}, nil, builder.Ring())
	require.NoError(t, err)

	start := time.Now()
	_, m, err := heuristic.LocalSearch(g, core.NewSolution(10), 2, heuristic.Timeout(20*time.Millisecond))
	require.NoError(t, err)
	assert.Positive(t, m.Iterations)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)

	assert.False(t, heuristic.Timeout(0).Continue(heuristic.LocalSearchMetrics{}))
}
