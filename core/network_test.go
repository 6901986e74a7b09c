package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/greenwave/core"
)

type NetworkSuite struct {
	suite.Suite
	n *core.Network
}

func (s *NetworkSuite) SetupTest() {
	var err error
	s.n, err = core.NewNetwork(4, core.WithCycle(10))
	s.Require().NoError(err)
}

func (s *NetworkSuite) TestNewNetworkDefaults() {
	require := require.New(s.T())
	n, err := core.NewNetwork(3)
	require.NoError(err)
	require.Equal(3, n.NumberOfVertices())
	require.Equal(core.DefaultCycle, n.Cycle())
	require.Zero(n.EdgeCount())
}

func (s *NetworkSuite) TestNewNetworkRejectsBadInput() {
	require := require.New(s.T())
	_, err := core.NewNetwork(0)
	require.ErrorIs(err, core.ErrTooFewVertices)

	_, err = core.NewNetwork(2, core.WithCycle(0))
	require.ErrorIs(err, core.ErrBadCycle)
}

func (s *NetworkSuite) TestAddEdgeMirrorsAndSorts() {
	require := require.New(s.T())
	require.NoError(s.n.AddEdge(0, 3, 2))
	require.NoError(s.n.AddEdge(0, 1, 5))
	require.NoError(s.n.AddEdge(2, 0, 1))

	require.True(s.n.HasEdge(3, 0), "undirected edge must be visible from both ends")
	require.Equal(3, s.n.EdgeCount())
	require.Equal(3, s.n.Degree(0))

	want := []core.Neighbor{{Vertex: 1, Weight: 5}, {Vertex: 2, Weight: 1}, {Vertex: 3, Weight: 2}}
	require.Equal(want, s.n.NeighborsOf(0), "neighbors must be sorted by vertex id")

	w, ok := s.n.Weight(1, 0)
	require.True(ok)
	require.Equal(core.Weight(5), w)
}

func (s *NetworkSuite) TestAddEdgeErrors() {
	require := require.New(s.T())
	require.NoError(s.n.AddEdge(0, 1, 1))

	cases := []struct {
		name string
		u, v core.Vertex
		w    core.Weight
		want error
	}{
		{"out of range", 0, 9, 1, core.ErrVertexOutOfRange},
		{"negative vertex", -1, 0, 1, core.ErrVertexOutOfRange},
		{"loop", 2, 2, 1, core.ErrLoopNotAllowed},
		{"negative weight", 2, 3, -1, core.ErrBadWeight},
		{"parallel", 1, 0, 3, core.ErrMultiEdgeNotAllowed},
	}
	for _, tc := range cases {
		err := s.n.AddEdge(tc.u, tc.v, tc.w)
		require.Truef(errors.Is(err, tc.want), "%s: got %v, want %v", tc.name, err, tc.want)
	}
	require.Equal(1, s.n.EdgeCount(), "rejected edges must not be stored")
}

func (s *NetworkSuite) TestEdgesSorted() {
	require := require.New(s.T())
	require.NoError(s.n.AddEdge(3, 2, 4))
	require.NoError(s.n.AddEdge(1, 0, 1))
	require.NoError(s.n.AddEdge(0, 2, 7))

	want := []core.Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 0, To: 2, Weight: 7},
		{From: 2, To: 3, Weight: 4},
	}
	require.Equal(want, s.n.Edges())
}

func (s *NetworkSuite) TestValidate() {
	require := require.New(s.T())
	err := s.n.Validate()
	require.ErrorIs(err, core.ErrIsolatedVertex)

	require.NoError(s.n.AddEdge(0, 1, 1))
	require.NoError(s.n.AddEdge(2, 3, 1))
	require.NoError(s.n.Validate())
}

func (s *NetworkSuite) TestOutOfRangeQueries() {
	require := require.New(s.T())
	require.Nil(s.n.NeighborsOf(42))
	require.Zero(s.n.Degree(-1))
	require.False(s.n.HasEdge(0, 42))
	_, ok := s.n.Weight(7, 0)
	require.False(ok)
}

func TestNetworkSuite(t *testing.T) {
	suite.Run(t, new(NetworkSuite))
}

func (s *NetworkSuite) TestConnectedComponents() {
	n, err := core.NewNetwork(6)
	s.Require().NoError(err)
	s.Require().NoError(n.AddEdge(0, 2, 1))
	s.Require().NoError(n.AddEdge(2, 4, 1))
	s.Require().NoError(n.AddEdge(3, 1, 1))

	comps := n.ConnectedComponents()
	s.Equal([][]core.Vertex{{0, 2, 4}, {1, 3}, {5}}, comps)
}
