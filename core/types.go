// This file declares Vertex, TimeUnit, Weight, Neighbor, the Graph contract,
// the Network type with its options, and the package sentinel errors.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for network and solution operations.
var (
	// ErrTooFewVertices indicates a network was requested with fewer than one vertex.
	ErrTooFewVertices = errors.New("core: network needs at least one vertex")

	// ErrBadCycle indicates a cycle length smaller than one time unit.
	ErrBadCycle = errors.New("core: cycle length must be at least 1")

	// ErrVertexOutOfRange indicates a vertex outside [0, N).
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same two vertices.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")

	// ErrBadWeight indicates a negative travel time.
	ErrBadWeight = errors.New("core: edge weight must be non-negative")

	// ErrIsolatedVertex indicates a vertex without neighbors.
	ErrIsolatedVertex = errors.New("core: vertex has no neighbors")

	// ErrSolutionMismatch indicates a solution whose size differs from the network.
	ErrSolutionMismatch = errors.New("core: solution size does not match network")

	// ErrTimingOutOfRange indicates a timing outside [0, C).
	ErrTimingOutOfRange = errors.New("core: timing out of cycle range")
)

// Vertex identifies a traffic light. Vertices of a network are 0..N-1.
type Vertex int

// TimeUnit is a discrete instant on the signal cycle ring [0, C), and also the
// unit penalties are measured in.
type TimeUnit int

// Weight is the travel time of a street between two lights, in TimeUnit.
type Weight int

// Neighbor is one entry of a vertex's weighted neighbor set.
type Neighbor struct {
	// Vertex is the adjacent light.
	Vertex Vertex

	// Weight is the travel time between the two lights.
	Weight Weight
}

// Graph is the read-only view the optimization algorithms consume.
//
// Implementations must keep NeighborsOf ordering stable for a given graph
// (sorted by vertex id for Network) so seeded runs are reproducible.
type Graph interface {
	// NumberOfVertices returns N; vertices are 0..N-1.
	NumberOfVertices() int

	// Cycle returns the cycle length C; timings live in [0, C).
	Cycle() TimeUnit

	// NeighborsOf returns the weighted neighbor set of v.
	// The returned slice must not be modified by the caller.
	NeighborsOf(v Vertex) []Neighbor

	// VertexPenalty returns the lag cost of every edge incident to v
	// under the timing plan s. It is always ≥ 0.
	VertexPenalty(v Vertex, s *Solution) TimeUnit

	// TotalPenalty returns the lag cost of the whole network under s.
	TotalPenalty(s *Solution) TimeUnit
}

// NetworkOption configures a Network before creation.
type NetworkOption func(n *Network)

// WithCycle sets the signal cycle length C.
// Values below one are rejected by NewNetwork with ErrBadCycle.
func WithCycle(c TimeUnit) NetworkOption {
	return func(n *Network) { n.cycle = c }
}

// DefaultCycle is the cycle length used when WithCycle is not supplied.
const DefaultCycle TimeUnit = 20

// Network is the in-memory undirected, weighted street network.
//
// mu guards adjacency and edgeCount; cycle and size are immutable after NewNetwork.
type Network struct {
	mu sync.RWMutex

	size  int
	cycle TimeUnit

	// adjacency[v] is sorted by Neighbor.Vertex ascending.
	adjacency [][]Neighbor
	edgeCount int
}

// Compile-time check that Network satisfies Graph.
var _ Graph = (*Network)(nil)
