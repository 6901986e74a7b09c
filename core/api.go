// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and read-only getters of Network.
// Policy:
//   - No algorithms here; penalty evaluation lives in methods_penalty.go.
//   - Getters take the read lock only where mutable state is observed.

package core

import "fmt"

// NewNetwork creates a network of n isolated vertices 0..n-1.
// By default the cycle length is DefaultCycle.
//
// Errors:
//   - ErrTooFewVertices if n < 1.
//   - ErrBadCycle if the resolved cycle length is < 1.
//
// Complexity: O(n) time and space.
func NewNetwork(n int, opts ...NetworkOption) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewNetwork: n=%d: %w", n, ErrTooFewVertices)
	}

	net := &Network{
		size:      n,
		cycle:     DefaultCycle,
		adjacency: make([][]Neighbor, n),
	}
	for _, opt := range opts {
		opt(net)
	}
	if net.cycle < 1 {
		return nil, fmt.Errorf("NewNetwork: cycle=%d: %w", net.cycle, ErrBadCycle)
	}

	return net, nil
}

// NumberOfVertices returns N. Immutable, no lock required.
func (n *Network) NumberOfVertices() int {
	return n.size
}

// Cycle returns the cycle length C. Immutable, no lock required.
func (n *Network) Cycle() TimeUnit {
	return n.cycle
}

// EdgeCount returns the number of undirected edges.
func (n *Network) EdgeCount() int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.edgeCount
}

// Degree returns the number of neighbors of v, or 0 when v is out of range.
func (n *Network) Degree(v Vertex) int {
	if !n.contains(v) {
		return 0
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.adjacency[v])
}

// NeighborsOf returns the neighbor set of v sorted by vertex id.
// The slice aliases internal storage; callers must treat it as read-only.
// Out-of-range vertices have no neighbors.
//
// Complexity: O(1).
func (n *Network) NeighborsOf(v Vertex) []Neighbor {
	if !n.contains(v) {
		return nil
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.adjacency[v]
}

// Validate reports whether the network satisfies the preconditions of the
// optimization algorithms: C ≥ 1 and every vertex has at least one neighbor.
// The first isolated vertex found (lowest id) is reported.
//
// Complexity: O(N).
func (n *Network) Validate() error {
	if n.cycle < 1 {
		return fmt.Errorf("Validate: cycle=%d: %w", n.cycle, ErrBadCycle)
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	for v := range n.adjacency {
		if len(n.adjacency[v]) == 0 {
			return fmt.Errorf("Validate: vertex %d: %w", v, ErrIsolatedVertex)
		}
	}

	return nil
}

// contains reports whether v ∈ [0, N).
func (n *Network) contains(v Vertex) bool {
	return v >= 0 && int(v) < n.size
}
