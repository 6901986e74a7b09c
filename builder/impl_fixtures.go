// SPDX-License-Identifier: MIT
// Package: greenwave/builder
//
// impl_fixtures.go - deterministic topologies: Ring, Path, Complete.
//
// Contract (all three):
//   • Span every vertex 0..N-1 of the target network.
//   • Emit edges in ascending order of the lower endpoint.
//   • Weight policy: cfg.weight() per edge, in emission order.
//
// Complexity: Ring/Path O(N), Complete O(N²).

package builder

import (
	"fmt"

	"github.com/katalvlaran/greenwave/core"
)

const (
	methodRing     = "Ring"
	methodPath     = "Path"
	methodComplete = "Complete"

	minRingNodes     = 3
	minPathNodes     = 2
	minCompleteNodes = 2
)

// Ring links i-(i+1) mod N for i = 0..N-1. Requires N ≥ 3.
func Ring() Constructor {
	return func(n *core.Network, cfg builderConfig) error {
		size := n.NumberOfVertices()
		if size < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, size, minRingNodes, ErrTooFewVertices)
		}
		for i := 0; i < size; i++ {
			u, v := core.Vertex(i), core.Vertex((i+1)%size)
			w := cfg.weight()
			if err := n.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", methodRing, u, v, w, err)
			}
		}
		return nil
	}
}

// Path links i-(i+1) for i = 0..N-2. Requires N ≥ 2.
func Path() Constructor {
	return func(n *core.Network, cfg builderConfig) error {
		size := n.NumberOfVertices()
		if size < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, size, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < size; i++ {
			u, v := core.Vertex(i), core.Vertex(i+1)
			w := cfg.weight()
			if err := n.AddEdge(u, v, w); err != nil {
				return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", methodPath, u, v, w, err)
			}
		}
		return nil
	}
}

// Complete links every unordered pair {i, j}, i < j. Requires N ≥ 2.
func Complete() Constructor {
	return func(n *core.Network, cfg builderConfig) error {
		size := n.NumberOfVertices()
		if size < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, size, minCompleteNodes, ErrTooFewVertices)
		}
		for i := 0; i < size; i++ {
			for j := i + 1; j < size; j++ {
				u, v := core.Vertex(i), core.Vertex(j)
				w := cfg.weight()
				if err := n.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", methodComplete, u, v, w, err)
				}
			}
		}
		return nil
	}
}
