package heuristic

import (
	"fmt"

	"github.com/katalvlaran/greenwave/core"
)

// validateGraph checks N ≥ 1 and C ≥ 1, and with needNeighbors also that
// every vertex has at least one neighbor. Errors wrap ErrInvalidGraph.
//
// Complexity: O(1), or O(N) with needNeighbors.
func validateGraph(method string, g core.Graph, needNeighbors bool) error {
	if g == nil {
		return fmt.Errorf("%s: nil graph: %w", method, ErrInvalidGraph)
	}
	if n := g.NumberOfVertices(); n < 1 {
		return fmt.Errorf("%s: %d vertices: %w", method, n, ErrInvalidGraph)
	}
	if c := g.Cycle(); c < 1 {
		return fmt.Errorf("%s: cycle=%d: %w", method, c, ErrInvalidGraph)
	}
	if !needNeighbors {
		return nil
	}
	for v := 0; v < g.NumberOfVertices(); v++ {
		if len(g.NeighborsOf(core.Vertex(v))) == 0 {
			return fmt.Errorf("%s: vertex %d has no neighbors: %w", method, v, ErrInvalidGraph)
		}
	}
	return nil
}

// validateSolution checks that s is present and covers every vertex of g.
func validateSolution(method, name string, g core.Graph, s *core.Solution) error {
	if s == nil {
		return fmt.Errorf("%s: nil %s solution: %w", method, name, ErrInvalidParameter)
	}
	if s.Len() != g.NumberOfVertices() {
		return fmt.Errorf("%s: %s solution has %d timings for %d vertices: %w",
			method, name, s.Len(), g.NumberOfVertices(), core.ErrSolutionMismatch)
	}
	return nil
}
