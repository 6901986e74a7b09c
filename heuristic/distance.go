package heuristic

import (
	"github.com/katalvlaran/greenwave/core"
)

const methodDistance = "Distance"

// Distance returns Σ_v min(|a(v)−b(v)|, C−|a(v)−b(v)|), the circular timing
// distance between two plans on g.
//
// The result is symmetric, 0 iff a and b are equal, and bounded by
// N·⌊C/2⌋. Neither plan is modified.
//
// Errors: ErrInvalidGraph, ErrInvalidParameter (nil plan),
// core.ErrSolutionMismatch (plan length ≠ N).
// Complexity: O(N).
func Distance(g core.Graph, a, b *core.Solution) (core.TimeUnit, error) {
	if err := validateGraph(methodDistance, g, false); err != nil {
		return 0, err
	}
	if err := validateSolution(methodDistance, "first", g, a); err != nil {
		return 0, err
	}
	if err := validateSolution(methodDistance, "second", g, b); err != nil {
		return 0, err
	}

	c := g.Cycle()
	var total core.TimeUnit
	for v := 0; v < g.NumberOfVertices(); v++ {
		total += circularGap(a.Timing(core.Vertex(v)), b.Timing(core.Vertex(v)), c)
	}

	return total, nil
}

// circularGap is the shorter way around the ring [0, c) between x and y.
// Out-of-range inputs are reduced modulo c first.
func circularGap(x, y, c core.TimeUnit) core.TimeUnit {
	d := (x - y) % c
	if d < 0 {
		d = -d
	}
	if c-d < d {
		return c - d
	}
	return d
}
