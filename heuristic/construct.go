// Package heuristic - initial-solution constructors.
//
// ConstructRandomSolution draws every timing independently.
// ConstructHeuristicSolution runs randomized pairwise local optimization:
//
//  1. All timings start at 0; the working set holds every vertex, shuffled.
//  2. Pop v1 from the back; pick v2 uniformly among v1's neighbors.
//  3. Draw K pairs (t1, t2) uniformly from [0, C)².
//  4. Try each pair on the in-progress plan and keep the one minimizing
//     VertexPenalty(v1) + VertexPenalty(v2); the first pair seen wins ties.
//  5. Commit the best pair to v1 and v2.
//
// v2 stays in the working set, so it may later be reassigned as a primary
// vertex, overwriting the pair committed here.
package heuristic

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/greenwave/core"
)

const (
	methodConstructRandom    = "ConstructRandomSolution"
	methodConstructHeuristic = "ConstructHeuristicSolution"
)

// ConstructRandomSolution returns a plan whose timings are drawn independently
// and uniformly from [0, g.Cycle()).
//
// Errors: ErrInvalidGraph.
// Complexity: O(N) time and space.
func ConstructRandomSolution(g core.Graph, opts ...Option) (*core.Solution, error) {
	if err := validateGraph(methodConstructRandom, g, false); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)
	rng := rngFromSeed(cfg.seed)

	n, c := g.NumberOfVertices(), g.Cycle()
	s := core.NewSolution(n)
	for v := 0; v < n; v++ {
		s.SetTiming(core.Vertex(v), randomTiming(rng, c))
	}

	return s, nil
}

// ConstructHeuristicSolution returns a plan built by randomized pairwise local
// optimization with tuplesPerIteration (K) candidate pairs per vertex.
//
// Errors:
//   - ErrInvalidParameter if tuplesPerIteration < 1.
//   - ErrInvalidGraph if the graph is empty, C < 1 or a vertex has no neighbor.
//
// Complexity: O(N·K·deg) time, O(N + K) space.
func ConstructHeuristicSolution(g core.Graph, tuplesPerIteration int, opts ...Option) (*core.Solution, error) {
	if tuplesPerIteration < 1 {
		return nil, fmt.Errorf("%s: tuplesPerIteration=%d: %w",
			methodConstructHeuristic, tuplesPerIteration, ErrInvalidParameter)
	}
	if err := validateGraph(methodConstructHeuristic, g, true); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return constructHeuristic(g, tuplesPerIteration, rngFromSeed(cfg.seed), nil), nil
}

// constructHeuristic is the body of ConstructHeuristicSolution. visit, when
// non-nil, observes every (primary, partner) pair in processing order.
func constructHeuristic(g core.Graph, k int, rng *rand.Rand, visit func(v1, v2 core.Vertex)) *core.Solution {
	n, c := g.NumberOfVertices(), g.Cycle()
	s := core.NewSolution(n)

	unvisited := make([]core.Vertex, n)
	for i := range unvisited {
		unvisited[i] = core.Vertex(i)
	}
	shuffleVertices(unvisited, rng)

	// candidates[2i], candidates[2i+1] form pair i.
	candidates := make([]core.TimeUnit, 2*k)
	for len(unvisited) > 0 {
		last := len(unvisited) - 1
		v1 := unvisited[last]
		unvisited = unvisited[:last]

		neighbors := g.NeighborsOf(v1)
		v2 := neighbors[rng.Intn(len(neighbors))].Vertex
		if visit != nil {
			visit(v1, v2)
		}

		for i := range candidates {
			candidates[i] = randomTiming(rng, c)
		}

		bestPenalty := core.TimeUnit(math.MaxInt)
		best1, best2 := candidates[0], candidates[1]
		for i := 0; i < k; i++ {
			t1, t2 := candidates[2*i], candidates[2*i+1]
			s.SetTiming(v1, t1)
			s.SetTiming(v2, t2)

			penalty := g.VertexPenalty(v1, s) + g.VertexPenalty(v2, s)
			if penalty < bestPenalty {
				bestPenalty = penalty
				best1, best2 = t1, t2
			}
		}

		s.SetTiming(v1, best1)
		s.SetTiming(v2, best2)
	}

	return s
}
