// Package heuristic - randomized local search.
//
// Two plans evolve side by side:
//
//	solution - the accepted trajectory; may get worse.
//	best     - the shadow best-so-far; VertexPenalty at the touched vertex never rises.
//
// One iteration on vertex v with M perturbations:
//
//  1. Slot 0 = (solution's timing of v, best's penalty at v).
//  2. Slots 1..M = random timings, each scored on solution; each is also
//     tried on best and kept there only on a strict improvement.
//  3. Sort slots by ascending penalty and roulette-select one, weighting each
//     slot by its raw penalty; apply the selected timing to solution.
//
// Weighting by raw penalty favors worse candidates.
package heuristic

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/greenwave/core"
)

const methodLocalSearch = "LocalSearch"

// LocalSearch refines initial with `perturbations` (M) random timings per
// iteration until stop says otherwise, and returns the best-so-far plan and
// the final counters. initial is not modified.
//
// Errors:
//   - ErrInvalidGraph for an empty graph or C < 1.
//   - ErrInvalidParameter for M < 1, a nil initial plan or nil stop.
//   - core.ErrSolutionMismatch if initial does not cover the graph.
//
// Complexity: O(iterations · M · deg) time, O(N + M) space.
func LocalSearch(
	g core.Graph,
	initial *core.Solution,
	perturbations int,
	stop StopCriteria,
	opts ...Option,
) (*core.Solution, LocalSearchMetrics, error) {
	var metrics LocalSearchMetrics

	if perturbations < 1 {
		return nil, metrics, fmt.Errorf("%s: perturbations=%d: %w",
			methodLocalSearch, perturbations, ErrInvalidParameter)
	}
	if stop == nil {
		return nil, metrics, fmt.Errorf("%s: nil stop criteria: %w", methodLocalSearch, ErrInvalidParameter)
	}
	if err := validateGraph(methodLocalSearch, g, false); err != nil {
		return nil, metrics, err
	}
	if err := validateSolution(methodLocalSearch, "initial", g, initial); err != nil {
		return nil, metrics, err
	}

	cfg := newConfig(opts...)
	rng := rngFromSeed(cfg.seed)

	n, c := g.NumberOfVertices(), g.Cycle()
	solution := initial.Clone()
	best := initial.Clone()
	candidates := make([]perturbation, perturbations+1)

	for stop.Continue(metrics) {
		v := core.Vertex(rng.Intn(n))
		bestPenaltyBefore := g.VertexPenalty(v, best)
		bestPenalty, improved := perturb(g, v, solution, best, candidates, rng, c)

		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].penalty < candidates[j].penalty
		})
		accepted := rouletteSelect(candidates, rng)
		solution.SetTiming(v, accepted.timing)

		metrics.Iterations++
		if improved {
			metrics.IterationsWithoutImprovement = 0
		} else {
			metrics.IterationsWithoutImprovement++
		}

		if cfg.hook != nil {
			cfg.hook(IterationReport{
				Vertex:            v,
				BestPenaltyBefore: bestPenaltyBefore,
				BestPenaltyAfter:  bestPenalty,
				AcceptedTiming:    accepted.timing,
				Improved:          improved,
				Metrics:           metrics,
			})
		}
	}

	return best, metrics, nil
}

// perturb fills candidates for vertex v: slot 0 holds solution's current
// timing scored with best's penalty, the other slots hold fresh random timings
// scored on solution. Each random timing is also tried on best, which keeps
// the first strictly better one. solution is left at the last candidate's
// timing. It returns best's penalty at v and whether any candidate beat
// solution's penalty at v.
func perturb(
	g core.Graph,
	v core.Vertex,
	solution, best *core.Solution,
	candidates []perturbation,
	rng *rand.Rand,
	c core.TimeUnit,
) (core.TimeUnit, bool) {
	currentPenalty := g.VertexPenalty(v, solution)
	bestPenalty := g.VertexPenalty(v, best)
	bestTiming := best.Timing(v)

	candidates[0] = perturbation{timing: solution.Timing(v), penalty: bestPenalty}
	improved := false
	for i := 1; i < len(candidates); i++ {
		t := randomTiming(rng, c)

		solution.SetTiming(v, t)
		p := g.VertexPenalty(v, solution)
		candidates[i] = perturbation{timing: t, penalty: p}
		if p < currentPenalty {
			improved = true
		}

		best.SetTiming(v, t)
		if bp := g.VertexPenalty(v, best); bp < bestPenalty {
			bestPenalty = bp
			bestTiming = t
		}
	}
	best.SetTiming(v, bestTiming)

	return bestPenalty, improved
}

// rouletteSelect draws a target uniformly from [0, Σ penalty] and returns the
// first candidate whose cumulative penalty reaches it. With Σ = 0 the target
// is 0 and the first candidate is returned. candidates must be non-empty.
func rouletteSelect(candidates []perturbation, rng *rand.Rand) perturbation {
	var sum core.TimeUnit
	for _, p := range candidates {
		sum += p.penalty
	}

	target := core.TimeUnit(rng.Int63n(int64(sum) + 1))
	var acc core.TimeUnit
	for _, p := range candidates {
		acc += p.penalty
		if target <= acc {
			return p
		}
	}

	return candidates[len(candidates)-1]
}
