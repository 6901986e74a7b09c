// Package heuristic builds and refines traffic-light timing plans on a
// core.Graph so that the network penalty (total platoon lag) is small.
//
// It provides:
//
//	ConstructRandomSolution    - every timing uniform in [0, C).            O(N)
//	ConstructHeuristicSolution - randomized pairwise local optimization:
//	                             each vertex, in shuffled order, is paired
//	                             with a random neighbor and the best of K
//	                             random timing pairs is committed.          O(N·K·deg)
//	Distance                   - circular timing distance between plans.    O(N)
//	LocalSearch                - single-vertex perturbation with roulette
//	                             acceptance and a shadow best-so-far plan,
//	                             driven by StopCriteria.                    O(iter·M·deg)
//
// Randomness:
//
//	Every entry point creates its own *rand.Rand for the duration of the call;
//	no generator is shared between calls or goroutines. WithSeed(s) makes a
//	call reproducible; without it (or with s == 0) the generator is seeded from
//	the operating system entropy source.
//
// Errors:
//
//	ErrInvalidGraph     - nil graph, no vertices, cycle < 1, or (heuristic
//	                      constructor) a vertex without neighbors.
//	ErrInvalidParameter - K < 1, M < 1, nil initial solution or stop criteria.
//	core.ErrSolutionMismatch - a solution does not cover the graph.
//
// The package never logs and never panics on bad input; option constructors
// panic on meaningless values (nil hook), as in the builder package.
package heuristic
