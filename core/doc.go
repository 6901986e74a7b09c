// Package core defines the street network and timing-plan primitives shared by
// every greenwave package: the read-only Graph contract, its in-memory
// implementation Network, and the mutable per-vertex timing assignment Solution.
//
// Model:
//
//	A Network G = (V,E) has N vertices 0..N-1 (traffic lights) and undirected
//	weighted edges (streets). The weight w(u,v) is the travel time between the
//	two lights, in the same discrete unit as the signal cycle.
//	Every light repeats a cycle of length C; a timing t(v) ∈ [0, C) is the
//	offset at which v turns green.
//
// Penalty oracle:
//
//	A platoon leaving u when u turns green reaches v after w(u,v) units. Its
//	lag is how far that arrival is from v's green start, measured around the
//	cycle in whichever direction is shorter (early or late):
//
//	    d        = (t(u) + w(u,v) − t(v)) mod C          (non-negative modulo)
//	    lag(u→v) = min(d, C − d)
//
//	VertexPenalty(v, s) = Σ_{u ∈ N(v)} lag(u→v) + lag(v→u)
//	TotalPenalty(s)     = Σ_{{u,v} ∈ E} lag(u→v) + lag(v→u)
//
//	Every term that depends on t(v) belongs to VertexPenalty(v), therefore
//	changing only t(v) changes TotalPenalty by exactly the change of
//	VertexPenalty(v). Local search relies on this.
//
// Determinism:
//
//	NeighborsOf(v) returns neighbors sorted by vertex id, so a seeded random
//	pick over the neighbor set is reproducible across runs and platforms.
//
// Concurrency:
//
//	Network guards its adjacency with a sync.RWMutex; concurrent readers are
//	safe. Solution is NOT synchronized: one goroutine owns a Solution at a time.
//
// Errors:
//
//	ErrTooFewVertices, ErrBadCycle, ErrVertexOutOfRange, ErrLoopNotAllowed,
//	ErrMultiEdgeNotAllowed, ErrBadWeight, ErrIsolatedVertex,
//	ErrSolutionMismatch, ErrTimingOutOfRange.
package core
