package core

import (
	"fmt"
	"slices"
)

// Solution is a dense timing plan: one TimeUnit offset per vertex.
//
// A Solution is owned by exactly one goroutine at a time and is mutated in
// place with SetTiming. Copies made with Clone never share storage.
type Solution struct {
	timings []TimeUnit
}

// NewSolution returns a plan for n vertices with every timing set to 0.
// Negative n yields an empty plan.
func NewSolution(n int) *Solution {
	if n < 0 {
		n = 0
	}
	return &Solution{timings: make([]TimeUnit, n)}
}

// SolutionFromTimings copies timings into a new Solution.
func SolutionFromTimings(timings []TimeUnit) *Solution {
	return &Solution{timings: slices.Clone(timings)}
}

// Len returns the number of vertices covered by the plan.
func (s *Solution) Len() int {
	return len(s.timings)
}

// Timing returns the offset of v. v must be in [0, Len()).
func (s *Solution) Timing(v Vertex) TimeUnit {
	return s.timings[v]
}

// SetTiming assigns offset t to v. v must be in [0, Len()).
func (s *Solution) SetTiming(v Vertex, t TimeUnit) {
	s.timings[v] = t
}

// Timings returns a copy of all offsets indexed by vertex.
func (s *Solution) Timings() []TimeUnit {
	return slices.Clone(s.timings)
}

// Clone returns an independent deep copy.
func (s *Solution) Clone() *Solution {
	return &Solution{timings: slices.Clone(s.timings)}
}

// CopyFrom overwrites s with the timings of src. Both must have equal Len.
func (s *Solution) CopyFrom(src *Solution) {
	copy(s.timings, src.timings)
}

// Equal reports whether both plans assign the same offset to every vertex.
func (s *Solution) Equal(other *Solution) bool {
	if s == nil || other == nil {
		return s == other
	}
	return slices.Equal(s.timings, other.timings)
}

// Validate checks that s covers every vertex of g and that every timing lies
// in [0, g.Cycle()).
//
// Errors: ErrSolutionMismatch, ErrTimingOutOfRange (first offending vertex).
func (s *Solution) Validate(g Graph) error {
	if s.Len() != g.NumberOfVertices() {
		return fmt.Errorf("Solution.Validate: len=%d, vertices=%d: %w",
			s.Len(), g.NumberOfVertices(), ErrSolutionMismatch)
	}
	c := g.Cycle()
	for v, t := range s.timings {
		if t < 0 || t >= c {
			return fmt.Errorf("Solution.Validate: vertex %d timing %d not in [0,%d): %w",
				v, t, c, ErrTimingOutOfRange)
		}
	}
	return nil
}
