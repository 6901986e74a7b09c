// File: methods_penalty.go
// Role: Penalty oracle of Network: Lag, VertexPenalty, TotalPenalty.
// Contract:
//   - s must cover every vertex (s.Len() == NumberOfVertices()); timings are
//     reduced modulo C, so out-of-range offsets still produce a value in [0, C).
//   - Results are always ≥ 0; a single lag is at most floor(C/2).
// Concurrency:
//   - Read lock on adjacency for the duration of one evaluation.

package core

// Lag returns how far a platoon leaving from at the start of its green and
// travelling w units arrives from the green start of to, measured the short way
// around the cycle: d = (from + w − to) mod C, lag = min(d, C − d).
//
// Complexity: O(1).
func Lag(from, to, w, cycle TimeUnit) TimeUnit {
	d := (from + w - to) % cycle
	if d < 0 {
		d += cycle
	}
	if cycle-d < d {
		return cycle - d
	}
	return d
}

// VertexPenalty sums lag(u→v) + lag(v→u) over every neighbor u of v.
//
// Complexity: O(deg(v)).
func (n *Network) VertexPenalty(v Vertex, s *Solution) TimeUnit {
	if !n.contains(v) {
		return 0
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	tv := s.Timing(v)
	var total TimeUnit
	for _, nb := range n.adjacency[v] {
		tu := s.Timing(nb.Vertex)
		w := TimeUnit(nb.Weight)
		total += Lag(tu, tv, w, n.cycle) + Lag(tv, tu, w, n.cycle)
	}

	return total
}

// TotalPenalty sums lag(u→v) + lag(v→u) over every undirected edge {u,v}.
// It equals half of Σ_v VertexPenalty(v, s).
//
// Complexity: O(N + E).
func (n *Network) TotalPenalty(s *Solution) TimeUnit {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var total TimeUnit
	for u := range n.adjacency {
		tu := s.Timing(Vertex(u))
		for _, nb := range n.adjacency[u] {
			if Vertex(u) > nb.Vertex {
				continue
			}
			tv := s.Timing(nb.Vertex)
			w := TimeUnit(nb.Weight)
			total += Lag(tu, tv, w, n.cycle) + Lag(tv, tu, w, n.cycle)
		}
	}

	return total
}
