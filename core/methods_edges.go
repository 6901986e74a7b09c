// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges.
// Determinism:
//   - Neighbor lists stay sorted by vertex id after every insertion.
//   - Edges() returns edges sorted by (From, To) with From < To.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// Edge is an undirected street as reported by Edges. From < To always holds.
type Edge struct {
	From   Vertex
	To     Vertex
	Weight Weight
}

// AddEdge links u and v with travel time w in both directions.
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [0, N).
//   - ErrLoopNotAllowed if u == v.
//   - ErrBadWeight if w < 0.
//   - ErrMultiEdgeNotAllowed if u and v are already adjacent.
//
// Complexity: O(deg(u) + deg(v)) for the sorted insertions.
func (n *Network) AddEdge(u, v Vertex, w Weight) error {
	if !n.contains(u) || !n.contains(v) {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrVertexOutOfRange)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}
	if w < 0 {
		return fmt.Errorf("AddEdge(%d,%d, w=%d): %w", u, v, w, ErrBadWeight)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if _, ok := findNeighbor(n.adjacency[u], v); ok {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrMultiEdgeNotAllowed)
	}
	n.adjacency[u] = insertNeighbor(n.adjacency[u], Neighbor{Vertex: v, Weight: w})
	n.adjacency[v] = insertNeighbor(n.adjacency[v], Neighbor{Vertex: u, Weight: w})
	n.edgeCount++

	return nil
}

// HasEdge reports whether u and v are adjacent.
func (n *Network) HasEdge(u, v Vertex) bool {
	if !n.contains(u) || !n.contains(v) {
		return false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	_, ok := findNeighbor(n.adjacency[u], v)
	return ok
}

// Weight returns the travel time between u and v and whether the edge exists.
func (n *Network) Weight(u, v Vertex) (Weight, bool) {
	if !n.contains(u) || !n.contains(v) {
		return 0, false
	}
	n.mu.RLock()
	defer n.mu.RUnlock()

	i, ok := findNeighbor(n.adjacency[u], v)
	if !ok {
		return 0, false
	}
	return n.adjacency[u][i].Weight, true
}

// Edges returns every undirected edge once, sorted by (From, To).
//
// Complexity: O(N + E).
func (n *Network) Edges() []Edge {
	n.mu.RLock()
	defer n.mu.RUnlock()

	// Walking u asc over lists sorted by v yields (From, To) order directly.
	out := make([]Edge, 0, n.edgeCount)
	for u := range n.adjacency {
		for _, nb := range n.adjacency[u] {
			if Vertex(u) < nb.Vertex {
				out = append(out, Edge{From: Vertex(u), To: nb.Vertex, Weight: nb.Weight})
			}
		}
	}
	return out
}

// findNeighbor binary-searches a sorted neighbor list.
func findNeighbor(list []Neighbor, v Vertex) (int, bool) {
	i := sort.Search(len(list), func(i int) bool { return list[i].Vertex >= v })
	return i, i < len(list) && list[i].Vertex == v
}

// insertNeighbor inserts nb keeping list sorted by vertex id.
func insertNeighbor(list []Neighbor, nb Neighbor) []Neighbor {
	i, _ := findNeighbor(list, nb.Vertex)
	list = append(list, Neighbor{})
	copy(list[i+1:], list[i:])
	list[i] = nb
	return list
}
