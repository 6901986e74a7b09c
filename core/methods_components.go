// File: methods_components.go
// Role: Connectivity of the street network.
// Determinism:
//   - Components are ordered by their smallest vertex; vertices inside a
//     component are in BFS order from that vertex.

package core

// ConnectedComponents partitions the lights into groups linked by streets.
// Isolated lights form singleton components.
//
// Time:   O(V + E).
// Memory: O(V) for visited flags and output.
func (n *Network) ConnectedComponents() [][]Vertex {
	n.mu.RLock()
	defer n.mu.RUnlock()

	seen := make([]bool, n.size)
	var comps [][]Vertex
	for start := 0; start < n.size; start++ {
		if seen[start] {
			continue
		}
		seen[start] = true
		queue := []Vertex{Vertex(start)}
		for qi := 0; qi < len(queue); qi++ {
			for _, nb := range n.adjacency[queue[qi]] {
				if !seen[nb.Vertex] {
					seen[nb.Vertex] = true
					queue = append(queue, nb.Vertex)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
