// SPDX-License-Identifier: MIT
// Package: greenwave/builder
//
// impl_random_degree.go - implementation of RandomDegree(minDeg, maxDeg).
//
// Canonical model:
//   - Every vertex v draws a target degree d(v) uniformly in [minDeg, maxDeg].
//   - Vertices are visited in a random permutation; while deg(v) < d(v), v is
//     linked to a partner drawn uniformly among vertices that are not v, not
//     yet adjacent to v, and below maxDeg. When no partner is left, v keeps
//     the degree it reached.
//   - Repair pass: a vertex that ended with no neighbor (all partners saturated)
//     is linked to a uniformly drawn vertex regardless of maxDeg, so the
//     network always satisfies core.Network.Validate.
//
// Contract:
//   - N ≥ 2 (else ErrTooFewVertices).
//   - 1 ≤ minDeg ≤ maxDeg ≤ N-1 (else ErrDegreeRange).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(N · maxDeg · N) for candidate scans; O(N) extra space.
//
// Determinism:
//   - Stable candidate enumeration order (vertex id asc) and a single RNG
//     stream ⇒ identical networks for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/greenwave/core"
)

const (
	methodRandomDegree = "RandomDegree"
	minRandomNodes     = 2
	minDegree          = 1
)

// RandomDegree returns a Constructor sampling a sparse street network in which
// every vertex aims for between minDeg and maxDeg neighbors. A vertex may end
// below minDeg when partners run out, and a repair partner may exceed maxDeg.
func RandomDegree(minDeg, maxDeg int) Constructor {
	return func(n *core.Network, cfg builderConfig) error {
		size := n.NumberOfVertices()
		if size < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDegree, size, minRandomNodes, ErrTooFewVertices)
		}
		if minDeg < minDegree || maxDeg < minDeg || maxDeg > size-1 {
			return fmt.Errorf("%s: degrees [%d,%d] with n=%d: %w", methodRandomDegree, minDeg, maxDeg, size, ErrDegreeRange)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomDegree, ErrNeedRandSource)
		}
		rng := cfg.rng

		targets := make([]int, size)
		for v := range targets {
			targets[v] = minDeg + rng.Intn(maxDeg-minDeg+1)
		}

		candidates := make([]core.Vertex, 0, size)
		for _, i := range rng.Perm(size) {
			v := core.Vertex(i)
			for n.Degree(v) < targets[v] {
				candidates = candidates[:0]
				for j := 0; j < size; j++ {
					u := core.Vertex(j)
					if u == v || n.Degree(u) >= maxDeg || n.HasEdge(u, v) {
						continue
					}
					candidates = append(candidates, u)
				}
				if len(candidates) == 0 {
					break
				}
				u := candidates[rng.Intn(len(candidates))]
				if err := link(n, cfg, v, u); err != nil {
					return err
				}
			}
		}

		// Repair pass: no isolated lights.
		for i := 0; i < size; i++ {
			v := core.Vertex(i)
			if n.Degree(v) > 0 {
				continue
			}
			j := rng.Intn(size - 1)
			if j >= i {
				j++
			}
			if err := link(n, cfg, v, core.Vertex(j)); err != nil {
				return err
			}
		}

		return nil
	}
}

// link adds one street with the configured travel time.
func link(n *core.Network, cfg builderConfig, u, v core.Vertex) error {
	w := cfg.weight()
	if err := n.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d-%d, w=%d): %w", methodRandomDegree, u, v, w, err)
	}
	return nil
}
