// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_complete.go — implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices otherwise).
//   - Emits every ordered pair u→v with u≠v, row-major (u asc, then v asc).
//   - No self-loops.
//
// Complexity: O(V²) time.

package builder

import "github.com/katalvlaran/apsp/core"

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that connects every ordered pair of
// distinct vertices.
func Complete() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodComplete, minCompleteVertices); err != nil {
			return err
		}
		n := g.VertexCount()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v {
					continue
				}
				if err := addEdge(g, cfg, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
