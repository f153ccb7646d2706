// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_path.go — implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (ErrTooFewVertices otherwise).
//   - Emits edges i→i+1 for i=0..n-2 in ascending order.
//   - Weights drawn from cfg.weightFn in emission order.
//
// Complexity: O(V) time.

package builder

import "github.com/katalvlaran/apsp/core"

const (
	methodPath      = "Path"
	minPathVertices = 2
)

// Path returns a Constructor that chains every vertex: 0→1→…→n-1.
func Path() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodPath, minPathVertices); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
