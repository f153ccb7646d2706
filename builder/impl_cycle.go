// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_cycle.go — implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (ErrTooFewVertices otherwise).
//   - Emits i→(i+1)%n for i=0..n-1; the closing edge n-1→0 is emitted last.
//   - Weights drawn from cfg.weightFn in emission order.
//
// Complexity: O(V) time.
// Determinism: stable order; with a negative constant weight the result is a
// negative cycle fixture.

package builder

import "github.com/katalvlaran/apsp/core"

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor that closes a directed ring over all vertices.
func Cycle() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodCycle, minCycleVertices); err != nil {
			return err
		}
		n := g.VertexCount()
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
