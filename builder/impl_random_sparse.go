// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_random_sparse.go — implementation of RandomSparse(p) constructor.
//
// Contract:
//   - n ≥ 1, p ∈ [0,1], cfg.rng != nil.
//   - For each ordered pair (u,v), u≠v, include u→v with probability p.
//   - Pair scan order is row-major; the Bernoulli trial precedes the weight
//     draw so both consume the same RNG stream deterministically.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(V²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor producing an Erdős–Rényi style
// directed graph without self-loops.
func RandomSparse(p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodRandomSparse, minRandomSparseVertices); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		n := g.VertexCount()
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v || cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, methodRandomSparse, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
