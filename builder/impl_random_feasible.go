// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// impl_random_feasible.go — implementation of RandomFeasible(p, maxShift).
//
// Contract:
//   - n ≥ 1, p ∈ [0,1], maxShift ≥ 0, cfg.rng != nil.
//   - A hidden potential φ[v] ∈ [-maxShift, maxShift] is drawn for every
//     vertex first (v asc), then pairs are scanned row-major as in RandomSparse.
//   - Each emitted edge has weight base + φ[v] − φ[u], where base comes from
//     cfg.weightFn and MUST be ≥ 0 (ErrInvalidWeight otherwise).
//   - Every cycle therefore weighs Σ base ≥ 0: edges may be negative, but no
//     negative cycle exists.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrInvalidWeight.
// Complexity: O(V²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
)

const (
	methodRandomFeasible      = "RandomFeasible"
	minRandomFeasibleVertices = 1
)

// RandomFeasible returns a Constructor producing a random directed graph
// with negative edges but no negative-weight cycle.
func RandomFeasible(p float64, maxShift int64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := requireVertices(g, methodRandomFeasible, minRandomFeasibleVertices); err != nil {
			return err
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f: %w", methodRandomFeasible, p, ErrInvalidProbability)
		}
		if maxShift < 0 {
			return fmt.Errorf("%s: maxShift=%d: %w", methodRandomFeasible, maxShift, ErrInvalidWeight)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomFeasible, ErrNeedRandSource)
		}

		n := g.VertexCount()
		phi := make([]int64, n)
		shift := UniformWeightFn(-maxShift, maxShift)
		for v := range phi {
			phi[v] = shift(cfg.rng)
		}

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u == v || cfg.rng.Float64() >= p {
					continue
				}
				base := cfg.weightFn(cfg.rng)
				if base < 0 {
					return fmt.Errorf("%s: base weight %d on %d→%d: %w", methodRandomFeasible, base, u, v, ErrInvalidWeight)
				}
				w := base + phi[v] - phi[u]
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodRandomFeasible, u, v, w, err)
				}
			}
		}

		return nil
	}
}
