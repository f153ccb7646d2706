// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Canonical dense APSP (Floyd–Warshall) with deterministic loop order.
//   - In-place, O(n³) time, O(1) extra space.
//
// Contract:
//   - Unreachable means “no path”; the diagonal starts at 0 (or a negative
//     self-loop weight).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/internal/checked"
)

// FloydWarshall computes all-pairs shortest-path distances of g.
//
// Errors: ErrNilGraph, ErrNegativeCycle, ErrOverflow.
// Complexity: Time O(V³), space O(V²).
func FloydWarshall(g *core.Graph) (*Dense, error) {
	d, err := NewDistances(g)
	if err != nil {
		return nil, err
	}
	if err = d.closeInPlace(); err != nil {
		return nil, err
	}

	return d, nil
}

// closeInPlace runs the k → i → j closure. After each k it checks the
// diagonal so a negative cycle stops the run before values can blow up.
func (d *Dense) closeInPlace() error {
	n := d.n
	data := d.data

	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int64
		ok           bool
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik == Unreachable {
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj == Unreachable {
					continue
				}
				if cand, ok = checked.Add(ik, kj); !ok {
					return fmt.Errorf("FloydWarshall: %d→%d via %d: %w", i, j, k, ErrOverflow)
				}
				if cand < data[baseI+j] { // strict improvement only
					data[baseI+j] = cand
				}
			}
		}
		for i = 0; i < n; i++ {
			if data[i*n+i] < 0 {
				return fmt.Errorf("FloydWarshall: vertex %d: %w", i, ErrNegativeCycle)
			}
		}
	}

	return nil
}
