// SPDX-License-Identifier: MIT
// Package: matrix
//
// types.go — Dense distance matrix and sentinel errors.

package matrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/internal/checked"
)

// Unreachable marks a pair with no known path.
const Unreachable = checked.Unreachable

// Sentinel errors.
var (
	// ErrNilGraph indicates a nil *core.Graph was passed.
	ErrNilGraph = errors.New("matrix: graph is nil")

	// ErrOutOfRange indicates an index outside [0, n).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNegativeCycle indicates a negative diagonal after closure.
	ErrNegativeCycle = errors.New("matrix: graph contains a negative-weight cycle")

	// ErrOverflow indicates a path length left the int64 range.
	ErrOverflow = checked.ErrOverflow
)

// Dense is a row-major n×n int64 matrix.
type Dense struct {
	n    int
	data []int64
}

// NewDistances returns the initial distance matrix of g:
//
//	diag = min(0, lightest self-loop); u→v = lightest u→v edge; else Unreachable.
//
// Complexity: O(V² + E).
func NewDistances(g *core.Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	d := &Dense{n: n, data: make([]int64, n*n)}
	for i := range d.data {
		d.data[i] = Unreachable
	}
	for i := 0; i < n; i++ {
		d.data[i*n+i] = 0
	}
	for _, e := range g.Edges() {
		if idx := e.From*n + e.To; e.Weight < d.data[idx] {
			d.data[idx] = e.Weight
		}
	}

	return d, nil
}

// N returns the matrix order.
func (d *Dense) N() int { return d.n }

// At returns entry (i, j).
func (d *Dense) At(i, j int) (int64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("%w: (%d,%d) with n=%d", ErrOutOfRange, i, j, d.n)
	}

	return d.data[i*d.n+j], nil
}

// Rows returns a copy of the matrix as n rows.
func (d *Dense) Rows() [][]int64 {
	out := make([][]int64, d.n)
	for i := range out {
		out[i] = make([]int64, d.n)
		copy(out[i], d.data[i*d.n:(i+1)*d.n])
	}

	return out
}
