package main

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/johnson"
	"github.com/katalvlaran/apsp/matrix"
)

// ErrMismatch indicates Johnson and Floyd–Warshall disagree on some pair.
var ErrMismatch = errors.New("verify: distance mismatch")

// verify recomputes g densely and compares every entry with res.
func verify(g *core.Graph, res *johnson.Result) error {
	fw, err := matrix.FloydWarshall(g)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	want := fw.Rows()
	for i, row := range res.Matrix() {
		for j, got := range row {
			if got != want[i][j] {
				return fmt.Errorf("%w: (%d,%d) johnson=%s floyd-warshall=%s", ErrMismatch, i, j,
					johnson.FormatDistance(got), johnson.FormatDistance(want[i][j]))
			}
		}
	}

	return nil
}
