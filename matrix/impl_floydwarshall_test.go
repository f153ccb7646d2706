package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/matrix"
)

const inf = matrix.Unreachable

func graphOf(t *testing.T, n int, edges ...core.Edge) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

func TestNewDistances(t *testing.T) {
	g := graphOf(t, 3,
		core.Edge{From: 0, To: 1, Weight: 6},
		core.Edge{From: 0, To: 1, Weight: 2},
		core.Edge{From: 2, To: 2, Weight: 5},
		core.Edge{From: 1, To: 1, Weight: -1},
	)
	d, err := matrix.NewDistances(g)
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{0, 2, inf},
		{inf, -1, inf},
		{inf, inf, 0},
	}, d.Rows())

	_, err = matrix.NewDistances(nil)
	require.ErrorIs(t, err, matrix.ErrNilGraph)
}

// Classic CLRS example (5×5, directed, negative edges, no negative cycle).
func TestFloydWarshall_CLRS(t *testing.T) {
	g := graphOf(t, 5,
		core.Edge{From: 0, To: 1, Weight: 3},
		core.Edge{From: 0, To: 2, Weight: 8},
		core.Edge{From: 0, To: 4, Weight: -4},
		core.Edge{From: 1, To: 3, Weight: 1},
		core.Edge{From: 1, To: 4, Weight: 7},
		core.Edge{From: 2, To: 1, Weight: 4},
		core.Edge{From: 3, To: 0, Weight: 2},
		core.Edge{From: 3, To: 2, Weight: -5},
		core.Edge{From: 4, To: 3, Weight: 6},
	)
	d, err := matrix.FloydWarshall(g)
	require.NoError(t, err)
	require.Equal(t, [][]int64{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}, d.Rows())
	require.Equal(t, 5, d.N())
}

func TestFloydWarshall_Unreachable(t *testing.T) {
	d, err := matrix.FloydWarshall(graphOf(t, 3, core.Edge{From: 0, To: 1, Weight: 4}))
	require.NoError(t, err)
	v, err := d.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, inf, v)

	_, err = d.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestFloydWarshall_Errors(t *testing.T) {
	_, err := matrix.FloydWarshall(nil)
	require.ErrorIs(t, err, matrix.ErrNilGraph)

	cyc := graphOf(t, 3,
		core.Edge{From: 0, To: 1, Weight: 1},
		core.Edge{From: 1, To: 2, Weight: -3},
		core.Edge{From: 2, To: 0, Weight: 1},
	)
	_, err = matrix.FloydWarshall(cyc)
	require.ErrorIs(t, err, matrix.ErrNegativeCycle)

	self := graphOf(t, 1, core.Edge{From: 0, To: 0, Weight: -1})
	_, err = matrix.FloydWarshall(self)
	require.ErrorIs(t, err, matrix.ErrNegativeCycle)

	big := graphOf(t, 3,
		core.Edge{From: 0, To: 1, Weight: math.MinInt64 + 1},
		core.Edge{From: 1, To: 2, Weight: -2},
	)
	_, err = matrix.FloydWarshall(big)
	require.ErrorIs(t, err, matrix.ErrOverflow)
}
