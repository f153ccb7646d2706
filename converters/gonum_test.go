package converters_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/apsp/converters"
	"github.com/katalvlaran/apsp/core"
)

func TestToGonum_CollapsesParallelAndSelfLoops(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(0, 1, -2))
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 2, 3))
	require.NoError(t, g.AddEdge(2, 2, 5))

	out, err := converters.ToGonum(g)
	require.NoError(t, err)
	require.Equal(t, 3, out.Nodes().Len())
	require.Equal(t, 2, out.Edges().Len())

	w, ok := out.Weight(0, 1)
	require.True(t, ok)
	require.Equal(t, -2.0, w)

	w, ok = out.Weight(2, 2)
	require.True(t, ok)
	require.Equal(t, 0.0, w, "self weight")

	_, ok = out.Weight(2, 0)
	require.False(t, ok)
}

func TestToGonum_Errors(t *testing.T) {
	_, err := converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)

	g, err := core.NewGraph(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 1, -1))
	_, err = converters.ToGonum(g)
	require.ErrorIs(t, err, converters.ErrNegativeSelfLoop)
}

func TestFromGonum_DenseMapping(t *testing.T) {
	src := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(20), T: simple.Node(5), W: -4})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(5), T: simple.Node(10), W: 2})
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(5), T: simple.Node(20), W: 9})

	g, ids, err := converters.FromGonum(src)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 10, 20}, ids)
	require.Equal(t, 3, g.VertexCount())
	require.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 9},
		{From: 2, To: 0, Weight: -4},
	}, g.Edges())
}

func TestFromGonum_RejectsFractionalWeight(t *testing.T) {
	src := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	src.SetWeightedEdge(simple.WeightedEdge{F: simple.Node(0), T: simple.Node(1), W: 1.5})

	_, _, err := converters.FromGonum(src)
	require.ErrorIs(t, err, converters.ErrNonIntegerWeight)

	_, _, err = converters.FromGonum(nil)
	require.ErrorIs(t, err, converters.ErrNilGraph)
}

func TestRoundTrip(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range []core.Edge{
		{From: 0, To: 1, Weight: -2},
		{From: 1, To: 2, Weight: 3},
		{From: 2, To: 0, Weight: 2},
		{From: 0, To: 3, Weight: 4},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	out, err := converters.ToGonum(g)
	require.NoError(t, err)
	back, ids, err := converters.FromGonum(out)
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, 3}, ids)
	require.Equal(t, g.Edges(), back.Edges())
}
