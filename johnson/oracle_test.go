package johnson_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/apsp/bellmanford"
	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/converters"
	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/johnson"
	"github.com/katalvlaran/apsp/matrix"
)

// feasibleGraph builds a seeded random graph with negative edges and no
// negative cycle.
func feasibleGraph(t *testing.T, seed int64, n int) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(n, []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithWeightFn(builder.UniformWeightFn(0, 12)),
	}, builder.RandomFeasible(0.25, 9))
	require.NoError(t, err)

	return g
}

// floydWarshall computes the reference matrix with gonum.
func floydWarshall(t *testing.T, g *core.Graph) [][]int64 {
	t.Helper()
	gg, err := converters.ToGonum(g)
	require.NoError(t, err)
	all, ok := path.FloydWarshall(gg)
	require.True(t, ok, "oracle found a negative cycle")

	n := g.VertexCount()
	out := make([][]int64, n)
	for i := range out {
		out[i] = make([]int64, n)
		for j := range out[i] {
			w := all.Weight(int64(i), int64(j))
			if math.IsInf(w, 1) {
				out[i][j] = johnson.Unreachable
				continue
			}
			out[i][j] = int64(w)
		}
	}

	return out
}

func TestAgreesWithFloydWarshall(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := feasibleGraph(t, seed, 14)
		res, err := johnson.AllPairsShortestPaths(g)
		require.NoError(t, err, "seed %d", seed)

		if diff := cmp.Diff(floydWarshall(t, g), res.Matrix()); diff != "" {
			t.Fatalf("seed %d: matrix mismatch (-gonum +johnson):\n%s", seed, diff)
		}

		dense, err := matrix.FloydWarshall(g)
		require.NoError(t, err)
		if diff := cmp.Diff(dense.Rows(), res.Matrix()); diff != "" {
			t.Fatalf("seed %d: matrix mismatch (-dense +johnson):\n%s", seed, diff)
		}
	}
}

// TestRowsAgreeWithBellmanFord checks each row against both Bellman-Ford
// implementations.
func TestRowsAgreeWithBellmanFord(t *testing.T) {
	for seed := int64(100); seed < 110; seed++ {
		g := feasibleGraph(t, seed, 10)
		res, err := johnson.AllPairsShortestPaths(g)
		require.NoError(t, err)

		gg, err := converters.ToGonum(g)
		require.NoError(t, err)

		for u := 0; u < g.VertexCount(); u++ {
			want, err := bellmanford.From(g, u)
			require.NoError(t, err)
			got, err := res.Row(u)
			require.NoError(t, err)
			require.Equal(t, want, got, "seed %d source %d", seed, u)

			pt, ok := path.BellmanFordFrom(simple.Node(u), gg)
			require.True(t, ok)
			for v, d := range got {
				w := pt.WeightTo(int64(v))
				if d == johnson.Unreachable {
					require.True(t, math.IsInf(w, 1), "seed %d %d→%d", seed, u, v)
					continue
				}
				require.Equal(t, float64(d), w, "seed %d %d→%d", seed, u, v)
			}
		}
	}
}

func TestReweightedDistancesRestoreExactly(t *testing.T) {
	g := mustGraph(t, 5, sampleEdges...)
	h, err := bellmanford.Potentials(g)
	require.NoError(t, err)
	rw, err := johnson.Reweight(g, h)
	require.NoError(t, err)

	res, err := johnson.AllPairsShortestPaths(g)
	require.NoError(t, err)

	for u := 0; u < 5; u++ {
		dist, _, err := dijkstra.Dijkstra(rw, dijkstra.Source(u))
		require.NoError(t, err)
		for v, d := range dist {
			got, err := res.At(u, v)
			require.NoError(t, err)
			require.Equal(t, d+h[v]-h[u], got, "%d→%d", u, v)
		}
	}
}

// minWeight returns the lightest u→v edge in g.
func minWeight(t *testing.T, g *core.Graph, u, v int) int64 {
	t.Helper()
	nbs, err := g.Neighbors(u)
	require.NoError(t, err)
	best := int64(math.MaxInt64)
	for _, e := range nbs {
		if e.To == v && e.Weight < best {
			best = e.Weight
		}
	}
	require.NotEqual(t, int64(math.MaxInt64), best, "no edge %d→%d", u, v)

	return best
}

func TestPathWeightsMatchDistances(t *testing.T) {
	for seed := int64(7); seed < 12; seed++ {
		g := feasibleGraph(t, seed, 12)
		res, err := johnson.AllPairsShortestPaths(g, johnson.WithReturnPath())
		require.NoError(t, err)

		n := g.VertexCount()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				d, err := res.At(i, j)
				require.NoError(t, err)
				p, err := res.Path(i, j)
				if d == johnson.Unreachable {
					require.ErrorIs(t, err, johnson.ErrNoPath)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, i, p[0])
				require.Equal(t, j, p[len(p)-1])

				var sum int64
				for k := 1; k < len(p); k++ {
					sum += minWeight(t, g, p[k-1], p[k])
				}
				require.Equal(t, d, sum, "seed %d path %v", seed, p)
			}
		}
	}
}
