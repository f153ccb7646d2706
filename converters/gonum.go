// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/apsp/core"
)

// Sentinel errors for conversion failures.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrNegativeSelfLoop indicates a u→u edge with negative weight, which
	// gonum simple graphs cannot hold.
	ErrNegativeSelfLoop = errors.New("converters: negative self-loop not representable")

	// ErrNonIntegerWeight indicates a gonum edge weight that is not a finite
	// integer within the int64 range.
	ErrNonIntegerWeight = errors.New("converters: weight is not an int64")
)

// two63 is 2^63, the first float64 above the int64 range.
const two63 = 1 << 63

// ToGonum copies g into a new gonum weighted directed graph.
// Self weight is 0 and absent pairs weigh +Inf, matching shortest-path use.
//
// Errors: ErrNilGraph, ErrNegativeSelfLoop.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.WeightedDirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		out.AddNode(simple.Node(v))
	}

	for _, e := range g.Edges() {
		if e.From == e.To {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: %v", ErrNegativeSelfLoop, e)
			}
			continue
		}
		w := float64(e.Weight)
		if cur := out.WeightedEdge(int64(e.From), int64(e.To)); cur != nil && cur.Weight() <= w {
			continue
		}
		out.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: w,
		})
	}

	return out, nil
}

// FromGonum copies a gonum weighted directed graph into a new core.Graph.
// The returned ids slice maps each dense vertex index to its gonum node ID.
//
// Errors: ErrNilGraph, ErrNonIntegerWeight.
// Complexity: O(V log V + E).
func FromGonum(src graph.WeightedDirected) (*core.Graph, []int64, error) {
	if src == nil {
		return nil, nil, ErrNilGraph
	}
	nodes := graph.NodesOf(src.Nodes())
	ids := make([]int64, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	g, err := core.NewGraph(len(ids))
	if err != nil {
		return nil, nil, err
	}
	for u, uid := range ids {
		succ := graph.NodesOf(src.From(uid))
		sort.Slice(succ, func(i, j int) bool { return succ[i].ID() < succ[j].ID() })
		for _, nd := range succ {
			vid := nd.ID()
			w, err := toInt64(src.WeightedEdge(uid, vid).Weight())
			if err != nil {
				return nil, nil, fmt.Errorf("edge %d→%d: %w", uid, vid, err)
			}
			if err = g.AddEdge(u, index[vid], w); err != nil {
				return nil, nil, err
			}
		}
	}

	return g, ids, nil
}

// toInt64 converts an integral float64 weight, rejecting NaN, ±Inf,
// fractions and values outside int64.
func toInt64(w float64) (int64, error) {
	if math.IsNaN(w) || math.IsInf(w, 0) || w != math.Trunc(w) || w < -two63 || w >= two63 {
		return 0, fmt.Errorf("%w: %v", ErrNonIntegerWeight, w)
	}

	return int64(w), nil
}
