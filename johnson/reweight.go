package johnson

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/internal/checked"
)

// noEdge marks an ordered pair not yet seen while collapsing parallel edges.
const noEdge = -1

// Reweight returns a new graph with the same vertex set as g in which every
// edge u→v(w) becomes u→v(w + h[u] - h[v]).
//
// Parallel edges u→v collapse to the one with the smallest original weight;
// the others can never lie on a shortest path. Pairs keep the order in which
// their first edge was inserted. g is not modified.
//
// With feasible potentials (h[v] <= h[u] + w for every edge) every
// reweighted edge is non-negative; an infeasible h yields ErrNegativeReweight.
//
// Errors: ErrNilGraph, ErrPotentialMismatch, ErrNegativeReweight, ErrOverflow.
// Complexity: O(V + E) time, O(V + E) space.
func Reweight(g *core.Graph, h []int64) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if len(h) != n {
		return nil, fmt.Errorf("%w: len(h)=%d, n=%d", ErrPotentialMismatch, len(h), n)
	}

	out, err := core.NewGraph(n)
	if err != nil {
		return nil, err
	}

	// slot[v] indexes the collapsed edge u→v in pairs for the current u.
	slot := make([]int, n)
	for v := range slot {
		slot[v] = noEdge
	}
	var pairs []core.Edge

	for u := 0; u < n; u++ {
		nbs, err := g.Neighbors(u)
		if err != nil {
			return nil, err
		}
		pairs = pairs[:0]
		for _, e := range nbs {
			if i := slot[e.To]; i != noEdge {
				if e.Weight < pairs[i].Weight {
					pairs[i].Weight = e.Weight
				}
				continue
			}
			slot[e.To] = len(pairs)
			pairs = append(pairs, e)
		}

		for _, e := range pairs {
			slot[e.To] = noEdge
			w, err := reweighted(e, h)
			if err != nil {
				return nil, err
			}
			if err := out.AddEdge(e.From, e.To, w); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// reweighted computes w + h[u] - h[v] with overflow checks.
func reweighted(e core.Edge, h []int64) (int64, error) {
	w, ok := checked.Add(e.Weight, h[e.From])
	if ok {
		w, ok = checked.Sub(w, h[e.To])
	}
	if !ok {
		return 0, fmt.Errorf("%w: reweighting edge %v with h[%d]=%d h[%d]=%d",
			ErrOverflow, e, e.From, h[e.From], e.To, h[e.To])
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: edge %v reweighted to %d", ErrNegativeReweight, e, w)
	}

	return w, nil
}
