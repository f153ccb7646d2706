// Package bellmanford implements edge-list Bellman-Ford relaxation over a
// core.Graph.
//
// Two entry points share one relaxation loop:
//
//   - Potentials computes h[v], the shortest distance to v from a virtual
//     super-source joined to every vertex by a zero-weight edge. The
//     super-source is never materialised: starting every h[v] at 0 is exactly
//     the state after relaxing its n outgoing edges, so the stored graph is
//     read only.
//   - From computes classic single-source distances.
//
// Complexity:
//
//   - Time:  O(V·E) worst case; a round that changes nothing ends the run early.
//   - Space: O(V + E) for the distance, predecessor and edge snapshots.
//
// A negative cycle is reported as *NegativeCycleError (errors.Is matches
// ErrNegativeCycle) and no distances are returned.
package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/internal/checked"
)

// noPred marks a vertex whose distance was never improved by a real edge.
const noPred = -1

// Potentials returns one potential per vertex of g such that
// h[v] <= h[u] + w for every edge u→v(w).
//
// Every h[v] is <= 0, and h[v] < 0 exactly when some path ending at v has
// negative total weight. The graph runs at most n relaxation rounds, where n
// is the real vertex count; the virtual source has no incoming edges and
// needs no round of its own.
//
// Errors: ErrNilGraph, *NegativeCycleError, ErrOverflow, or ctx.Err().
func Potentials(g *core.Graph, opts ...Option) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.VertexCount()
	r := newRelaxer(g, cfg, 0) // h[v] = 0: the virtual edge s→v has already been relaxed
	if err := r.run(n); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// From returns the shortest distance from source to every vertex of g,
// with Unreachable for vertices that have no path from source.
//
// Only cycles reachable from source are detected; a negative cycle elsewhere
// in the graph does not affect the result.
//
// Errors: ErrNilGraph, ErrVertexNotFound, *NegativeCycleError, ErrOverflow,
// or ctx.Err().
func From(g *core.Graph, source int, opts ...Option) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := g.VertexCount()
	r := newRelaxer(g, cfg, Unreachable)
	r.dist[source] = 0
	if err := r.run(n - 1); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// relaxer holds the mutable state for a single Bellman-Ford execution.
type relaxer struct {
	cfg   Options
	edges []core.Edge // snapshot of g.Edges(); the graph is not re-read
	dist  []int64     // tentative distance per vertex
	pred  []int       // last improving predecessor, noPred if none
}

func newRelaxer(g *core.Graph, cfg Options, initial int64) *relaxer {
	n := g.VertexCount()
	r := &relaxer{
		cfg:   cfg,
		edges: g.Edges(),
		dist:  make([]int64, n),
		pred:  make([]int, n),
	}
	for v := range r.dist {
		r.dist[v] = initial
		r.pred[v] = noPred
	}

	return r
}

// run performs up to rounds full passes over the edge list, then one
// detection pass.
func (r *relaxer) run(rounds int) error {
	for round := 0; round < rounds; round++ {
		if err := r.cfg.Ctx.Err(); err != nil {
			return err
		}
		changed, err := r.pass()
		if err != nil {
			return err
		}
		if !changed {
			// Fixpoint: no edge can relax, so no negative cycle is reachable.
			return nil
		}
	}

	return r.detect()
}

// pass relaxes every edge once and reports whether any distance improved.
func (r *relaxer) pass() (bool, error) {
	changed := false
	for _, e := range r.edges {
		cand, ok, err := r.candidate(e)
		if err != nil {
			return false, err
		}
		if ok && cand < r.dist[e.To] {
			r.dist[e.To] = cand
			r.pred[e.To] = e.From
			changed = true
		}
	}

	return changed, nil
}

// candidate returns dist[From]+Weight. ok is false when From is unreachable.
func (r *relaxer) candidate(e core.Edge) (int64, bool, error) {
	du := r.dist[e.From]
	if du == Unreachable {
		return 0, false, nil
	}
	cand, ok := checked.Add(du, e.Weight)
	if !ok {
		return 0, false, fmt.Errorf("%w: edge %v from distance %d", ErrOverflow, e, du)
	}

	return cand, true, nil
}

// detect scans every edge once more; any edge that still relaxes proves a
// negative-weight cycle.
func (r *relaxer) detect() error {
	for _, e := range r.edges {
		cand, ok, err := r.candidate(e)
		if err != nil {
			return err
		}
		if ok && cand < r.dist[e.To] {
			r.pred[e.To] = e.From

			return &NegativeCycleError{Edge: e, Cycle: r.cycleThrough(e.To)}
		}
	}

	return nil
}

// cycleThrough walks predecessor links back from v until it lands on a
// cycle, then returns that cycle in forward order starting at its smallest
// vertex. Returns nil if the walk leaves the predecessor graph.
func (r *relaxer) cycleThrough(v int) []int {
	n := len(r.pred)
	x := v
	for i := 0; i < n; i++ {
		x = r.pred[x]
		if x == noPred {
			return nil
		}
	}

	// x is on a cycle; collect it backwards.
	back := []int{x}
	for y := r.pred[x]; y != x; y = r.pred[y] {
		if y == noPred || len(back) > n {
			return nil
		}
		back = append(back, y)
	}

	// Reverse into traversal order and rotate to the smallest vertex.
	cycle := make([]int, len(back))
	start := 0
	for i := range back {
		cycle[i] = back[len(back)-1-i]
		if cycle[i] < cycle[start] {
			start = i
		}
	}

	return append(cycle[start:], cycle[:start]...)
}
