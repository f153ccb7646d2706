// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative weights and
//     fail fast; the same scan builds a private adjacency snapshot.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and
//     discarding an entry when its distance exceeds the recorded one.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/internal/checked"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices in g.
//
// Returns:
//
//   - dist: dist[v] is the minimum distance to v (Unreachable if none).
//   - prev: predecessor slice if ReturnPath=true (nil otherwise).
//     prev[v] == u means the shortest path to v goes through u.
//     prev[Source] and prev[unreachable] are NoPredecessor.
//   - err:  error if inputs are invalid or if a negative weight is detected.
//
// Preconditions and validation (in order):
//  1. Source must be set (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain Source (ErrVertexNotFound).
//  4. No edge in g can have negative weight (ErrNegativeWeight).
func Dijkstra(g *core.Graph, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions(noSource)
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if cfg.Source == noSource {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, cfg.Source)
	}

	// 3) Pre-scan all edges: reject negative weights, build the adjacency snapshot.
	V := g.VertexCount()
	adj := make([][]core.Edge, V)
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
		adj[e.From] = append(adj[e.From], e)
	}

	// 4) Run.
	r := &runner{
		adj:     adj,
		options: cfg,
		dist:    make([]int64, V),
		visited: make([]bool, V),
		pq:      make(nodePQ, 0, V),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, V)
	}
	r.init()
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	adj     [][]core.Edge // outgoing edges per vertex, snapshot of the graph
	options Options       // Configuration options (Source, thresholds, etc.).
	dist    []int64       // current best distance from Source
	prev    []int         // predecessor on the shortest path; nil unless ReturnPath
	visited []bool        // whether a vertex's distance is finalized
	pq      nodePQ        // min-heap for the lazy priority queue
}

// init sets dist to Unreachable everywhere but Source and seeds the heap.
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Unreachable
		if r.prev != nil {
			r.prev[v] = NoPredecessor
		}
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum tentative distance
// and relaxes its outgoing edges, until the heap is empty or the minimum
// exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		// Stale entry: a shorter distance was recorded after this push.
		if d > r.dist[u] || r.visited[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true

		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge outgoing from u and improves neighbour distances.
// Assumes r.dist[u] is final.
func (r *runner) relax(u int) error {
	for _, e := range r.adj[u] {
		if e.Weight >= r.options.InfEdgeThreshold {
			continue
		}
		newDist, ok := checked.Add(r.dist[u], e.Weight)
		if !ok {
			return fmt.Errorf("%w: edge %d→%d from distance %d", ErrOverflow, u, e.To, r.dist[u])
		}
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict “<” avoids pushing duplicates on equal distances.
		if newDist >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = newDist
		if r.prev != nil {
			r.prev[e.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: e.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source at push time
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, ties broken by
// vertex index so the settle order is deterministic.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
