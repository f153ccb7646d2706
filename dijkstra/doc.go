// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a single source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a binary min-heap frontier to always expand the next-closest vertex.
//   - Only true neighbours are scanned: each pop iterates the popped vertex's
//     outgoing edges, never all V candidate targets.
//   - Supports optional path reconstruction, distance caps, and “impassable” edge thresholds.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, returns a predecessor slice, so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable (infinite cost).
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for distances and predecessors.
//   - O(E) worst-case heap entries under the “lazy decrease-key” strategy.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource:     Source was never set.
//   - ErrNilGraph:        the graph pointer is nil.
//   - ErrVertexNotFound:  Source is outside [0, n).
//   - ErrNegativeWeight:  some edge has a negative weight (O(E) pre-scan).
//   - ErrBadMaxDistance:  (panic) WithMaxDistance got a negative value.
//   - ErrBadInfThreshold: (panic) WithInfEdgeThreshold got a value ≤ 0.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist []int64, prev []int, err error)
//
//	  - dist: dist[v] = minimal distance from Source to v, or Unreachable.
//	  - prev: prev[v] = predecessor of v on one shortest path, or -1 for the
//	          source and unreachable vertices. Nil unless WithReturnPath().
//
// Thread safety:
//
//   - Dijkstra snapshots the graph's edges once under its read lock and does
//     not touch the graph afterwards, so concurrent AddEdge calls are safe
//     but are not observed by a run already in progress.
package dijkstra
