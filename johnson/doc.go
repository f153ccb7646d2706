// Package johnson computes all-pairs shortest paths on sparse directed graphs
// whose edge weights may be negative, using Johnson's algorithm.
//
// Pipeline (sequential):
//
//  1. Potentials: bellmanford.Potentials relaxes g as if a virtual vertex s
//     had a zero-weight edge to every vertex. The super-source is never
//     added to g; every h[v] simply starts at 0. A negative-weight cycle
//     anywhere in g aborts here with *NegativeCycleError.
//  2. Reweight: each edge u→v(w) becomes u→v(w + h[u] - h[v]) ≥ 0 in a new
//     graph. Parallel edges collapse to their minimum weight.
//  3. Per-source distances: dijkstra.Dijkstra runs from every vertex over the
//     reweighted graph, following true adjacency only.
//  4. Assembly: each row is mapped back with d + h[v] - h[u] into an n×n
//     Result; pairs with no path hold Unreachable.
//
// Arithmetic is checked: no sum ever wraps into a small finite value, and
// ErrOverflow is returned instead.
//
// The input graph is only read. Each per-source run reads the reweighted
// graph and the potentials and writes a single row of the Result, so rows
// can be computed independently; this package computes them one after
// another in source order.
//
// Complexity: O(V·E) + O(V·(V+E)·log V) time, O(V² + E) memory.
//
// Usage:
//
//	res, err := johnson.AllPairsShortestPaths(g,
//		johnson.WithLogger(logger),
//		johnson.WithReturnPath(),
//	)
//	if errors.Is(err, johnson.ErrNegativeCycle) {
//		var nc *johnson.NegativeCycleError
//		errors.As(err, &nc)
//		...
//	}
//	d, _ := res.At(0, 4)
package johnson
