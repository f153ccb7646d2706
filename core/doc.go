// Package core provides the directed, edge-weighted Graph used by the
// shortest-path packages of this module.
//
// Vertices are dense integer indices in [0, n), fixed when the graph is
// created with NewGraph. Edges are appended to the adjacency list of their
// source vertex with AddEdge and are never removed.
//
//	g, _ := core.NewGraph(3)
//	_ = g.AddEdge(0, 1, -2)
//	_ = g.AddEdge(1, 2, 3)
//
// Properties:
//
//   - Directed only: AddEdge(u, v, w) stores u→v and nothing else.
//   - Any int64 weight is accepted, including negative values.
//   - Parallel edges and self-loops are stored exactly as given; consumers
//     decide how to interpret them.
//   - Endpoints are validated at insertion time: an index outside [0, n)
//     is rejected with ErrInvalidVertex and the graph is left unchanged.
//     Algorithms reading a Graph may therefore rely on every stored edge
//     being in range.
//
// Determinism:
//
//	Neighbors(u) returns edges in insertion order; Edges() returns them
//	grouped by source vertex ascending, insertion order within a group.
//
// Concurrency:
//
//	A single sync.RWMutex guards the adjacency. Queries take the read lock
//	and return copies, so a Graph can be read by many goroutines while a
//	solver runs. AddEdge takes the write lock.
//
// Complexity:
//
//	NewGraph O(n), AddEdge O(1) amortized, Neighbors O(deg(u)),
//	Edges O(V+E), Clone O(V+E).
package core
