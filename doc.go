// Package apsp computes all-pairs shortest paths on sparse directed graphs
// whose edge weights may be negative.
//
// 🚀 What is apsp?
//
//	An in-memory toolkit built around Johnson's algorithm:
//		• Core primitives: dense-index directed graph, thread-safe reads
//		• Potentials: Bellman–Ford from a virtual zero-weight super-source
//		• Reweighting: every edge made non-negative, shortest paths preserved
//		• Shortest paths: Dijkstra from every source
//		• Reference: dense Floyd–Warshall for cross-checks
//		• Interop: two-way adapters to gonum graphs
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — Graph and Edge, validated insertion, RWMutex-guarded reads
//	bellmanford/ — feasible potentials, single-source distances, negative-cycle reports
//	dijkstra/    — single-source distances on non-negative weights
//	johnson/     — the all-pairs pipeline and its Result matrix
//	matrix/      — dense int64 distance matrix and Floyd–Warshall closure
//	converters/  — core.Graph ⇄ gonum simple.WeightedDirectedGraph
//	builder/     — seeded graph fixtures (paths, cycles, random feasible graphs)
//	cmd/johnson  — reads an edge list and prints the distance matrix
//
// Quick example: edges 0→1:-2, 1→2:3, 2→0:2, 0→3:4, 3→4:5, 4→2:-1 give
// distance 1 from 0 to 2 (0→1→2) and 9 from 0 to 4 (0→3→4).
//
//	go get github.com/katalvlaran/apsp/johnson
package apsp
