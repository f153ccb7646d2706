// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters over the graph.
// Policy:
//   - Every getter takes the read lock and returns copies; callers may keep
//     and mutate the returned slices without affecting the graph.

package core

import "fmt"

// VertexCount returns n, the number of vertices fixed at construction.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// EdgeCount returns the number of stored edges, parallel edges included.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// HasVertex reports whether v is a valid index in [0, n).
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.inRange(v)
}

// Neighbors returns a copy of the outgoing edges of u in insertion order.
// Returns ErrInvalidVertex if u is out of range.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.inRange(u) {
		return nil, fmt.Errorf("Neighbors(%d): %w", u, ErrInvalidVertex)
	}
	out := make([]Edge, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Edges returns every edge, grouped by source vertex ascending and in
// insertion order within each source.
// Complexity: O(V+E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, list := range g.adjacency {
		out = append(out, list...)
	}

	return out
}

// inRange reports whether v indexes an existing vertex. Caller holds mu.
func (g *Graph) inRange(v int) bool {
	return v >= 0 && v < len(g.adjacency)
}
