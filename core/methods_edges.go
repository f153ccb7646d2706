// File: methods_edges.go
// Role: Edge insertion and graph cloning.
// Concurrency:
//   - AddEdge holds the write lock for validation and append, so a rejected
//     edge never leaves partial state behind.
//   - Clone holds the read lock while snapshotting.

package core

import "fmt"

// AddEdge appends the directed edge from→to with the given weight to the
// adjacency list of from.
//
// Both endpoints must lie in [0, n); otherwise ErrInvalidVertex is returned,
// wrapped with the offending edge, and the graph is unchanged. Parallel
// edges and self-loops are accepted.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.inRange(from) || !g.inRange(to) {
		return fmt.Errorf("AddEdge(%d→%d, w=%d) with n=%d: %w",
			from, to, weight, len(g.adjacency), ErrInvalidVertex)
	}
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	g.edgeCount++

	return nil
}

// Clone returns a deep copy of g. Later edges added to either graph do not
// appear in the other.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		adjacency: make([][]Edge, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	for u, list := range g.adjacency {
		if len(list) == 0 {
			continue
		}
		clone.adjacency[u] = append(make([]Edge, 0, len(list)), list...)
	}

	return clone
}
