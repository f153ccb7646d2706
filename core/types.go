// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Edge and Graph types, sentinel errors and the NewGraph constructor.
// Policy:
//   - Vertex identity is the dense index itself; there is no vertex payload.
//   - Graph state is guarded by mu; see doc.go for the locking model.

package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertex indicates an edge endpoint outside [0, n).
	ErrInvalidVertex = errors.New("core: invalid vertex")

	// ErrNegativeVertexCount indicates NewGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("core: vertex count must be non-negative")
)

// Edge is a directed, weighted connection From→To.
type Edge struct {
	// From is the source vertex index.
	From int

	// To is the destination vertex index.
	To int

	// Weight is the edge cost. Negative values are allowed.
	Weight int64
}

// String renders the edge as "u→v(w)" for error messages and logs.
func (e Edge) String() string {
	return fmt.Sprintf("%d→%d(%d)", e.From, e.To, e.Weight)
}

// Graph is a directed, weighted graph over the vertex set [0, n).
//
// adjacency[u] holds the outgoing edges of u in insertion order.
// edgeCount mirrors the total length of all adjacency lists.
type Graph struct {
	mu sync.RWMutex // guards adjacency and edgeCount

	adjacency [][]Edge
	edgeCount int
}

// NewGraph creates an empty graph with n vertices and no edges.
// Returns ErrNegativeVertexCount if n < 0. n == 0 is a valid empty graph.
// Complexity: O(n).
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrNegativeVertexCount)
	}

	return &Graph{adjacency: make([][]Edge, n)}, nil
}
