// Package matrix provides a dense n×n int64 distance matrix over core.Graph
// and the canonical Floyd–Warshall closure on it.
//
// It is the O(V³) reference for all-pairs shortest paths: simple, in-place,
// with a fixed k → i → j loop order. Missing pairs hold Unreachable; all
// additions are checked, so a sum never wraps into a finite value.
//
// A negative-weight cycle is reported as ErrNegativeCycle as soon as any
// diagonal entry drops below zero.
package matrix
