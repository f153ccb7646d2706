package johnson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/apsp/dijkstra"
)

// Result is the dense n×n distance matrix produced by AllPairsShortestPaths.
//
// Entry (i, j) is the shortest-path distance from i to j in the original
// graph, or Unreachable. Rows are stored contiguously in source order.
// A Result is immutable after construction and safe for concurrent reads.
type Result struct {
	n    int
	dist []int64 // row-major, len n*n
	prev []int   // row-major predecessors; nil unless WithReturnPath
	h    []int64 // potentials used for reweighting
}

// newResult allocates an n×n matrix; withPaths also allocates predecessors.
func newResult(n int, h []int64, withPaths bool) *Result {
	r := &Result{
		n:    n,
		dist: make([]int64, n*n),
		h:    h,
	}
	if withPaths {
		r.prev = make([]int, n*n)
	}

	return r
}

// setRow stores the finished distance row (and predecessor row) of source u.
func (r *Result) setRow(u int, dist []int64, prev []int) {
	copy(r.dist[u*r.n:(u+1)*r.n], dist)
	if r.prev != nil {
		copy(r.prev[u*r.n:(u+1)*r.n], prev)
	}
}

// N returns the number of vertices.
func (r *Result) N() int { return r.n }

// At returns the distance from i to j, or Unreachable.
func (r *Result) At(i, j int) (int64, error) {
	if err := r.check(i, j); err != nil {
		return 0, err
	}

	return r.dist[i*r.n+j], nil
}

// Reachable reports whether a directed path from i to j exists.
// Out-of-range indices report false.
func (r *Result) Reachable(i, j int) bool {
	d, err := r.At(i, j)

	return err == nil && d != Unreachable
}

// Row returns a copy of the distances from source i.
func (r *Result) Row(i int) ([]int64, error) {
	if i < 0 || i >= r.n {
		return nil, fmt.Errorf("%w: row %d with n=%d", ErrVertexOutOfRange, i, r.n)
	}
	out := make([]int64, r.n)
	copy(out, r.dist[i*r.n:(i+1)*r.n])

	return out, nil
}

// Matrix returns a copy of the whole table as n rows of n entries.
func (r *Result) Matrix() [][]int64 {
	out := make([][]int64, r.n)
	for i := range out {
		out[i] = make([]int64, r.n)
		copy(out[i], r.dist[i*r.n:(i+1)*r.n])
	}

	return out
}

// Potentials returns a copy of the vertex potentials used for reweighting.
func (r *Result) Potentials() []int64 {
	out := make([]int64, len(r.h))
	copy(out, r.h)

	return out
}

// Path returns the vertices of one shortest path from i to j, both
// included. Path(i, i) is [i].
//
// Errors: ErrPathsNotRecorded without WithReturnPath, ErrVertexOutOfRange,
// ErrNoPath for unreachable pairs.
func (r *Result) Path(i, j int) ([]int, error) {
	if r.prev == nil {
		return nil, ErrPathsNotRecorded
	}
	if err := r.check(i, j); err != nil {
		return nil, err
	}
	if r.dist[i*r.n+j] == Unreachable {
		return nil, fmt.Errorf("%w: %d→%d", ErrNoPath, i, j)
	}

	row := r.prev[i*r.n : (i+1)*r.n]
	rev := []int{j}
	for v := j; v != i; {
		v = row[v]
		if v == dijkstra.NoPredecessor || len(rev) > r.n {
			return nil, fmt.Errorf("%w: broken predecessor chain %d→%d", ErrNoPath, i, j)
		}
		rev = append(rev, v)
	}
	for a, b := 0, len(rev)-1; a < b; a, b = a+1, b-1 {
		rev[a], rev[b] = rev[b], rev[a]
	}

	return rev, nil
}

// String renders the matrix one row per line, entries separated by a single
// space, with INF for unreachable pairs.
func (r *Result) String() string {
	var sb strings.Builder
	for i := 0; i < r.n; i++ {
		for j := 0; j < r.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(FormatDistance(r.dist[i*r.n+j]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// FormatDistance renders d in decimal, or "INF" for Unreachable.
func FormatDistance(d int64) string {
	if d == Unreachable {
		return "INF"
	}

	return strconv.FormatInt(d, 10)
}

func (r *Result) check(i, j int) error {
	if i < 0 || i >= r.n || j < 0 || j >= r.n {
		return fmt.Errorf("%w: (%d,%d) with n=%d", ErrVertexOutOfRange, i, j, r.n)
	}

	return nil
}
