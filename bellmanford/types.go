// Package bellmanford defines errors and options for the Bellman-Ford
// relaxation used to compute vertex potentials and single-source distances
// on graphs that may carry negative edge weights.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source of From is outside [0, n).
//	– ErrNegativeCycle   if a negative-weight cycle is reachable; the returned
//	                     error is a *NegativeCycleError wrapping it.
//	– ErrOverflow        if a path length does not fit in int64.
package bellmanford

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/internal/checked"
)

// Unreachable is the distance reported by From for vertices with no path
// from the source.
const Unreachable = checked.Unreachable

// Sentinel errors returned by the Bellman-Ford implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates the source index is not a vertex of the graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle was detected.
	ErrNegativeCycle = errors.New("bellmanford: graph contains a negative-weight cycle")

	// ErrOverflow indicates a tentative distance left the int64 range.
	ErrOverflow = checked.ErrOverflow
)

// NegativeCycleError reports a detected negative-weight cycle.
//
// Edge is the edge that still admitted relaxation after the final round.
// Cycle lists the vertices of one negative cycle in traversal order, starting
// at its smallest index; it is nil if the cycle could not be recovered from
// the predecessor links.
type NegativeCycleError struct {
	Edge  core.Edge
	Cycle []int
}

func (e *NegativeCycleError) Error() string {
	if len(e.Cycle) == 0 {
		return fmt.Sprintf("%v: edge %v still relaxes", ErrNegativeCycle, e.Edge)
	}
	parts := make([]string, 0, len(e.Cycle)+1)
	for _, v := range e.Cycle {
		parts = append(parts, fmt.Sprint(v))
	}
	parts = append(parts, fmt.Sprint(e.Cycle[0]))

	return fmt.Sprintf("%v: %s", ErrNegativeCycle, strings.Join(parts, "→"))
}

// Unwrap lets errors.Is(err, ErrNegativeCycle) succeed.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// Options configures a Bellman-Ford run.
//
// Ctx – checked once per relaxation round; cancellation aborts the run with ctx.Err().
type Options struct {
	Ctx context.Context
}

// Option represents a functional option for configuring Bellman-Ford.
type Option func(*Options)

// WithContext sets the context checked between relaxation rounds.
// A nil ctx leaves the default in place.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// DefaultOptions returns Options with context.Background().
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}
