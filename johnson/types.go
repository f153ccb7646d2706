package johnson

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/apsp/bellmanford"
	"github.com/katalvlaran/apsp/internal/checked"
)

// Unreachable is the distance-matrix entry for pairs with no directed path.
const Unreachable = checked.Unreachable

// Sentinel errors returned by the Johnson implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("johnson: graph is nil")

	// ErrNegativeCycle indicates the graph contains a negative-weight cycle.
	// The concrete error is a *NegativeCycleError.
	ErrNegativeCycle = bellmanford.ErrNegativeCycle

	// ErrOverflow indicates a path length or reweighted weight left the int64 range.
	ErrOverflow = checked.ErrOverflow

	// ErrPotentialMismatch indicates a potential vector whose length differs
	// from the vertex count.
	ErrPotentialMismatch = errors.New("johnson: potential vector length does not match vertex count")

	// ErrNegativeReweight indicates a reweighted edge came out negative,
	// which means the potentials are not feasible for the graph.
	ErrNegativeReweight = errors.New("johnson: reweighted edge is negative")

	// ErrVertexOutOfRange indicates a Result query outside [0, n).
	ErrVertexOutOfRange = errors.New("johnson: vertex out of range")

	// ErrNoPath indicates Path was asked for an unreachable pair.
	ErrNoPath = errors.New("johnson: no path between vertices")

	// ErrPathsNotRecorded indicates Path was called on a Result computed
	// without WithReturnPath.
	ErrPathsNotRecorded = errors.New("johnson: paths not recorded; use WithReturnPath")
)

// NegativeCycleError carries the offending edge and, when recoverable, the
// vertices of one negative cycle.
type NegativeCycleError = bellmanford.NegativeCycleError

// Options configures AllPairsShortestPaths.
//
// Ctx        – checked before each stage and before each per-source run.
// Logger     – receives Debug stage events and a Warn on negative cycles.
// ReturnPath – keep predecessor rows so Result.Path can rebuild routes.
type Options struct {
	Ctx        context.Context
	Logger     *zap.Logger
	ReturnPath bool
}

// Option represents a functional option for configuring AllPairsShortestPaths.
type Option func(*Options)

// WithContext sets the context used to abandon a long computation.
// A nil ctx leaves the default in place.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger sets the logger. A nil logger leaves the no-op default in place.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithReturnPath records predecessors so Result.Path can rebuild routes.
// Costs an extra n×n int slice.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// DefaultOptions returns Options with context.Background(), a no-op
// logger and path recording disabled.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		Logger:     zap.NewNop(),
		ReturnPath: false,
	}
}
