package johnson

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/apsp/bellmanford"
	"github.com/katalvlaran/apsp/core"
	"github.com/katalvlaran/apsp/dijkstra"
	"github.com/katalvlaran/apsp/internal/checked"
)

// AllPairsShortestPaths computes the shortest-path distance between every
// ordered pair of vertices of g.
//
// Stages, strictly in order:
//  1. bellmanford.Potentials over g with a virtual zero-weight super-source.
//     A negative cycle stops the run here with *NegativeCycleError.
//  2. Reweight g into a graph with non-negative weights.
//  3. Dijkstra from every source over the reweighted graph; each row is
//     converted back with d + h[v] - h[u], unreachable entries stay Unreachable.
//  4. Rows are assembled into the Result in source order.
//
// On error no Result is returned. g is only read.
//
// Errors: ErrNilGraph, ErrNegativeCycle (as *NegativeCycleError),
// ErrOverflow, or the context error.
//
// Complexity: O(V·E) for stage 1 plus O(V·(V+E) log V) for stage 3.
// Space: O(V² + E).
func AllPairsShortestPaths(g *core.Graph, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.Logger
	n := g.VertexCount()

	// 1) Potentials.
	h, err := bellmanford.Potentials(g, bellmanford.WithContext(cfg.Ctx))
	if err != nil {
		if errors.Is(err, ErrNegativeCycle) {
			log.Warn("negative-weight cycle detected", zap.Error(err))
		}
		return nil, fmt.Errorf("johnson: potentials: %w", err)
	}
	log.Debug("potentials solved",
		zap.Int("vertices", n),
		zap.Int("edges", g.EdgeCount()),
	)

	// 2) Reweight.
	if err = cfg.Ctx.Err(); err != nil {
		return nil, err
	}
	rw, err := Reweight(g, h)
	if err != nil {
		return nil, err
	}
	log.Debug("graph reweighted", zap.Int("edges", rw.EdgeCount()))

	// 3+4) Per-source distances, assembled row by row.
	res := newResult(n, h, cfg.ReturnPath)
	for u := 0; u < n; u++ {
		if err = cfg.Ctx.Err(); err != nil {
			return nil, err
		}
		if err = solveSource(rw, h, u, res); err != nil {
			return nil, err
		}
		log.Debug("source solved", zap.Int("source", u))
	}
	log.Debug("all-pairs distances assembled", zap.Int("sources", n))

	return res, nil
}

// solveSource runs Dijkstra from u over the reweighted graph rw and stores
// the un-reweighted row in res.
//
// Each call reads only rw and h and writes only row u of res, so sources
// are independent of one another.
func solveSource(rw *core.Graph, h []int64, u int, res *Result) error {
	opts := []dijkstra.Option{dijkstra.Source(u)}
	if res.prev != nil {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	dist, prev, err := dijkstra.Dijkstra(rw, opts...)
	if err != nil {
		return fmt.Errorf("johnson: source %d: %w", u, err)
	}

	for v, d := range dist {
		if d == Unreachable {
			continue
		}
		if dist[v], err = restore(d, h[u], h[v]); err != nil {
			return fmt.Errorf("johnson: %d→%d: %w", u, v, err)
		}
	}
	res.setRow(u, dist, prev)

	return nil
}

// restore maps a reweighted distance back to original units: d + h[v] - h[u].
// The potentials telescope along any path, so the result is exact.
func restore(d, hu, hv int64) (int64, error) {
	out, ok := checked.Add(d, hv)
	if ok {
		out, ok = checked.Sub(out, hu)
	}
	if !ok {
		return 0, fmt.Errorf("%w: restoring %d with h[u]=%d h[v]=%d", ErrOverflow, d, hu, hv)
	}

	return out, nil
}
