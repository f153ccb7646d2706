// Package converters provides two-way adapters between core.Graph and
// gonum's graph/simple representation.
//
// Vertex v of a core.Graph maps to gonum node ID v. In the other direction,
// gonum node IDs are sorted ascending and assigned dense indices 0..n-1;
// FromGonum returns that mapping so callers can translate results back.
//
// gonum simple graphs hold at most one edge per ordered pair and no
// self-loops, so ToGonum keeps the minimum weight of parallel edges and
// drops non-negative self-loops. A negative self-loop cannot be represented
// and yields ErrNegativeSelfLoop.
package converters
