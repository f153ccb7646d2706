// Package builder provides deterministic graph fixtures for the shortest-path
// packages. Every constructor writes into a dense-index core.Graph created by
// BuildGraph and draws edge weights from a configurable WeightFn.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: the RNG used by stochastic constructors.
//     – WithWeightFn:      the per-edge weight generator.
//   - Edge-weight distributions (WeightFn implementations):
//     – ConstantWeightFn:  fixed value, negative allowed (default 1).
//     – UniformWeightFn:   uniform ∼U[min,max].
//   - Constructors:
//     – Path, Cycle, Complete:  fixed topologies, O(V) or O(V²).
//     – RandomSparse(p):        Bernoulli(p) per ordered pair.
//     – RandomFeasible(p, s):   negative edges, never a negative cycle.
//
// Guarantees:
//
//   - Same seed, options and constructor order ⇒ identical edge sequence.
//   - Fast-fail on invalid option parameters via panics in option-constructors.
//   - Runtime parameter errors are sentinel values wrapped with the method name.
package builder
