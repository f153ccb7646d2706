// SPDX-License-Identifier: MIT
// Package: apsp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates the graph is smaller than the constructor requires.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates a generated or requested weight violates the
// constructor's contract (e.g. a negative base weight in RandomFeasible).
var ErrInvalidWeight = errors.New("builder: invalid weight")

// ErrConstructFailed indicates a construction could not proceed (nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
