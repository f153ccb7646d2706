// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/builder"
)

// TestWeightFnConstructors verifies that constructors panic on invalid
// parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.NotPanics(t, func() { builder.ConstantWeightFn(-1) })
}

// TestWeightFnBehavior checks generated values stay within contract.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	require.Equal(t, int64(-3), builder.ConstantWeightFn(-3)(nil))

	uni := builder.UniformWeightFn(-2, 4)
	require.Equal(t, int64(-2), uni(nil), "nil rng yields min")

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		w := uni(rng)
		require.GreaterOrEqual(t, w, int64(-2))
		require.LessOrEqual(t, w, int64(4))
	}
}
