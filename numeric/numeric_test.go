package numeric_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvgrid/numeric"
	"github.com/stretchr/testify/require"
)

// TestExactSqrt_PerfectSquares checks every square up to 1000² round-trips.
func TestExactSqrt_PerfectSquares(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		root, ok := numeric.ExactSqrt(i * i)
		require.True(t, ok, "ExactSqrt(%d)", i*i)
		require.Equal(t, i, root)
	}
}

// TestExactSqrt_NonSquares rejects neighbours of squares and negatives.
func TestExactSqrt_NonSquares(t *testing.T) {
	for i := 2; i <= 1000; i++ {
		_, ok := numeric.ExactSqrt(i*i - 1)
		require.False(t, ok, "ExactSqrt(%d)", i*i-1)
		_, ok = numeric.ExactSqrt(i*i + 1)
		require.False(t, ok, "ExactSqrt(%d)", i*i+1)
	}
	_, ok := numeric.ExactSqrt(-4)
	require.False(t, ok)
}

// TestExactSqrt_Large guards against float rounding near the top of the int range.
func TestExactSqrt_Large(t *testing.T) {
	const r = 3037000499 // floor(sqrt(MaxInt64))
	root, ok := numeric.ExactSqrt(r * r)
	require.True(t, ok)
	require.Equal(t, r, root)

	_, ok = numeric.ExactSqrt(r*r - 1)
	require.False(t, ok)

	_, ok = numeric.ExactSqrt(math.MaxInt64)
	require.False(t, ok)
}
