package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDevigProportional_SumsToOne tests that fair probabilities are normalized
func TestDevigProportional_SumsToOne(t *testing.T) {
	quotes := []struct{ a, b int }{
		{-110, -110},
		{-128, 118},
		{-145, 132},
		{-200, 170},
		{100, -120},
		{250, -305},
	}

	for _, q := range quotes {
		fairA, fairB, err := DevigProportional(q.a, q.b)
		require.NoError(t, err, "quote %d/%d", q.a, q.b)

		assert.InDelta(t, 1.0, fairA+fairB, Epsilon, "quote %d/%d", q.a, q.b)
		assert.Greater(t, fairA, 0.0)
		assert.Less(t, fairA, 1.0)
		assert.Greater(t, fairB, 0.0)
		assert.Less(t, fairB, 1.0)
	}
}

// TestDevigProportional_KnownQuote tests the -128/+118 pair used throughout
// the pipeline tests
func TestDevigProportional_KnownQuote(t *testing.T) {
	fairHome, fairAway, err := DevigProportional(-128, 118)
	require.NoError(t, err)

	// 1/1.78125 = 0.561404, 1/2.18 = 0.458716, overround 1.020119
	assert.InDelta(t, 0.550332, fairHome, 1e-5)
	assert.InDelta(t, 0.449668, fairAway, 1e-5)
}

// TestDevigProportional_SymmetricQuote tests that a balanced market de-vigs to 50/50
func TestDevigProportional_SymmetricQuote(t *testing.T) {
	fairA, fairB, err := DevigProportional(-110, -110)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, fairA, Epsilon)
	assert.InDelta(t, 0.5, fairB, Epsilon)
}

// TestDevigProportional_Monotonic tests that strengthening one side never
// lowers its fair probability
func TestDevigProportional_Monotonic(t *testing.T) {
	const priceB = 118

	prev := 0.0
	for _, priceA := range []int{-105, -110, -120, -128, -150, -200, -300} {
		fairA, _, err := DevigProportional(priceA, priceB)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, fairA, prev, "fair prob must not decrease as %d strengthens", priceA)
		prev = fairA
	}
}

// TestDevigProportional_InvalidPrices tests propagation of conversion failures
func TestDevigProportional_InvalidPrices(t *testing.T) {
	_, _, err := DevigProportional(0, -110)
	assert.ErrorIs(t, err, ErrInvalidQuote)

	_, _, err = DevigProportional(-110, 50)
	assert.ErrorIs(t, err, ErrInvalidQuote)
}

// TestOverround tests the vig-included probability sum
func TestOverround(t *testing.T) {
	total, err := Overround(-110, -110)
	require.NoError(t, err)
	assert.InDelta(t, 220.0/210.0, total, Epsilon)
	assert.Greater(t, total, 1.0, "a real two-sided quote carries margin")
}
