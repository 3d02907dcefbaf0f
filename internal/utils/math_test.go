package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomInt tests the random integer generator
func TestRandomInt(t *testing.T) {
	t.Run("returns value within range", func(t *testing.T) {
		min, max := 1, 10

		// Test multiple times to catch probabilistic issues
		for i := 0; i < 100; i++ {
			result := RandomInt(min, max)
			assert.GreaterOrEqual(t, result, min,
				"Result should be >= min")
			assert.LessOrEqual(t, result, max,
				"Result should be <= max")
		}
	})

	t.Run("handles min equals max", func(t *testing.T) {
		value := 42
		result := RandomInt(value, value)
		assert.Equal(t, value, result,
			"Should return the value when min==max")
	})

	t.Run("handles inverted range gracefully", func(t *testing.T) {
		// When min > max, should return min
		result := RandomInt(10, 5)
		assert.Equal(t, 10, result,
			"Should return min when min > max")
	})

	t.Run("handles negative ranges", func(t *testing.T) {
		min, max := -10, -1

		for i := 0; i < 50; i++ {
			result := RandomInt(min, max)
			assert.GreaterOrEqual(t, result, min)
			assert.LessOrEqual(t, result, max)
		}
	})

	t.Run("produces different values over multiple calls", func(t *testing.T) {
		// With a range of 1-100, we should see variety
		// (this could theoretically fail, but probability is extremely low)
		results := make(map[int]bool)

		for i := 0; i < 100; i++ {
			result := RandomInt(1, 100)
			results[result] = true
		}

		// We should have gotten at least 10 different values
		assert.GreaterOrEqual(t, len(results), 10,
			"Should produce varied results, not same value repeatedly")
	})
}

// TestRandomRange covers the base ± spread contract
func TestRandomRange(t *testing.T) {
	t.Run("stays within base plus or minus spread", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 500; i++ {
			v := RandomRange(RandomInt, 10, 2)
			assert.GreaterOrEqual(t, v, 8)
			assert.LessOrEqual(t, v, 12)
			seen[v] = true
		}
		assert.Len(t, seen, 5, "all 2*spread+1 outcomes should appear")
	})

	t.Run("passes inclusive bounds to the generator", func(t *testing.T) {
		var gotMin, gotMax int
		RandomRange(func(min, max int) int {
			gotMin, gotMax = min, max
			return min
		}, 5, 1)
		assert.Equal(t, 4, gotMin)
		assert.Equal(t, 6, gotMax)
	})

	t.Run("spread larger than base can go negative", func(t *testing.T) {
		v := RandomRange(func(min, max int) int { return min }, 1, 3)
		assert.Equal(t, -2, v)
	})

	t.Run("zero spread returns base", func(t *testing.T) {
		assert.Equal(t, 7, RandomRange(RandomInt, 7, 0))
	})
}

func TestSaturatingInt(t *testing.T) {
	assert.Equal(t, 248, SaturatingInt(248.83))
	assert.Equal(t, math.MaxInt, SaturatingInt(math.Inf(1)))
	assert.Equal(t, math.MinInt, SaturatingInt(math.Inf(-1)))
	assert.Equal(t, 0, SaturatingInt(math.NaN()))
}
