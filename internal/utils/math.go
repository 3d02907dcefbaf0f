package utils

import (
	"math"
	"math/rand"
)

// RandomInt returns a random integer between min and max (inclusive)
func RandomInt(min, max int) int {
	if min > max {
		return min
	}
	return rand.Intn(max-min+1) + min //nolint:gosec // Game logic randomness, not security critical
}

// RandomRange returns an integer uniformly chosen from [base-spread, base+spread].
// A spread larger than base can produce zero or negative values.
func RandomRange(intn func(min, max int) int, base, spread int) int {
	if spread < 0 {
		spread = -spread
	}
	return intn(base-spread, base+spread)
}

// SaturatingInt converts f to int, clamping to [math.MinInt, math.MaxInt].
// NaN maps to 0.
func SaturatingInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	default:
		return int(f)
	}
}
