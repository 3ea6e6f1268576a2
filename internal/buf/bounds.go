package buf

import (
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Fits reports whether a block of n bytes starting at off ends at or before limit.
// All of off, n and limit are expected to be non-negative; the sum is checked
// for overflow so callers can pass sizes straight from a request.
//
//	Fits(24, 40, 64) == true  // ends exactly at the limit
//	Fits(24, 50, 64) == false // 74 > 64
func Fits(off, n, limit int) bool {
	if off < 0 || n < 0 || off > limit {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= limit
}
