package bufio16

import "math"

// AddOverflowSafe adds a and b, reporting ok=false when the result would
// overflow int. Mirrors the bounds-checking discipline used throughout the
// cell arena: every offset arithmetic op is checked before it is trusted.
func AddOverflowSafe(a, b int) (sum int, ok bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Has reports whether the half-open range [off, off+n) fits within length.
func Has(length, off, n int) bool {
	if off < 0 || n < 0 || off > length {
		return false
	}
	end, ok := AddOverflowSafe(off, n)
	return ok && end <= length
}
