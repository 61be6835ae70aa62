package core

// Clone returns a copy of x. A nil or empty input yields an empty, non-nil slice.
func Clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

// Reverse returns a reversed copy of x.
func Reverse(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[len(x)-1-i] = v
	}
	return out
}

// Bounds returns the smallest and largest value in x.
// Both are 0 for an empty slice.
func Bounds(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return 0, 0
	}

	lo, hi = x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
