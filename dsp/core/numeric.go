package core

import (
	"math"
	"strconv"
)

// RoundDecimals rounds x to the given number of decimal digits.
//
// The result is the float64 nearest to the correctly rounded decimal
// representation of x, so ties are decided on the exact binary value rather
// than on x*10^digits, which is itself inexact.
func RoundDecimals(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) || digits < 0 {
		return x
	}

	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		return x
	}

	return r
}

// AllFinite reports whether no element of x is NaN or Inf.
func AllFinite(x []float64) bool {
	for _, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
