// Package offset converts a cross-correlation peak into the x-axis translation
// that aligns a second dataset onto a first one.
//
// Correlating y1 against y2 implicitly starts with the last sample of dataset 2
// placed over the first sample of dataset 1. [Estimate] undoes that
// "repositioning" and scales the peak index by the sampling step:
//
//	reposition = x2[last] - x1[0]
//	step       = |round(x1[1] - x1[0], 7)|
//	direction  = +1 if reposition > 0 else -1
//	offset     = reposition - peakIndex*step*direction
//
// Shifting dataset 2 by -offset overlays it on dataset 1. The direction term
// lets dataset 2 lie on either side of dataset 1 on the x-axis.
//
// The step is taken from the first two points of x1 only; unevenly spaced
// coordinates produce a proportionally wrong offset.
//
// # Usage
//
//	corr, _ := xcorr.Correlate(y1, y2, xcorr.StrategyAuto)
//	res, err := offset.Estimate(x1, x2, corr)
//
// or, for validated datasets,
//
//	a, err := offset.Align(d1, d2, offset.WithStrategy(xcorr.StrategyDirect))
//	overlay := a.Adjusted(d2)
package offset
