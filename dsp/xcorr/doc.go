// Package xcorr computes full cross-correlation of two real sequences.
//
// Two strategies produce the same mathematical result:
//
//   - Direct: O(N*M) nested summation with a fixed evaluation order; bit-for-bit
//     deterministic, best for short inputs
//   - FFT: zero-padded frequency-domain product IFFT(FFT(a) * conj(FFT(b))),
//     O((N+M) log(N+M)); agrees with Direct to floating-point rounding
//
// # Usage
//
//	corr, err := xcorr.Correlate(a, b, xcorr.StrategyAuto)
//	idx, val := xcorr.Peak(corr)
//	lag := xcorr.LagFromIndex(idx, len(b))
//
// # Output Layout
//
// The result has length len(a)+len(b)-1. Index k holds
//
//	out[k] = sum over i of a[i] * b[i-k+len(b)-1]
//
// with out-of-range terms contributing zero, so index 0 is the most negative
// lag (the last sample of b over the first sample of a) and index len(b)-1 is
// lag zero.
//
// # Strategy Selection
//
// [StrategyAuto] switches to the FFT path once len(a)*len(b) exceeds
// [DirectWorkLimit]. The limit mirrors the direct/FFT crossover of a 64-tap
// kernel over a 4096-sample signal on typical hardware.
package xcorr
