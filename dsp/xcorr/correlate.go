package xcorr

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-align/dsp/core"
)

// Errors returned by correlation functions. All of them wrap core.ErrInvalidInput.
var (
	ErrInvalidInput    = core.ErrInvalidInput
	ErrEmptyInput      = fmt.Errorf("xcorr: empty input: %w", core.ErrInvalidInput)
	ErrUnknownStrategy = fmt.Errorf("xcorr: unknown strategy: %w", core.ErrInvalidInput)
)

// minFFTSize keeps tiny inputs on a plan size the FFT backend handles well.
const minFFTSize = 16

// Correlate computes the full cross-correlation of a and b using strategy s.
// The result has length len(a) + len(b) - 1.
// Output index k corresponds to lag k - (len(b) - 1).
func Correlate(a, b []float64, s Strategy) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	switch s.Resolve(len(a), len(b)) {
	case StrategyDirect:
		return Direct(a, b)
	case StrategyFrequency:
		return FFT(a, b)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
}

// Direct computes cross-correlation by nested summation.
// For each output index the products are accumulated in increasing order of
// the index into a, so repeated calls are bit-identical.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)
	result := make([]float64, n+m-1)

	for k := range result {
		// b index j = i - k + m - 1 must lie in [0, m).
		lo := k - (m - 1)
		if lo < 0 {
			lo = 0
		}
		hi := k + 1
		if hi > n {
			hi = n
		}

		var sum float64
		for i := lo; i < hi; i++ {
			sum += a[i] * b[i-k+m-1]
		}
		result[k] = sum
	}

	return result, nil
}

// FFT computes cross-correlation as IFFT(FFT(a) * conj(FFT(b))).
// This is more efficient for longer signals.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyInput
	}

	n := len(a)
	m := len(b)
	fftSize := nextPowerOf2(n + m - 1)
	if fftSize < minFFTSize {
		fftSize = minFFTSize
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("xcorr: failed to create FFT plan: %w", err)
	}

	aPadded := make([]complex128, fftSize)
	bPadded := make([]complex128, fftSize)
	for i, v := range a {
		aPadded[i] = complex(v, 0)
	}
	for i, v := range b {
		bPadded[i] = complex(v, 0)
	}

	aFreq := make([]complex128, fftSize)
	bFreq := make([]complex128, fftSize)

	if err := plan.Forward(aFreq, aPadded); err != nil {
		return nil, fmt.Errorf("xcorr: forward FFT failed: %w", err)
	}
	if err := plan.Forward(bFreq, bPadded); err != nil {
		return nil, fmt.Errorf("xcorr: forward FFT failed: %w", err)
	}

	// Reuse aPadded for the cross spectrum A * conj(B).
	for i := range aPadded {
		bConj := complex(real(bFreq[i]), -imag(bFreq[i]))
		aPadded[i] = aFreq[i] * bConj
	}

	circular := bPadded
	if err := plan.Inverse(circular, aPadded); err != nil {
		return nil, fmt.Errorf("xcorr: inverse FFT failed: %w", err)
	}

	// The circular result holds lags 0..n-1 at the front and the negative
	// lags -(m-1)..-1 at the tail.
	result := make([]float64, n+m-1)
	for i := 0; i < n; i++ {
		result[m-1+i] = real(circular[i])
	}
	for i := 0; i < m-1; i++ {
		result[i] = real(circular[fftSize-m+1+i])
	}

	return result, nil
}

// Normalized computes cross-correlation scaled by the product of the L2 norms
// of a and b, producing values in [-1, 1]. When either input has zero energy
// the raw correlation is returned.
func Normalized(a, b []float64, s Strategy) ([]float64, error) {
	result, err := Correlate(a, b, s)
	if err != nil {
		return nil, err
	}

	normProduct := l2Norm(a) * l2Norm(b)
	if normProduct == 0 {
		return result, nil
	}

	for i := range result {
		result[i] /= normProduct
	}

	return result, nil
}

// l2Norm computes the L2 (Euclidean) norm of a signal.
func l2Norm(x []float64) float64 {
	return math.Sqrt(vecmath.DotProduct(x, x))
}

// Peak returns the index and value of the largest element of corr.
// Ties resolve to the lowest index. An empty input yields (-1, 0).
func Peak(corr []float64) (index int, value float64) {
	if len(corr) == 0 {
		return -1, 0
	}

	index = 0
	value = corr[0]

	for i, v := range corr {
		if v > value {
			index = i
			value = v
		}
	}

	return index, value
}

// LagFromIndex converts a correlation result index to a lag value.
// For a correlation against a second signal of length lenB,
// the lag at index i is i - (lenB - 1).
func LagFromIndex(index, lenB int) int {
	return index - (lenB - 1)
}

// IndexFromLag converts a lag value to a correlation result index.
func IndexFromLag(lag, lenB int) int {
	return lag + (lenB - 1)
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
