package window

import "math"

// Properties summarises how a taper weights a record.
type Properties struct {
	// CoherentGain is the mean coefficient, the factor by which a constant
	// signal is scaled.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// ScallopLossdB is the amplitude error half a bin away from DC.
	ScallopLossdB float64
}

// Describe computes the properties of coeffs. An empty or all-zero window
// yields the zero value.
func Describe(coeffs []float64) Properties {
	n := len(coeffs)
	if n == 0 {
		return Properties{}
	}

	sum, sumSq := 0.0, 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}
	if sum == 0 {
		return Properties{}
	}

	p := Properties{
		CoherentGain: sum / float64(n),
		ENBW:         float64(n) * sumSq / (sum * sum),
	}

	if half := dftMagSq(coeffs, 0.5/float64(n)); half > 0 {
		p.ScallopLossdB = 10 * math.Log10(half/(sum*sum))
	}

	return p
}

// dftMagSq evaluates |DFT(freq)|^2 at a normalised frequency.
func dftMagSq(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}
