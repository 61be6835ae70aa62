package testutil

import (
	"math"
	"math/rand"
)

// Ramp returns n coordinates start, start+step, start+2*step, ...
func Ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DeterministicSine generates a sine of the given period (in samples) and phase.
func DeterministicSine(period, phase, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi / period
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i)+phase)
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude) with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Pulse returns a signal of the given length holding a Gaussian bump of
// width sigma (in samples) centred at pos.
func Pulse(length int, pos, sigma float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		d := (float64(i) - pos) / sigma
		out[i] = math.Exp(-0.5 * d * d)
	}
	return out
}

// Window returns x[start:start+n] as a fresh slice.
func Window(x []float64, start, n int) []float64 {
	out := make([]float64, n)
	copy(out, x[start:start+n])
	return out
}
