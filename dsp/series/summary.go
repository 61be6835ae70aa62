package series

import "math"

// SpacingTolerance is the absolute step deviation Summarize accepts as
// evenly spaced.
const SpacingTolerance = 1e-6

// Summary describes a dataset's coordinates and sample statistics.
type Summary struct {
	Name   string  `json:"name" yaml:"name"`
	Points int     `json:"points" yaml:"points"`
	XMin   float64 `json:"x_min" yaml:"x_min"`
	XMax   float64 `json:"x_max" yaml:"x_max"`
	// Step is x[1]-x[0], the spacing the offset estimator assumes.
	Step         float64 `json:"step" yaml:"step"`
	Monotonic    bool    `json:"monotonic" yaml:"monotonic"`
	EvenlySpaced bool    `json:"evenly_spaced" yaml:"evenly_spaced"`

	Mean float64 `json:"mean" yaml:"mean"`
	RMS  float64 `json:"rms" yaml:"rms"`
	YMin float64 `json:"y_min" yaml:"y_min"`
	YMax float64 `json:"y_max" yaml:"y_max"`
	// Peak is max(|YMin|, |YMax|).
	Peak float64 `json:"peak" yaml:"peak"`
}

// Summarize computes the Summary of d in one pass over the samples. An
// empty dataset yields a zero Summary carrying only the name.
func Summarize(d Dataset) Summary {
	s := Summary{Name: d.Name, Points: d.Len()}
	if len(d.X) == 0 || len(d.Y) == 0 {
		return s
	}

	s.XMin, s.XMax = d.Bounds()
	if len(d.X) > 1 {
		s.Step = d.X[1] - d.X[0]
	}
	s.Monotonic = d.Monotonic()
	s.EvenlySpaced = d.EvenlySpaced(SpacingTolerance)

	// Kahan summation for the mean.
	var sum, c, sumSq float64
	s.YMin, s.YMax = d.Y[0], d.Y[0]
	for _, y := range d.Y {
		t := y - c
		next := sum + t
		c = (next - sum) - t
		sum = next

		sumSq += y * y
		s.YMin = math.Min(s.YMin, y)
		s.YMax = math.Max(s.YMax, y)
	}

	n := float64(len(d.Y))
	s.Mean = sum / n
	s.RMS = math.Sqrt(sumSq / n)
	s.Peak = math.Max(math.Abs(s.YMin), math.Abs(s.YMax))

	return s
}

// Steady reports whether the dataset satisfies what the offset estimator
// assumes of its x axis.
func (s Summary) Steady() bool {
	return s.Monotonic && s.EvenlySpaced
}
