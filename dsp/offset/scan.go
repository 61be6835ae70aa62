package offset

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-align/dsp/core"
	"github.com/cwbudde/algo-align/dsp/series"
)

// Errors returned by DifferenceScan.
var (
	ErrBadIncrement = fmt.Errorf("offset: increment below coordinate resolution: %w", core.ErrInvalidInput)
	ErrNoOverlap    = fmt.Errorf("offset: datasets never overlap: %w", core.ErrInvalidInput)
	ErrScanTooLong  = fmt.Errorf("offset: difference scan exceeds %d slides: %w", MaxScanSlides, core.ErrInvalidInput)
)

// MaxScanSlides caps the number of slides DifferenceScan evaluates.
const MaxScanSlides = 1 << 20

// ScanDecimals is the coordinate resolution of DifferenceScan. Coordinates
// are matched after rounding to this many decimals.
const ScanDecimals = 3

// scanResolution is the smallest increment that still moves a coordinate
// rounded to ScanDecimals.
const scanResolution = 1e-3

// Scan is the outcome of DifferenceScan.
type Scan struct {
	// Values holds the mean y1-y2 difference per slide; NaN where no
	// coordinates coincided.
	Values    []float64 `json:"values" yaml:"values"`
	Increment float64   `json:"increment" yaml:"increment"`
	// BestIndex is the first slide whose value equals the smallest |Values[i]|,
	// or failing that the first whose value equals its negation.
	BestIndex int     `json:"best_index" yaml:"best_index"`
	BestValue float64 `json:"best_value" yaml:"best_value"`
}

// Offset returns the translation, in the same sense as Result.Offset, at
// the best slide.
func (s Scan) Offset() float64 {
	return float64(s.BestIndex) * s.Increment
}

// DifferenceScan slides d1 along x in steps of increment until its smallest
// x reaches the largest x of d2. At every slide it averages y1 - y2 over
// the points whose rounded coordinates coincide inside d2's x range. The
// slide whose mean difference is closest to zero marks the alignment.
//
// Unlike correlation this needs both datasets on a shared coordinate grid.
// An increment that does not move the rounded coordinates, or a scan longer
// than MaxScanSlides, is rejected.
func DifferenceScan(d1, d2 series.Dataset, increment float64) (Scan, error) {
	if err := d1.Validate(); err != nil {
		return Scan{}, err
	}
	if err := d2.Validate(); err != nil {
		return Scan{}, err
	}
	if !(increment >= scanResolution) {
		return Scan{}, fmt.Errorf("%w: %v", ErrBadIncrement, increment)
	}

	lo1, hi1 := d1.Bounds()
	lo2, hi2 := d2.Bounds()
	for _, x := range []float64{lo1, hi1, hi2} {
		if core.RoundDecimals(x+increment, ScanDecimals) == core.RoundDecimals(x, ScanDecimals) {
			return Scan{}, fmt.Errorf("%w: %v does not move coordinate %v", ErrBadIncrement, increment, x)
		}
	}

	slides := 0
	if span := hi2 - lo1; span > 0 {
		if span/increment > MaxScanSlides {
			return Scan{}, fmt.Errorf("%w: span %v, increment %v", ErrScanTooLong, span, increment)
		}
		slides = int(math.Ceil(span / increment))
	}

	// Shifted coordinates are rounded, so the boundary slide may differ
	// from the ceiling by one.
	shift := func(x float64, k int) float64 {
		if k == 0 {
			return x
		}
		return core.RoundDecimals(x+float64(k)*increment, ScanDecimals)
	}
	for slides > 0 && shift(lo1, slides-1) >= hi2 {
		slides--
	}
	for slides < MaxScanSlides && shift(lo1, slides) < hi2 {
		slides++
	}

	index2 := make(map[float64]int, d2.Len())
	for i, x := range d2.X {
		key := core.RoundDecimals(x, ScanDecimals)
		if _, ok := index2[key]; !ok {
			index2[key] = i
		}
	}

	values := make([]float64, slides)
	for k := range values {
		var sum float64
		var count int
		for i, x0 := range d1.X {
			x := shift(x0, k)
			if x < lo2 || x > hi2 {
				continue
			}
			j, ok := index2[core.RoundDecimals(x, ScanDecimals)]
			if !ok {
				continue
			}
			sum += d1.Y[i] - d2.Y[j]
			count++
		}

		if count == 0 {
			values[k] = math.NaN()
		} else {
			values[k] = sum / float64(count)
		}
	}

	best := bestSlide(values)
	if best < 0 {
		return Scan{}, ErrNoOverlap
	}

	return Scan{
		Values:    values,
		Increment: increment,
		BestIndex: best,
		BestValue: values[best],
	}, nil
}

// bestSlide returns the first index holding +m, where m is the smallest
// |v| among the non-NaN values, else the first holding -m, else -1.
func bestSlide(values []float64) int {
	m := math.Inf(1)
	for _, v := range values {
		if !math.IsNaN(v) && math.Abs(v) < m {
			m = math.Abs(v)
		}
	}
	if math.IsInf(m, 1) {
		return -1
	}

	for i, v := range values {
		if v == m {
			return i
		}
	}
	for i, v := range values {
		if v == -m {
			return i
		}
	}

	return -1
}
