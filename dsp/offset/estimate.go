package offset

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-align/dsp/core"
	"github.com/cwbudde/algo-align/dsp/xcorr"
)

// Errors returned by the estimator. All of them wrap core.ErrInvalidInput.
var (
	ErrInvalidInput = core.ErrInvalidInput
	ErrEmptyInput   = fmt.Errorf("offset: empty input: %w", core.ErrInvalidInput)
	ErrTooFewPoints = fmt.Errorf("offset: need at least 2 x values: %w", core.ErrInvalidInput)
)

// StepDecimals is the number of decimal digits the sampling step is rounded
// to before use.
const StepDecimals = 7

// Result is the estimated offset together with the intermediate values it was
// derived from.
type Result struct {
	// Offset is the signed x translation; dataset 2 shifted by -Offset lines up
	// with dataset 1.
	Offset float64 `json:"offset" yaml:"offset"`
	// Reposition is x2[last] - x1[0].
	Reposition float64 `json:"reposition" yaml:"reposition"`
	// StepSize is the magnitude of the first x1 interval.
	StepSize float64 `json:"step_size" yaml:"step_size"`
	// MaxIndex is the first index of the correlation maximum.
	MaxIndex int `json:"max_index" yaml:"max_index"`
	// MaxValue is the correlation value at MaxIndex.
	MaxValue float64 `json:"max_value" yaml:"max_value"`
}

// Direction returns the sign applied to the peak shift.
func (r Result) Direction() float64 {
	return Direction(r.Reposition)
}

// Estimate converts the correlation of y1 against y2 into an x offset using
// the coordinates x1 and x2 of the two datasets.
func Estimate(x1, x2, corr []float64) (Result, error) {
	if len(x2) == 0 {
		return Result{}, fmt.Errorf("%w: x2", ErrEmptyInput)
	}
	if len(corr) == 0 {
		return Result{}, fmt.Errorf("%w: correlation", ErrEmptyInput)
	}

	step, err := StepSize(x1)
	if err != nil {
		return Result{}, err
	}

	reposition := Reposition(x1, x2)
	idx, val := xcorr.Peak(corr)

	return Result{
		Offset:     reposition - float64(idx)*step*Direction(reposition),
		Reposition: reposition,
		StepSize:   step,
		MaxIndex:   idx,
		MaxValue:   val,
	}, nil
}

// StepSize returns |round(x[1]-x[0], StepDecimals)|.
func StepSize(x []float64) (float64, error) {
	if len(x) < 2 {
		return 0, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(x))
	}
	return math.Abs(core.RoundDecimals(x[1]-x[0], StepDecimals)), nil
}

// Reposition returns x2[last] - x1[0], the displacement the full correlation
// applies before its first lag. Both slices must be non-empty.
func Reposition(x1, x2 []float64) float64 {
	return x2[len(x2)-1] - x1[0]
}

// Direction returns +1 for a strictly positive reposition and -1 otherwise,
// including zero.
func Direction(reposition float64) float64 {
	if reposition > 0 {
		return 1
	}
	return -1
}
