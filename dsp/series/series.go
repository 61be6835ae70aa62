// Package series holds the paired x/y sample model consumed by the
// alignment routines.
package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-align/dsp/core"
)

// Errors returned by dataset validation. All of them wrap core.ErrInvalidInput.
var (
	ErrInvalidInput   = core.ErrInvalidInput
	ErrLengthMismatch = fmt.Errorf("series: x/y length mismatch: %w", core.ErrInvalidInput)
	ErrTooFewPoints   = fmt.Errorf("series: fewer than 2 points: %w", core.ErrInvalidInput)
	ErrNonFinite      = fmt.Errorf("series: non-finite value: %w", core.ErrInvalidInput)
)

// MinPoints is the smallest dataset the offset math can work with.
const MinPoints = 2

// Dataset pairs a coordinate sequence X with a sample sequence Y.
// A Dataset built by New owns its slices; methods never mutate them.
type Dataset struct {
	Name string
	X    []float64
	Y    []float64
}

// New copies x and y into a validated Dataset.
func New(name string, x, y []float64) (Dataset, error) {
	d := Dataset{Name: name, X: core.Clone(x), Y: core.Clone(y)}
	if err := d.Validate(); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

// Validate checks the Dataset invariants: equal lengths, at least MinPoints
// points and finite values throughout.
func (d Dataset) Validate() error {
	if len(d.X) != len(d.Y) {
		return fmt.Errorf("%w: %s has %d x and %d y values", ErrLengthMismatch, d.label(), len(d.X), len(d.Y))
	}
	if len(d.X) < MinPoints {
		return fmt.Errorf("%w: %s has %d", ErrTooFewPoints, d.label(), len(d.X))
	}
	if !core.AllFinite(d.X) || !core.AllFinite(d.Y) {
		return fmt.Errorf("%w in %s", ErrNonFinite, d.label())
	}
	return nil
}

// Len returns the number of points.
func (d Dataset) Len() int {
	return len(d.X)
}

// Shift returns a copy of d with every x translated by dx.
func (d Dataset) Shift(dx float64) Dataset {
	x := make([]float64, len(d.X))
	for i, v := range d.X {
		x[i] = v + dx
	}
	return Dataset{Name: d.Name, X: x, Y: core.Clone(d.Y)}
}

// Bounds returns the smallest and largest x value.
func (d Dataset) Bounds() (lo, hi float64) {
	return core.Bounds(d.X)
}

// Monotonic reports whether X is strictly increasing or strictly decreasing.
func (d Dataset) Monotonic() bool {
	if len(d.X) < 2 {
		return true
	}

	increasing := d.X[1] > d.X[0]
	for i := 1; i < len(d.X); i++ {
		step := d.X[i] - d.X[i-1]
		if step == 0 || (step > 0) != increasing {
			return false
		}
	}
	return true
}

// EvenlySpaced reports whether every step of X matches the first step
// within tol (absolute).
func (d Dataset) EvenlySpaced(tol float64) bool {
	if len(d.X) < 3 {
		return true
	}

	first := d.X[1] - d.X[0]
	for i := 2; i < len(d.X); i++ {
		if math.Abs((d.X[i]-d.X[i-1])-first) > tol {
			return false
		}
	}
	return true
}

func (d Dataset) label() string {
	if d.Name == "" {
		return "dataset"
	}
	return fmt.Sprintf("dataset %q", d.Name)
}

// IsInvalid reports whether err is a dataset validation error.
func IsInvalid(err error) bool {
	return errors.Is(err, core.ErrInvalidInput)
}
