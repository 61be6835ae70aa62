package offset_test

import (
	"fmt"

	"github.com/cwbudde/algo-align/dsp/offset"
	"github.com/cwbudde/algo-align/dsp/series"
	"github.com/cwbudde/algo-align/dsp/xcorr"
)

func ExampleEstimate() {
	x1 := []float64{-5, -4, -3, -2, -1, 0, 1, 2}
	y1 := []float64{7, 5, 4, 3, 2, 0, -1, -3}
	x2 := []float64{0, 1, 2, 3, 4, 5, 6}
	y2 := []float64{7, 5, 4, 3, 2, 0, -1}

	corr, _ := xcorr.Correlate(y1, y2, xcorr.StrategyAuto)
	res, _ := offset.Estimate(x1, x2, corr)

	fmt.Printf("reposition=%g step=%g index=%d value=%g\n", res.Reposition, res.StepSize, res.MaxIndex, res.MaxValue)
	fmt.Printf("offset=%g\n", res.Offset)

	// Output:
	// reposition=11 step=1 index=6 value=104
	// offset=5
}

func ExampleAlign() {
	d1, _ := series.New("reference", []float64{0, 0.5, 1, 1.5, 2, 2.5}, []float64{0, 1, 4, 1, 0, 0})
	d2, _ := series.New("drifted", []float64{3, 3.5, 4, 4.5, 5, 5.5}, []float64{0, 0, 1, 4, 1, 0})

	a, _ := offset.Align(d1, d2, offset.WithStrategy(xcorr.StrategyDirect))
	fmt.Printf("offset=%g adjusted x0=%g\n", a.Offset, a.Adjusted(d2).X[0])

	// Output:
	// offset=3.5 adjusted x0=-0.5
}
