package offset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-align/dsp/series"
	"github.com/cwbudde/algo-align/dsp/window"
	"github.com/cwbudde/algo-align/dsp/xcorr"
	"github.com/cwbudde/algo-align/internal/testutil"
)

func exampleDatasets(t *testing.T) (series.Dataset, series.Dataset) {
	t.Helper()
	d1, err := series.New("dataset 1", exampleX1, exampleY1)
	require.NoError(t, err)
	d2, err := series.New("dataset 2", exampleX2, exampleY2)
	require.NoError(t, err)
	return d1, d2
}

func TestAlignWorkedExample(t *testing.T) {
	d1, d2 := exampleDatasets(t)

	a, err := Align(d1, d2)
	require.NoError(t, err)

	assert.Equal(t, xcorr.StrategyDirect, a.Strategy, "auto resolves to direct for tiny inputs")
	assert.Len(t, a.Correlation, d1.Len()+d2.Len()-1)
	assert.Equal(t, 5.0, a.Offset)

	adj := a.Adjusted(d2)
	assert.Equal(t, []float64{-5, -4, -3, -2, -1, 0, 1}, adj.X)
	assert.Equal(t, d2.Y, adj.Y)
}

func TestAlignExplicitStrategy(t *testing.T) {
	d1, d2 := exampleDatasets(t)

	a, err := Align(d1, d2, WithStrategy(xcorr.StrategyFrequency))
	require.NoError(t, err)

	assert.Equal(t, xcorr.StrategyFrequency, a.Strategy)
	assert.Equal(t, 6, a.MaxIndex)
	assert.InDelta(t, 5.0, a.Offset, 1e-12)
}

func TestAlignNormalizeKeepsPeak(t *testing.T) {
	d1, d2 := exampleDatasets(t)

	raw, err := Align(d1, d2)
	require.NoError(t, err)
	norm, err := Align(d1, d2, WithNormalize())
	require.NoError(t, err)

	assert.Equal(t, raw.MaxIndex, norm.MaxIndex)
	assert.Equal(t, raw.Offset, norm.Offset)
	assert.LessOrEqual(t, norm.MaxValue, 1.0+1e-12)
	assert.Greater(t, norm.MaxValue, 0.9)
}

func TestAlignTaperDoesNotMutate(t *testing.T) {
	x1 := testutil.Ramp(0, 1, 128)
	y1 := testutil.Pulse(128, 64, 4)
	x2 := testutil.Ramp(0, 1, 128)
	y2 := testutil.Pulse(128, 64, 4)

	d1, err := series.New("a", x1, y1)
	require.NoError(t, err)
	d2, err := series.New("b", x2, y2)
	require.NoError(t, err)

	a, err := Align(d1, d2, WithTaper(window.TypeHann))
	require.NoError(t, err)

	assert.InDelta(t, 0.0, a.Offset, 1e-12, "identical centred pulses stay aligned under a symmetric taper")
	assert.Equal(t, y1, d1.Y, "taper must work on copies")
}

func TestAlignTukeyTaperOptions(t *testing.T) {
	d1, d2 := exampleDatasets(t)

	rect, err := Align(d1, d2, WithTaper(window.TypeTukey, window.WithAlpha(0)))
	require.NoError(t, err)
	plain, err := Align(d1, d2)
	require.NoError(t, err)

	// A Tukey window with alpha 0 is rectangular.
	assert.Equal(t, plain.Correlation, rect.Correlation)
	assert.Equal(t, plain.Offset, rect.Offset)
}

func TestAlignRejectsInvalidDatasets(t *testing.T) {
	_, d2 := exampleDatasets(t)

	bad := series.Dataset{X: []float64{0, 1, 2}, Y: []float64{1, 2}}
	_, err := Align(bad, d2)
	assert.ErrorIs(t, err, series.ErrLengthMismatch)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Align(d2, series.Dataset{X: []float64{0}, Y: []float64{0}})
	assert.ErrorIs(t, err, series.ErrTooFewPoints)
}

func TestAlignUnknownStrategy(t *testing.T) {
	d1, d2 := exampleDatasets(t)

	_, err := Align(d1, d2, WithStrategy(xcorr.Strategy(17)))
	assert.ErrorIs(t, err, xcorr.ErrUnknownStrategy)
}
