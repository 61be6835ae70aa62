package offset

import (
	"fmt"

	"github.com/cwbudde/algo-align/dsp/series"
	"github.com/cwbudde/algo-align/dsp/window"
	"github.com/cwbudde/algo-align/dsp/xcorr"
)

// Alignment bundles an estimate with the correlation it came from.
type Alignment struct {
	Result      `yaml:",inline"`
	Correlation []float64      `json:"correlation,omitempty" yaml:"correlation,omitempty"`
	Strategy    xcorr.Strategy `json:"strategy" yaml:"strategy"`
}

// Adjusted returns d shifted by -Offset, i.e. dataset 2 overlaid on dataset 1.
func (a Alignment) Adjusted(d series.Dataset) series.Dataset {
	return d.Shift(-a.Offset)
}

// Option configures Align.
type Option func(*config)

type config struct {
	strategy  xcorr.Strategy
	taper     window.Type
	taperOpts []window.Option
	normalize bool
}

func defaultConfig() config {
	return config{
		strategy: xcorr.StrategyAuto,
		taper:    window.TypeRectangular,
	}
}

// WithStrategy selects the correlation strategy. The default is StrategyAuto.
func WithStrategy(s xcorr.Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithTaper windows copies of both sample sequences before correlating.
// The window options (for example window.WithAlpha) are passed through.
func WithTaper(t window.Type, opts ...window.Option) Option {
	return func(c *config) {
		c.taper = t
		c.taperOpts = opts
	}
}

// WithNormalize scales the correlation by the product of the sample norms.
// The peak location is unchanged; MaxValue becomes a coefficient in [-1, 1].
func WithNormalize() Option {
	return func(c *config) {
		c.normalize = true
	}
}

// Align correlates the samples of d1 against those of d2 and estimates the
// offset that maps d2 onto d1.
func Align(d1, d2 series.Dataset, opts ...Option) (Alignment, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := d1.Validate(); err != nil {
		return Alignment{}, err
	}
	if err := d2.Validate(); err != nil {
		return Alignment{}, err
	}

	y1 := window.Tapered(cfg.taper, d1.Y, cfg.taperOpts...)
	y2 := window.Tapered(cfg.taper, d2.Y, cfg.taperOpts...)

	strategy := cfg.strategy.Resolve(len(y1), len(y2))

	var (
		corr []float64
		err  error
	)
	if cfg.normalize {
		corr, err = xcorr.Normalized(y1, y2, strategy)
	} else {
		corr, err = xcorr.Correlate(y1, y2, strategy)
	}
	if err != nil {
		return Alignment{}, fmt.Errorf("offset: correlate: %w", err)
	}

	res, err := Estimate(d1.X, d2.X, corr)
	if err != nil {
		return Alignment{}, err
	}

	return Alignment{Result: res, Correlation: corr, Strategy: strategy}, nil
}
