// Package config holds the xcoffset command-line configuration and the
// precedence rules that merge flags, environment and the config file.
package config

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cwbudde/algo-align/dsp/offset"
	"github.com/cwbudde/algo-align/dsp/window"
	"github.com/cwbudde/algo-align/dsp/xcorr"
	"github.com/cwbudde/algo-align/internal/logging"
	"github.com/cwbudde/algo-align/internal/report"
	"github.com/cwbudde/algo-align/internal/samples"
)

// DefaultIncrement is the difference-scan slide distance.
const DefaultIncrement = 1.0

// Config holds CLI configuration for xcoffset.
type Config struct {
	Method string
	Format string
	Sample string

	Taper      string
	TukeyAlpha float64
	Normalize  bool

	ShowCorrelation bool
	ShowDatasets    bool
	Increment       float64

	LogLevel  string
	LogFormat string

	Watch    bool
	Debounce time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Method:     xcorr.StrategyAuto.String(),
		Format:     string(report.FormatText),
		Sample:     samples.Default,
		Taper:      window.TypeRectangular.String(),
		TukeyAlpha: window.DefaultTukeyAlpha,
		Increment:  DefaultIncrement,
		LogLevel:   "info",
		LogFormat:  string(logging.FormatConsole),
		Debounce:   250 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := c.Strategy(); err != nil {
		return err
	}
	if _, err := c.ReportFormat(); err != nil {
		return err
	}
	if _, err := c.TaperType(); err != nil {
		return err
	}
	if c.TukeyAlpha < 0 || c.TukeyAlpha > 1 {
		return fmt.Errorf("tukey-alpha must be within [0, 1], got %v", c.TukeyAlpha)
	}
	if !(c.Increment > 0) {
		return fmt.Errorf("increment must be positive")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch logging.Format(c.LogFormat) {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Watch && c.Debounce <= 0 {
		return fmt.Errorf("debounce must be positive")
	}
	return nil
}

// Strategy parses Method.
func (c *Config) Strategy() (xcorr.Strategy, error) {
	return xcorr.ParseStrategy(c.Method)
}

// ReportFormat parses Format.
func (c *Config) ReportFormat() (report.Format, error) {
	return report.ParseFormat(c.Format)
}

// TaperType parses Taper.
func (c *Config) TaperType() (window.Type, error) {
	return window.ParseType(c.Taper)
}

// AlignOptions translates the configuration into offset.Align options.
func (c *Config) AlignOptions() ([]offset.Option, error) {
	s, err := c.Strategy()
	if err != nil {
		return nil, err
	}
	t, err := c.TaperType()
	if err != nil {
		return nil, err
	}

	opts := []offset.Option{
		offset.WithStrategy(s),
		offset.WithTaper(t, window.WithAlpha(c.TukeyAlpha)),
	}
	if c.Normalize {
		opts = append(opts, offset.WithNormalize())
	}
	return opts, nil
}

// configSetter applies values only when the corresponding flag was not set
// explicitly.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value from a pointer if not nil and flag not changed.
func (s *configSetter) setFloat(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool with strconv.ParseBool and sets
// the destination.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = b
	return nil
}
