package xcorr

import (
	"fmt"
	"strings"
)

// Strategy selects how the correlation sum is evaluated.
type Strategy int

const (
	// StrategyAuto picks Direct or FFT from the input sizes.
	StrategyAuto Strategy = iota

	// StrategyDirect evaluates the sum by nested iteration.
	StrategyDirect

	// StrategyFrequency evaluates the sum through an FFT product.
	StrategyFrequency
)

// DirectWorkLimit is the largest len(a)*len(b) for which StrategyAuto still
// uses direct summation.
const DirectWorkLimit = 64 * 4096

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyAuto:
		return "auto"
	case StrategyDirect:
		return "direct"
	case StrategyFrequency:
		return "fft"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "auto", "direct", "fft" or "frequency" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return StrategyAuto, nil
	case "direct":
		return StrategyDirect, nil
	case "fft", "frequency":
		return StrategyFrequency, nil
	default:
		return StrategyAuto, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Choose resolves StrategyAuto for inputs of length n and m.
func Choose(n, m int) Strategy {
	if n*m > DirectWorkLimit {
		return StrategyFrequency
	}
	return StrategyDirect
}

// Resolve returns s, or the size-based choice when s is StrategyAuto.
func (s Strategy) Resolve(n, m int) Strategy {
	if s == StrategyAuto {
		return Choose(n, m)
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
