package window

import (
	"fmt"

	"github.com/cwbudde/algo-align/dsp/core"
)

// ErrUnknownType is returned by ParseType for names it does not recognise.
var ErrUnknownType = fmt.Errorf("window: unknown type: %w", core.ErrInvalidInput)
