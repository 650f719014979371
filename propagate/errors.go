package propagate

import "errors"

// Sentinel errors for propagation.
var (
	// ErrIterationLimit indicates the pass cap (1000) was reached before a
	// fixed point. Deductions applied before the limit are preserved.
	ErrIterationLimit = errors.New("propagate: iteration limit reached")
)

const maxPasses = 1000
