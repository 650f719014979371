package linesolve

import "errors"

// Sentinel errors for line solving.
var (
	// ErrInfeasibleLine indicates no placement of the constraint's blocks is
	// consistent with the line's current state.
	ErrInfeasibleLine = errors.New("linesolve: no valid completion for this line")
)
