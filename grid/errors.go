package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a read or write outside [0,width)×[0,height).
	ErrOutOfBounds = errors.New("grid: position out of bounds")

	// ErrDimensionMismatch indicates a row or column slice whose length does
	// not match the grid's width or height.
	ErrDimensionMismatch = errors.New("grid: slice length does not match grid dimension")

	// ErrNonEmptyOverwrite indicates an attempt to change a cell that already
	// holds a different non-Empty state. Callers must never let this happen.
	ErrNonEmptyOverwrite = errors.New("grid: cannot overwrite a proven cell with a different state")
)
