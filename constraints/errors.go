package constraints

import "errors"

// Sentinel errors for constraints construction.
var (
	// ErrDimensionMismatch indicates len(rows) != height or len(columns) != width.
	ErrDimensionMismatch = errors.New("constraints: dimension mismatch")

	// ErrLineTooShort indicates a block list whose minimum required length
	// (sum of blocks plus one separator between each pair) exceeds the line.
	ErrLineTooShort = errors.New("constraints: line too short for its blocks")

	// ErrNegativeBlock indicates a block length of zero or less.
	ErrNegativeBlock = errors.New("constraints: block length must be positive")

	// ErrIndexOutOfRange indicates a row or column index outside its bounds.
	ErrIndexOutOfRange = errors.New("constraints: index out of range")
)
