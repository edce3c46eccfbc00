package point

import "errors"

// Sentinel errors for point and set construction and arithmetic.
// Callers match them with errors.Is; messages may carry extra context
// wrapped around the sentinel.
var (
	// ErrDimensionMismatch indicates operands (or set members) of differing
	// coordinate dimensionality. Always a caller error.
	ErrDimensionMismatch = errors.New("point: dimension mismatch")

	// ErrInvalidInput indicates malformed coordinates: no components at all,
	// a NaN/±Inf component, or a set whose extent overflows float64.
	ErrInvalidInput = errors.New("point: invalid coordinates")

	// ErrOutOfRange indicates a set index outside [0, Len()).
	ErrOutOfRange = errors.New("point: index out of range")
)
