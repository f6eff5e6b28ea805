package percentiles

import "errors"

var (
	// ErrInsufficientData is returned by Resolve when a group has too few samples.
	ErrInsufficientData = errors.New("insufficient data")
	ErrLengthMismatch   = errors.New("values and weights length mismatch")
	ErrUnknownStrategy  = errors.New("unknown percentile strategy")
	ErrInvalidSketch    = errors.New("invalid sketch configuration")
)
