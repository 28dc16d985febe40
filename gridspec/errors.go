package gridspec

import "errors"

// Sentinel errors for gridspec operations.
var (
	// ErrInvalidDescriptor indicates cols, rows, or a step/area value was not positive.
	ErrInvalidDescriptor = errors.New("gridspec: cols, rows, and steps must be positive")
	// ErrInvalidAnchor indicates anchor was neither 0 nor 1.
	ErrInvalidAnchor = errors.New("gridspec: anchor must be 0 or 1")
	// ErrPointNotOnGrid indicates a point name did not parse as "(x,y)" within bounds.
	ErrPointNotOnGrid = errors.New("gridspec: point is not on the declared grid")
)
