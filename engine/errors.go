package engine

import "errors"

// ErrMissingDescriptor is returned when cascade reduction is enabled but
// the input facility carries no grid Descriptor (GFred needs (x,y)-named
// points on a known (cols, rows) grid to grow sub-grids).
var ErrMissingDescriptor = errors.New("engine: cascade reduction requires a grid descriptor")

// ErrNilInput is returned when ArrangeInput is missing a required field.
var ErrNilInput = errors.New("engine: input is missing a required field")
