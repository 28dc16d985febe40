package reduce

import "errors"

// ErrMalformedPointName is returned when a point's name does not match the
// "(x,y)" grid-index convention GFred requires to filter sub-grids.
var ErrMalformedPointName = errors.New("reduce: point name is not a grid coordinate")
