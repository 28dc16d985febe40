package refsolver

import "errors"

// ErrUnboundedVar is returned when a model variable carries an infinite
// bound: BnB search requires a finite domain to enumerate.
var ErrUnboundedVar = errors.New("refsolver: variable has a non-finite bound")
