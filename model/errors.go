package model

import "errors"

// ErrEmptyInstance is returned when groups or points is empty: no builder
// can construct a meaningful model without at least one of each.
var ErrEmptyInstance = errors.New("model: groups and points must both be non-empty")
