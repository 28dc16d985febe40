package core

import "errors"

var (
	// ErrDuplicateName is returned when adding a Point, SubjectGroup, or
	// flow entry whose name/key already exists in the registry.
	ErrDuplicateName = errors.New("core: duplicate name")
	// ErrUnknownName is returned when a lookup or flow reference names a
	// Point or SubjectGroup that was never added.
	ErrUnknownName = errors.New("core: unknown name")
	// ErrNegativeArea is returned when a Point or SubjectGroup area is not positive.
	ErrNegativeArea = errors.New("core: area must be positive")
	// ErrNegativeCapacity is returned when a SubjectGroup capacity is negative.
	ErrNegativeCapacity = errors.New("core: capacity must be non-negative")
	// ErrNegativeFlow is returned when a flow demand is negative.
	ErrNegativeFlow = errors.New("core: flow demand must be non-negative")
)
