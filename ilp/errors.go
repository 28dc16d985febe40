package ilp

import "errors"

var (
	// ErrUnknownVar is returned when a constraint or objective coefficient
	// references a variable index that was never added to the model.
	ErrUnknownVar = errors.New("ilp: unknown variable index")
	// ErrBadBounds is returned when a variable's lower bound exceeds its upper bound.
	ErrBadBounds = errors.New("ilp: lower bound exceeds upper bound")
	// ErrEmptyConstraint is returned when a constraint has no indices/coefficients.
	ErrEmptyConstraint = errors.New("ilp: constraint has no terms")
	// ErrShapeMismatch is returned when a constraint's Indices and Coeffs differ in length.
	ErrShapeMismatch = errors.New("ilp: indices and coefficients length mismatch")
	// ErrNotSolved is returned when Value/WriteSolution is called before a
	// successful Solve.
	ErrNotSolved = errors.New("ilp: model has not been solved")

	// InfeasibleError marks a proof that the model has no integer-feasible
	// solution. A backend may return it from Solve together with
	// StatusInfeasible. Callers distinguish it from SolverError with errors.Is.
	InfeasibleError = errors.New("ilp: integer infeasible")
)

// SolverError wraps any solver failure other than integer infeasibility,
// carrying the backend's own diagnostic message.
type SolverError struct {
	Backend string
	Message string
}

func (e *SolverError) Error() string {
	return "ilp: " + e.Backend + ": " + e.Message
}
