package ilp

import "context"

// Solver is the black-box MIP solver of §6.3. Implementations own whatever
// native model object they need internally; Solve consumes a *Model built
// by one of the package model builders.
//
// Contract:
//   - Solve is synchronous and may block for arbitrary time; ctx carries a
//     soft deadline (§5). When the deadline fires, a well-behaved backend
//     returns StatusFeasible with its best incumbent rather than an error.
//   - Values are only meaningful after Solve returns StatusOptimal or
//     StatusFeasible; callers must check Status first.
//   - WriteSolution renders whatever textual format the backend emits,
//     keyed by variable name (§6.4); it is best-effort and distinct from
//     solver failure.
type Solver interface {
	// Solve runs the search and returns the resulting status. Infeasibility
	// is always reported as StatusInfeasible; a backend may also return
	// InfeasibleError alongside it (refsolver does), so callers test the
	// Status rather than relying on the error. Any other non-nil error is a
	// backend failure unrelated to feasibility (StatusError).
	Solve(ctx context.Context, model *Model) (Status, error)
	// Value returns the solved value of variable idx. Returns ErrNotSolved
	// if called before a Solve call that reached StatusOptimal/StatusFeasible.
	Value(idx int) (float64, error)
	// Objective returns the solved objective value.
	Objective() (float64, error)
	// WriteSolution writes variable_name -> value pairs to path.
	WriteSolution(path string) error
}
