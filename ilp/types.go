package ilp

// Sense is the relational operator of a linear constraint.
type Sense int

const (
	// LE is "≤".
	LE Sense = iota
	// GE is "≥".
	GE
	// EQ is "=".
	EQ
)

// Status is the outcome of a solve attempt.
type Status int

const (
	// StatusUnsolved is the zero value: Solve has not been called yet.
	StatusUnsolved Status = iota
	// StatusOptimal means the solver found and proved an optimal integer solution.
	StatusOptimal
	// StatusFeasible means the solver returned an incumbent without proving
	// optimality (e.g., a soft time limit fired).
	StatusFeasible
	// StatusInfeasible means the solver proved no integer-feasible solution exists.
	StatusInfeasible
	// StatusError means the backend failed for a reason unrelated to feasibility.
	StatusError
)

// Var describes one decision variable: bounds and integrality. All
// variables the arrangement engine emits are integers; Upper may be
// +Inf-free (i.e., a finite bound is always supplied, per §4.2/§4.3).
type Var struct {
	Name    string
	Lower   float64
	Upper   float64
	Integer bool
}

// Constraint is a sparse linear row: Σ Coeffs[k]·x[Indices[k]] Sense RHS.
type Constraint struct {
	Name    string
	Indices []int
	Coeffs  []float64
	Sense   Sense
	RHS     float64
}
