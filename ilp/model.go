package ilp

// Model accumulates variables, constraints, and objective coefficients for
// one builder invocation (§4.2/§4.3). It is not bound to any backend; a
// Solver consumes a built Model via Solve.
//
// Variable identity is the integer index returned by AddVar (§9 Indexing:
// "a reimplementation should carry integer indices into dense arrays").
// Each Var also stores its textual name, set once at AddVar time, which
// solution writers use as the output key.
type Model struct {
	Minimize bool
	Vars     []Var
	Cons     []Constraint
	Obj      []float64 // Obj[i] is the objective coefficient of Vars[i]
}

// NewModel returns an empty minimization model (the arrangement engine
// never maximizes).
func NewModel() *Model {
	return &Model{Minimize: true}
}

// AddVar appends a variable and its matching zero objective coefficient,
// returning its index.
func (m *Model) AddVar(name string, lower, upper float64, integer bool) (int, error) {
	if lower > upper {
		return 0, ErrBadBounds
	}
	idx := len(m.Vars)
	m.Vars = append(m.Vars, Var{Name: name, Lower: lower, Upper: upper, Integer: integer})
	m.Obj = append(m.Obj, 0)

	return idx, nil
}

// SetObjCoeff sets the objective coefficient of variable idx.
func (m *Model) SetObjCoeff(idx int, coeff float64) error {
	if idx < 0 || idx >= len(m.Vars) {
		return ErrUnknownVar
	}
	m.Obj[idx] = coeff

	return nil
}

// AddConstraint appends a sparse linear constraint, validating shape and
// that every referenced index exists.
func (m *Model) AddConstraint(name string, indices []int, coeffs []float64, sense Sense, rhs float64) error {
	if len(indices) == 0 || len(coeffs) == 0 {
		return ErrEmptyConstraint
	}
	if len(indices) != len(coeffs) {
		return ErrShapeMismatch
	}
	for _, idx := range indices {
		if idx < 0 || idx >= len(m.Vars) {
			return ErrUnknownVar
		}
	}
	m.Cons = append(m.Cons, Constraint{
		Name:    name,
		Indices: append([]int(nil), indices...),
		Coeffs:  append([]float64(nil), coeffs...),
		Sense:   sense,
		RHS:     rhs,
	})

	return nil
}

// NumVars returns the number of variables currently in the model.
func (m *Model) NumVars() int { return len(m.Vars) }
