package refsolver

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/arrangex/ilp"
)

// Options configures a Solver (mirrors the shape of the teacher's
// tsp.Options: explicit fields, no functional options, a single time
// budget plus a numerical tolerance).
type Options struct {
	// TimeLimit is a soft deadline: once exceeded, Solve returns the best
	// incumbent found so far with StatusFeasible rather than an error. Zero
	// means unbounded search.
	TimeLimit time.Duration
	// Eps is the numerical tolerance used when comparing costs and
	// constraint bounds.
	Eps float64
}

// DefaultOptions returns the unbounded-search configuration with a 1e-9
// numerical tolerance.
func DefaultOptions() Options {
	return Options{TimeLimit: 0, Eps: 1e-9}
}

// Solver is the exact Branch-and-Bound ilp.Solver backend. It is meant for
// validating builders and for small-to-moderate reduced sub-grids (see
// reduce.GFred); it is not a substitute for a production MIP solver on
// large instances.
type Solver struct {
	opts Options

	model      *ilp.Model
	status     ilp.Status
	bestAssign []float64
	bestCost   float64
	solved     bool
}

// NewSolver returns a Solver configured by opts.
func NewSolver(opts Options) *Solver {
	return &Solver{opts: opts}
}

// Solve runs the search to completion, to the soft deadline, or to ctx
// cancellation, whichever comes first.
func (s *Solver) Solve(ctx context.Context, model *ilp.Model) (ilp.Status, error) {
	s.model = model
	s.solved = false

	n := model.NumVars()
	for i, v := range model.Vars {
		if v.Lower == negInf || v.Upper == posInf {
			return ilp.StatusError, fmt.Errorf("refsolver: var %d (%s): %w", i, v.Name, ErrUnboundedVar)
		}
	}

	e := &bnbEngine{
		model:    model,
		n:        n,
		assigned: make([]bool, n),
		assign:   make([]float64, n),
		bestCost: posInf,
		eps:      s.opts.Eps,
	}
	if s.opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(s.opts.TimeLimit)
	}
	e.ctx = ctx
	e.varCons = buildVarConstraintIndex(model)

	e.search(0, 0)

	timedOut := e.useDeadline && time.Now().After(e.deadline)
	cancelled := ctx.Err() != nil

	switch {
	case e.foundAny && (timedOut || cancelled):
		s.status = ilp.StatusFeasible
	case e.foundAny:
		s.status = ilp.StatusOptimal
	case timedOut || cancelled:
		s.status = ilp.StatusError
		return s.status, fmt.Errorf("refsolver: search did not find a feasible solution before the deadline")
	default:
		s.status = ilp.StatusInfeasible
		return s.status, ilp.InfeasibleError
	}

	s.bestAssign = e.bestAssign
	s.bestCost = e.bestCost
	s.solved = true

	return s.status, nil
}

// Value returns the incumbent value of variable idx.
func (s *Solver) Value(idx int) (float64, error) {
	if !s.solved {
		return 0, ilp.ErrNotSolved
	}
	if idx < 0 || idx >= len(s.bestAssign) {
		return 0, ilp.ErrUnknownVar
	}

	return s.bestAssign[idx], nil
}

// Objective returns the incumbent's objective value.
func (s *Solver) Objective() (float64, error) {
	if !s.solved {
		return 0, ilp.ErrNotSolved
	}

	return s.bestCost, nil
}

// WriteSolution writes the incumbent as a JSON object of variable name to
// value, following the corpus's MarshalIndent-then-WriteFile convention.
func (s *Solver) WriteSolution(path string) error {
	if !s.solved {
		return ilp.ErrNotSolved
	}

	return writeSolutionFile(path, s.model, s.bestAssign)
}
