package reduce

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/distance"
	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
	"github.com/katalvlaran/arrangex/matrix"
	"github.com/katalvlaran/arrangex/sizing"
)

// stabilizationEps is the tolerance for "J_prev = J_curr" (§4.5 step 4):
// solver incumbents carry floating-point rounding, so exact equality
// would rarely trigger stabilization in practice.
const stabilizationEps = 1e-6

// Builder is the subset of model.Build's signature GFred needs: anything
// that turns one point/group/flow instance into an ilp.Model. Both
// model.BuildCompressed and model.BuildPerSubject have exactly this
// signature and can be passed as a Builder directly.
type Builder func(points []core.Point, groups []core.SubjectGroup, flows *core.Flows, sizes map[string]sizing.Sizing, dist *matrix.Dense, desc *gridspec.Descriptor, gridOpts gridspec.Options) (*ilp.Model, error)

// SolverFactory returns a fresh ilp.Solver for one build-and-solve
// attempt. GFred takes a factory rather than a single Solver because nothing
// in the ilp.Solver contract guarantees an implementation is safe to reuse
// across independent models.
type SolverFactory func() ilp.Solver

// Result is GFred's final answer: the stabilized objective plus the model
// and solver that produced it, so the caller can still query Value/
// WriteSolution.
type Result struct {
	Objective float64
	Model     *ilp.Model
	Solver    ilp.Solver
	Cols, Rows int
	// Attempts is the number of sub-grid build-and-solve attempts GFred
	// made (including absorbed infeasible ones) before stabilizing or
	// falling back to the full grid.
	Attempts int
	// FellBack is true when every reduced sub-grid attempt was infeasible
	// and GFred had to solve the full (cols, rows) grid directly.
	FellBack bool
}

// GFred runs the cascade of §4.5 over a full (cols, rows) grid. points
// must be named by gridspec's "(x,y)" convention and ordered by the
// loader's insertion order; groups, flows, and sizes are passed through to
// build unchanged at every step.
//
// A StatusFeasible incumbent (for example one returned when a solver's soft
// time limit fires) counts as that step's objective just like a proven
// optimum, so the sequence of objectives is not guaranteed to be
// non-increasing and the cascade may stop on an incumbent.
func GFred(
	ctx context.Context,
	build Builder,
	newSolver SolverFactory,
	points []core.Point,
	groups []core.SubjectGroup,
	flows *core.Flows,
	sizes map[string]sizing.Sizing,
	metric distance.Metric,
	cols, rows int,
	gridOpts gridspec.Options,
) (Result, error) {
	c, r := 1, 1
	var jPrev, jCurr *float64
	var lastModel *ilp.Model
	var lastSolver ilp.Solver
	var lastC, lastR int
	attempts := 0

	for !(c >= cols && r >= rows) {
		res, attempted, err := attempt(ctx, build, newSolver, points, groups, flows, sizes, metric, c, r, gridOpts)
		if err != nil {
			return Result{}, err
		}
		attempts++
		if attempted {
			jPrev, jCurr = jCurr, &res.Objective
			lastModel, lastSolver, lastC, lastR = res.Model, res.Solver, c, r
			if jPrev != nil && floatsEqual(*jPrev, *jCurr) {
				break
			}
		}

		if c < cols {
			c++
		}
		if r < rows {
			r++
		}
	}

	fellBack := false
	if jCurr == nil {
		res, attempted, err := attempt(ctx, build, newSolver, points, groups, flows, sizes, metric, cols, rows, gridOpts)
		if err != nil {
			return Result{}, err
		}
		attempts++
		if !attempted {
			return Result{}, ilp.InfeasibleError
		}
		jCurr = &res.Objective
		lastModel, lastSolver, lastC, lastR = res.Model, res.Solver, cols, rows
		fellBack = true
	}

	return Result{Objective: *jCurr, Model: lastModel, Solver: lastSolver, Cols: lastC, Rows: lastR, Attempts: attempts, FellBack: fellBack}, nil
}

// attempt builds and solves one (c,r) sub-grid. attempted is false only
// when the solver proved infeasibility (§4.5 step 3: absorbed, not an
// error); any other error propagates to the caller.
func attempt(
	ctx context.Context,
	build Builder,
	newSolver SolverFactory,
	points []core.Point,
	groups []core.SubjectGroup,
	flows *core.Flows,
	sizes map[string]sizing.Sizing,
	metric distance.Metric,
	c, r int,
	gridOpts gridspec.Options,
) (Result, bool, error) {
	sub, err := subGrid(points, c, r)
	if err != nil {
		return Result{}, false, err
	}

	dist, err := distance.Compute(sub, metric)
	if err != nil {
		return Result{}, false, err
	}

	desc := gridspec.Descriptor{Cols: c, Rows: r, Anchor: gridspec.AnchorExact}
	m, err := build(sub, groups, flows, sizes, dist, &desc, gridOpts)
	if err != nil {
		return Result{}, false, err
	}

	solver := newSolver()
	status, err := solver.Solve(ctx, m)
	if status == ilp.StatusInfeasible || errors.Is(err, ilp.InfeasibleError) {
		return Result{}, false, nil
	}
	if err != nil {
		return Result{}, false, err
	}

	obj, err := solver.Objective()
	if err != nil {
		return Result{}, false, fmt.Errorf("reduce: sub-grid (%d,%d): %w", c, r, err)
	}

	return Result{Objective: obj, Model: m, Solver: solver}, true, nil
}

func floatsEqual(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}

	return d <= stabilizationEps
}
