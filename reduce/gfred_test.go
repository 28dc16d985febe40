package reduce_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/distance"
	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
	"github.com/katalvlaran/arrangex/matrix"
	"github.com/katalvlaran/arrangex/model"
	"github.com/katalvlaran/arrangex/reduce"
	"github.com/katalvlaran/arrangex/refsolver"
	"github.com/katalvlaran/arrangex/sizing"
	"github.com/stretchr/testify/require"
)

// stubSolver lets tests script a fixed sequence of outcomes, one per
// build-and-solve attempt, without depending on refsolver's search.
type stubSolver struct {
	status ilp.Status
	err    error
	obj    float64
}

func (s *stubSolver) Solve(ctx context.Context, m *ilp.Model) (ilp.Status, error) {
	return s.status, s.err
}
func (s *stubSolver) Value(idx int) (float64, error)  { return 0, nil }
func (s *stubSolver) Objective() (float64, error)     { return s.obj, nil }
func (s *stubSolver) WriteSolution(path string) error { return nil }

func fixtureGrid(t *testing.T, cols, rows int) ([]core.Point, []core.SubjectGroup, *core.Flows, map[string]sizing.Sizing) {
	t.Helper()

	g, err := gridspec.ParseDescriptorString(pointsSpec(cols, rows))
	require.NoError(t, err)

	points := make([]core.Point, len(g.Points))
	for i, ps := range g.Points {
		points[i] = core.Point{Name: ps.Name, X: ps.X, Y: ps.Y, Area: ps.Area}
	}

	groups := []core.SubjectGroup{
		{Name: "A", InputCapacity: 1, OutputCapacity: 1, Area: 1},
		{Name: "B", InputCapacity: 1, OutputCapacity: 1, Area: 1},
	}
	flows := core.NewFlows()
	require.NoError(t, flows.Set("A", "B", 2))

	gs := core.NewGroupSet()
	for _, group := range groups {
		require.NoError(t, gs.AddGroup(group))
	}
	sizes, err := sizing.Compute(gs, flows)
	require.NoError(t, err)

	return points, groups, flows, sizes
}

func pointsSpec(cols, rows int) string {
	// gN:HxM:WxA -> N rows, M cols, unit steps, area 10.
	return fmt.Sprintf("g%d:1x%d:1x10", rows, cols)
}

func TestGFredStabilizesAndStops(t *testing.T) {
	points, groups, flows, sizes := fixtureGrid(t, 3, 3)
	metric, err := distance.ParseMetric("m1")
	require.NoError(t, err)

	calls := 0
	objectives := []float64{10, 10} // stabilizes immediately on the 2nd attempt
	build := func(p []core.Point, g []core.SubjectGroup, fl *core.Flows, sz map[string]sizing.Sizing, dist *matrix.Dense, desc *gridspec.Descriptor, opts gridspec.Options) (*ilp.Model, error) {
		return ilp.NewModel(), nil
	}
	newSolver := func() ilp.Solver {
		obj := objectives[calls]
		calls++

		return &stubSolver{status: ilp.StatusOptimal, obj: obj}
	}

	res, err := reduce.GFred(context.Background(), build, newSolver, points, groups, flows, sizes, metric, 3, 3, gridspec.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 10.0, res.Objective)
	require.Equal(t, 2, calls, "should stop after the stabilizing second attempt, never reaching the full grid")
}

func TestGFredAbsorbsIntermediateInfeasibility(t *testing.T) {
	points, groups, flows, sizes := fixtureGrid(t, 2, 2)
	metric, err := distance.ParseMetric("m1")
	require.NoError(t, err)

	calls := 0
	build := func(p []core.Point, g []core.SubjectGroup, fl *core.Flows, sz map[string]sizing.Sizing, dist *matrix.Dense, desc *gridspec.Descriptor, opts gridspec.Options) (*ilp.Model, error) {
		return ilp.NewModel(), nil
	}
	newSolver := func() ilp.Solver {
		calls++
		if calls == 1 {
			return &stubSolver{status: ilp.StatusInfeasible, err: ilp.InfeasibleError}
		}

		return &stubSolver{status: ilp.StatusOptimal, obj: 7}
	}

	res, err := reduce.GFred(context.Background(), build, newSolver, points, groups, flows, sizes, metric, 2, 2, gridspec.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 7.0, res.Objective)
}

func TestGFredAbsorbsStatusOnlyInfeasibility(t *testing.T) {
	// A spec-compliant backend reports infeasibility via Status alone
	// (§6.3), with no error returned from Solve. GFred must absorb this
	// exactly like the sentinel-error case rather than treating it as a
	// successful attempt and failing later on Objective.
	points, groups, flows, sizes := fixtureGrid(t, 2, 2)
	metric, err := distance.ParseMetric("m1")
	require.NoError(t, err)

	calls := 0
	build := func(p []core.Point, g []core.SubjectGroup, fl *core.Flows, sz map[string]sizing.Sizing, dist *matrix.Dense, desc *gridspec.Descriptor, opts gridspec.Options) (*ilp.Model, error) {
		return ilp.NewModel(), nil
	}
	newSolver := func() ilp.Solver {
		calls++
		if calls == 1 {
			return &stubSolver{status: ilp.StatusInfeasible}
		}

		return &stubSolver{status: ilp.StatusOptimal, obj: 7}
	}

	res, err := reduce.GFred(context.Background(), build, newSolver, points, groups, flows, sizes, metric, 2, 2, gridspec.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 7.0, res.Objective)
}

func TestGFredFallsBackToFullGridWhenAllInfeasible(t *testing.T) {
	points, groups, flows, sizes := fixtureGrid(t, 2, 2)
	metric, err := distance.ParseMetric("m1")
	require.NoError(t, err)

	build := func(p []core.Point, g []core.SubjectGroup, fl *core.Flows, sz map[string]sizing.Sizing, dist *matrix.Dense, desc *gridspec.Descriptor, opts gridspec.Options) (*ilp.Model, error) {
		return ilp.NewModel(), nil
	}
	newSolver := func() ilp.Solver {
		return &stubSolver{status: ilp.StatusInfeasible, err: ilp.InfeasibleError}
	}

	_, err = reduce.GFred(context.Background(), build, newSolver, points, groups, flows, sizes, metric, 2, 2, gridspec.DefaultOptions())
	require.ErrorIs(t, err, ilp.InfeasibleError)
}

func TestGFredEndToEndWithCompressedBuilderAndRefsolver(t *testing.T) {
	points, groups, flows, sizes := fixtureGrid(t, 2, 2)
	metric, err := distance.ParseMetric("m1")
	require.NoError(t, err)

	newSolver := func() ilp.Solver { return refsolver.NewSolver(refsolver.DefaultOptions()) }

	res, err := reduce.GFred(context.Background(), model.BuildCompressed, newSolver, points, groups, flows, sizes, metric, 2, 2, gridspec.DefaultOptions())
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Objective, 0.0)
}
