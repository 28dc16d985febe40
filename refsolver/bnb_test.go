package refsolver_test

import (
	"context"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/arrangex/ilp"
	"github.com/katalvlaran/arrangex/refsolver"
	"github.com/stretchr/testify/require"
)

func TestSolveFindsOptimum(t *testing.T) {
	// minimize x+2y s.t. x+y=3, 0<=x,y<=3 -> optimum x=3,y=0, cost=3.
	m := ilp.NewModel()
	x, err := m.AddVar("x", 0, 3, true)
	require.NoError(t, err)
	y, err := m.AddVar("y", 0, 3, true)
	require.NoError(t, err)
	require.NoError(t, m.SetObjCoeff(x, 1))
	require.NoError(t, m.SetObjCoeff(y, 2))
	require.NoError(t, m.AddConstraint("sum", []int{x, y}, []float64{1, 1}, ilp.EQ, 3))

	s := refsolver.NewSolver(refsolver.DefaultOptions())
	status, err := s.Solve(context.Background(), m)
	require.NoError(t, err)
	require.Equal(t, ilp.StatusOptimal, status)

	obj, err := s.Objective()
	require.NoError(t, err)
	require.InDelta(t, 3, obj, 1e-9)

	xv, err := s.Value(x)
	require.NoError(t, err)
	require.InDelta(t, 3, xv, 1e-9)
}

func TestSolveDetectsInfeasible(t *testing.T) {
	// x in [0,1], x == 2 is impossible.
	m := ilp.NewModel()
	x, err := m.AddVar("x", 0, 1, true)
	require.NoError(t, err)
	require.NoError(t, m.AddConstraint("c", []int{x}, []float64{1}, ilp.EQ, 2))

	s := refsolver.NewSolver(refsolver.DefaultOptions())
	status, err := s.Solve(context.Background(), m)
	require.ErrorIs(t, err, ilp.InfeasibleError)
	require.Equal(t, ilp.StatusInfeasible, status)
}

func TestSolveRejectsUnboundedVar(t *testing.T) {
	m := ilp.NewModel()
	_, err := m.AddVar("x", 0, math.Inf(1), true)
	require.NoError(t, err)

	s := refsolver.NewSolver(refsolver.DefaultOptions())
	_, err = s.Solve(context.Background(), m)
	require.Error(t, err)
}

func TestValueAndObjectiveBeforeSolveFail(t *testing.T) {
	s := refsolver.NewSolver(refsolver.DefaultOptions())
	_, err := s.Value(0)
	require.ErrorIs(t, err, ilp.ErrNotSolved)
	_, err = s.Objective()
	require.ErrorIs(t, err, ilp.ErrNotSolved)
}

func TestWriteSolutionFile(t *testing.T) {
	m := ilp.NewModel()
	x, err := m.AddVar("n(A)[p0]", 0, 5, true)
	require.NoError(t, err)
	require.NoError(t, m.SetObjCoeff(x, 1))
	require.NoError(t, m.AddConstraint("c", []int{x}, []float64{1}, ilp.EQ, 4))

	s := refsolver.NewSolver(refsolver.DefaultOptions())
	_, err = s.Solve(context.Background(), m)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "solution.json")
	require.NoError(t, s.WriteSolution(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var out map[string]float64
	require.NoError(t, json.Unmarshal(data, &out))
	require.InDelta(t, 4, out["n(A)[p0]"], 1e-9)
}
