package emit_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/emit"
	"github.com/katalvlaran/arrangex/ilp"
)

// fakeSolver answers Value deterministically from a fixed slice, enough to
// exercise emission without running a real search.
type fakeSolver struct {
	values []float64
}

func (f *fakeSolver) Solve(ctx context.Context, m *ilp.Model) (ilp.Status, error) {
	return ilp.StatusOptimal, nil
}
func (f *fakeSolver) Value(idx int) (float64, error) { return f.values[idx], nil }
func (f *fakeSolver) Objective() (float64, error)    { return 0, nil }
func (f *fakeSolver) WriteSolution(path string) error { return nil }

func twoVarModel(t *testing.T) (*ilp.Model, *fakeSolver) {
	t.Helper()

	m := ilp.NewModel()
	_, err := m.AddVar("n(A)[(0,0)]", 0, 1, true)
	require.NoError(t, err)
	_, err = m.AddVar("n(B)[(1,0)]", 0, 1, true)
	require.NoError(t, err)

	return m, &fakeSolver{values: []float64{1, 1}}
}

func TestSolutionWritesNameValuePairs(t *testing.T) {
	m, solver := twoVarModel(t)
	path := filepath.Join(t.TempDir(), "out.json")

	err := emit.Solution(m, solver, ilp.StatusOptimal, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "n(A)[(0,0)]")
	require.Contains(t, string(data), "n(B)[(1,0)]")
}

func TestSolutionReturnsInfeasibleWithoutWriting(t *testing.T) {
	m, solver := twoVarModel(t)
	path := filepath.Join(t.TempDir(), "out.json")

	err := emit.Solution(m, solver, ilp.StatusInfeasible, path)
	require.ErrorIs(t, err, ilp.InfeasibleError)
	require.True(t, emit.IsInfeasible(err))

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

func TestSolutionRejectsEmptyModel(t *testing.T) {
	m := ilp.NewModel()
	err := emit.Solution(m, &fakeSolver{}, ilp.StatusOptimal, filepath.Join(t.TempDir(), "out.json"))
	require.ErrorIs(t, err, emit.ErrNothingToWrite)
}

func TestRenderSVGProducesDocumentWithGroupsAndFlow(t *testing.T) {
	m, solver := twoVarModel(t)

	points := []core.Point{
		{Name: "(0,0)", X: 0, Y: 0, Area: 10},
		{Name: "(1,0)", X: 1, Y: 0, Area: 10},
	}
	groups := []core.SubjectGroup{
		{Name: "A", InputCapacity: 0, OutputCapacity: 5, Area: 2},
		{Name: "B", InputCapacity: 5, OutputCapacity: 0, Area: 2},
	}
	flows := core.NewFlows()
	require.NoError(t, flows.Set("A", "B", 5))

	data, err := emit.RenderSVG(points, groups, flows, m, solver, emit.DefaultSVGOptions())
	require.NoError(t, err)

	svgText := string(data)
	require.True(t, strings.Contains(svgText, "<svg"))
	require.True(t, strings.Contains(svgText, "</svg>"))
	require.Contains(t, svgText, "Arrangement")
	require.Contains(t, svgText, "opacity:0.9") // group circle style
	require.Contains(t, svgText, "<line")       // A->B flow between (0,0) and (1,0)
}

func TestRenderSVGRejectsEmptyPoints(t *testing.T) {
	m, solver := twoVarModel(t)
	_, err := emit.RenderSVG(nil, nil, nil, m, solver, emit.DefaultSVGOptions())
	require.ErrorIs(t, err, emit.ErrNothingToWrite)
}
