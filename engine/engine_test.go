package engine_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arrangex/bundle"
	"github.com/katalvlaran/arrangex/config"
	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/engine"
	"github.com/katalvlaran/arrangex/model"
)

func twoByTwoInput(t *testing.T) engine.ArrangeInput {
	t.Helper()

	fac, desc, err := bundle.DecodeGridFacility("g2:1x2:1x10", false)
	require.NoError(t, err)

	groups := core.NewGroupSet()
	require.NoError(t, groups.AddGroup(core.SubjectGroup{Name: "A", InputCapacity: 0, OutputCapacity: 5, Area: 2}))
	require.NoError(t, groups.AddGroup(core.SubjectGroup{Name: "B", InputCapacity: 5, OutputCapacity: 0, Area: 2}))

	flows := core.NewFlows()
	require.NoError(t, flows.Set("A", "B", 5))

	return engine.ArrangeInput{Facility: fac, Groups: groups, Flows: flows, Descriptor: desc}
}

func TestArrangeDirectSolvesTrivialGrid(t *testing.T) {
	input := twoByTwoInput(t)
	outputPath := filepath.Join(t.TempDir(), "solution.json")

	res, err := engine.Arrange(context.Background(), input, engine.WithOutputPath(outputPath))
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Objective, 0.0)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func TestArrangeDirectWithPerSubjectVariant(t *testing.T) {
	input := twoByTwoInput(t)
	outputPath := filepath.Join(t.TempDir(), "solution.json")

	res, err := engine.Arrange(context.Background(), input, engine.WithVariant(model.PerSubject), engine.WithOutputPath(outputPath))
	require.NoError(t, err)
	require.NotNil(t, res.Model)
}

func TestArrangeCascadeRequiresDescriptor(t *testing.T) {
	input := twoByTwoInput(t)
	input.Descriptor = nil
	outputPath := filepath.Join(t.TempDir(), "solution.json")

	_, err := engine.Arrange(context.Background(), input, engine.WithCascade(true), engine.WithOutputPath(outputPath))
	require.ErrorIs(t, err, engine.ErrMissingDescriptor)
}

func TestArrangeCascadeSolvesGrid(t *testing.T) {
	input := twoByTwoInput(t)
	outputPath := filepath.Join(t.TempDir(), "solution.json")

	res, err := engine.Arrange(context.Background(), input, engine.WithCascade(true), engine.WithOutputPath(outputPath))
	require.NoError(t, err)
	require.GreaterOrEqual(t, res.Objective, 0.0)
}

func TestArrangeRejectsMissingInput(t *testing.T) {
	_, err := engine.Arrange(context.Background(), engine.ArrangeInput{})
	require.ErrorIs(t, err, engine.ErrNilInput)
}

func TestArrangeWritesSVGWhenConfigured(t *testing.T) {
	input := twoByTwoInput(t)
	dir := t.TempDir()

	_, err := engine.Arrange(context.Background(), input,
		engine.WithOutputPath(filepath.Join(dir, "solution.json")),
		engine.WithSVGPath(filepath.Join(dir, "plan.svg")),
	)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "plan.svg"))
	require.NoError(t, err)
	require.Contains(t, string(data), "<svg")
}

func TestArrangeWithConfigLoadedFromYAML(t *testing.T) {
	input := twoByTwoInput(t)
	dir := t.TempDir()

	cfg, err := config.LoadConfigFromBytes([]byte("variant: per_subject\nmetric: m1\n"))
	require.NoError(t, err)
	cfg.OutputPath = filepath.Join(dir, "solution.json")

	res, err := engine.Arrange(context.Background(), input, engine.WithConfig(*cfg))
	require.NoError(t, err)
	require.NotNil(t, res.Model)
}
