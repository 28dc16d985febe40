package engine

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/arrangex/config"
	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/distance"
	"github.com/katalvlaran/arrangex/emit"
	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
	"github.com/katalvlaran/arrangex/matrix"
	"github.com/katalvlaran/arrangex/metrics"
	"github.com/katalvlaran/arrangex/model"
	"github.com/katalvlaran/arrangex/reduce"
	"github.com/katalvlaran/arrangex/refsolver"
	"github.com/katalvlaran/arrangex/sizing"
)

// ArrangeInput is the decoded instance to arrange: a facility's candidate
// locations, the subject groups demanding space, and the material flow
// between them. Descriptor is non-nil only when Facility was generated
// (or loaded) as a regular grid, which cascade reduction requires.
type ArrangeInput struct {
	Facility   *core.Facility
	Groups     *core.GroupSet
	Flows      *core.Flows
	Descriptor *gridspec.Descriptor
}

// Result is one completed arrangement: the terminal solver status, its
// objective, and the model/solver pair so the caller can still inspect
// individual variable values.
type Result struct {
	Status    ilp.Status
	Objective float64
	Model     *ilp.Model
	Solver    ilp.Solver
}

// settings is Arrange's fully-resolved configuration, assembled by
// folding opts over config.DefaultConfig() (mirrors tsp.Options: one
// struct with a Default constructor, mutated field-by-field by
// functional options rather than threaded as separate parameters).
type settings struct {
	variant       model.Variant
	metric        string
	cascade       bool
	gridOpts      gridspec.Options
	solverOpts    refsolver.Options
	solverFactory reduce.SolverFactory
	outputPath    string
	svgPath       string
}

// Option customizes one Arrange call.
type Option func(*settings)

// WithConfig seeds every setting from a loaded config.Config, e.g. one
// read from YAML via config.LoadConfig. Apply it before any other Option
// so later options can still override individual fields.
func WithConfig(cfg config.Config) Option {
	return func(s *settings) {
		s.variant = cfg.ModelVariant()
		s.metric = cfg.Metric
		s.cascade = cfg.Cascade
		s.gridOpts = cfg.GridOptions()
		s.solverOpts = cfg.SolverOptions()
		s.outputPath = cfg.OutputPath
		s.svgPath = cfg.SVGPath
	}
}

// WithVariant selects the MIP encoding.
func WithVariant(v model.Variant) Option { return func(s *settings) { s.variant = v } }

// WithMetric selects the Minkowski distance family member (e.g. "m1", "moo").
func WithMetric(m string) Option { return func(s *settings) { s.metric = m } }

// WithCascade enables or disables the GFred sub-grid growth reduction.
func WithCascade(enabled bool) Option { return func(s *settings) { s.cascade = enabled } }

// WithGridOptions tunes grid symmetry-breaking constraint emission.
func WithGridOptions(opts gridspec.Options) Option { return func(s *settings) { s.gridOpts = opts } }

// WithSolverOptions tunes the default reference branch-and-bound backend.
func WithSolverOptions(opts refsolver.Options) Option {
	return func(s *settings) { s.solverOpts = opts }
}

// WithSolverFactory overrides the default reference branch-and-bound
// backend entirely, e.g. to inject a stub in tests or a faster backend in
// production. Takes precedence over WithSolverOptions.
func WithSolverFactory(f reduce.SolverFactory) Option {
	return func(s *settings) { s.solverFactory = f }
}

// WithOutputPath overrides where the solved assignment is written.
func WithOutputPath(path string) Option { return func(s *settings) { s.outputPath = path } }

// WithSVGPath sets where the floor-plan preview is written; empty skips it.
func WithSVGPath(path string) Option { return func(s *settings) { s.svgPath = path } }

func defaultSettings() settings {
	cfg := config.DefaultConfig()

	return settings{
		variant:    cfg.ModelVariant(),
		metric:     cfg.Metric,
		cascade:    cfg.Cascade,
		gridOpts:   cfg.GridOptions(),
		solverOpts: cfg.SolverOptions(),
		outputPath: cfg.OutputPath,
		svgPath:    cfg.SVGPath,
	}
}

// Arrange validates input, derives sizing and pairwise distance, builds
// the model selected by the resolved variant, solves it directly or via
// the GFred cascade reduction, and writes the solved assignment (and, if
// an SVG path was set, a floor-plan preview) to disk.
//
// Mirrors the validate-then-dispatch shape of tsp.SolveWithMatrix: one
// stage of input validation followed by a switch over the requested
// strategy.
func Arrange(ctx context.Context, input ArrangeInput, opts ...Option) (Result, error) {
	if input.Facility == nil || input.Groups == nil || input.Flows == nil {
		return Result{}, ErrNilInput
	}

	st := defaultSettings()
	for _, opt := range opts {
		opt(&st)
	}
	if st.solverFactory == nil {
		solverOpts := st.solverOpts
		st.solverFactory = func() ilp.Solver { return refsolver.NewSolver(solverOpts) }
	}

	sizes, err := sizing.Compute(input.Groups, input.Flows)
	if err != nil {
		return Result{}, fmt.Errorf("engine: sizing: %w", err)
	}

	metricVal, err := distance.ParseMetric(st.metric)
	if err != nil {
		return Result{}, fmt.Errorf("engine: metric: %w", err)
	}

	points := input.Facility.Points()
	groups := input.Groups.Groups()

	start := time.Now()
	var res Result
	if st.cascade {
		res, err = arrangeCascade(ctx, input, points, groups, sizes, metricVal, st)
	} else {
		res, err = arrangeDirect(ctx, points, groups, input.Flows, sizes, metricVal, input.Descriptor, st)
	}
	duration := time.Since(start)

	variantLabel := "compressed"
	if st.variant == model.PerSubject {
		variantLabel = "per_subject"
	}

	status := "error"
	switch {
	case errors.Is(err, ilp.InfeasibleError):
		status = "infeasible"
	case err != nil:
		status = "error"
	case res.Status == ilp.StatusOptimal:
		status = "optimal"
	case res.Status == ilp.StatusFeasible:
		status = "feasible"
	}
	metrics.RecordSolve(variantLabel, duration, status)
	if res.Model != nil {
		metrics.RecordModelSize(variantLabel, res.Model.NumVars())
	}
	if status == "optimal" || status == "feasible" {
		metrics.RecordObjective(variantLabel, res.Objective)
	}

	if err != nil {
		return Result{}, err
	}

	if writeErr := emit.Solution(res.Model, res.Solver, res.Status, st.outputPath); writeErr != nil {
		return res, writeErr
	}
	if st.svgPath != "" {
		if svgErr := writeFloorPlan(points, groups, input.Flows, res, st.svgPath); svgErr != nil {
			log.Printf("engine: could not write floor-plan preview to %q: %v", st.svgPath, svgErr)
		}
	}

	return res, nil
}

func arrangeDirect(
	ctx context.Context,
	points []core.Point,
	groups []core.SubjectGroup,
	flows *core.Flows,
	sizes map[string]sizing.Sizing,
	metricVal distance.Metric,
	desc *gridspec.Descriptor,
	st settings,
) (Result, error) {
	dist, err := distance.Compute(points, metricVal)
	if err != nil {
		return Result{}, fmt.Errorf("engine: distance: %w", err)
	}

	m, err := model.Build(st.variant, points, groups, flows, sizes, dist, desc, st.gridOpts)
	if err != nil {
		return Result{}, fmt.Errorf("engine: model: %w", err)
	}

	solver := st.solverFactory()
	status, err := solver.Solve(ctx, m)
	if err != nil {
		return Result{Status: status, Model: m, Solver: solver}, err
	}
	if status == ilp.StatusInfeasible {
		return Result{Status: status, Model: m, Solver: solver}, ilp.InfeasibleError
	}

	obj, err := solver.Objective()
	if err != nil {
		return Result{Status: status, Model: m, Solver: solver}, err
	}

	return Result{Status: status, Objective: obj, Model: m, Solver: solver}, nil
}

func arrangeCascade(
	ctx context.Context,
	input ArrangeInput,
	points []core.Point,
	groups []core.SubjectGroup,
	sizes map[string]sizing.Sizing,
	metricVal distance.Metric,
	st settings,
) (Result, error) {
	if input.Descriptor == nil {
		return Result{}, ErrMissingDescriptor
	}

	builder := reduce.Builder(func(
		sub []core.Point,
		gr []core.SubjectGroup,
		fl *core.Flows,
		sz map[string]sizing.Sizing,
		dist *matrix.Dense,
		desc *gridspec.Descriptor,
		opts gridspec.Options,
	) (*ilp.Model, error) {
		return model.Build(st.variant, sub, gr, fl, sz, dist, desc, opts)
	})

	result, err := reduce.GFred(ctx, builder, st.solverFactory, points, groups, input.Flows, sizes, metricVal, input.Descriptor.Cols, input.Descriptor.Rows, st.gridOpts)
	if err != nil {
		return Result{}, err
	}

	metrics.RecordCascade(result.Attempts, result.FellBack)

	return Result{Status: ilp.StatusOptimal, Objective: result.Objective, Model: result.Model, Solver: result.Solver}, nil
}

func writeFloorPlan(points []core.Point, groups []core.SubjectGroup, flows *core.Flows, res Result, path string) error {
	data, err := emit.RenderSVG(points, groups, flows, res.Model, res.Solver, emit.DefaultSVGOptions())
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
