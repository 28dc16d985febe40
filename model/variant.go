package model

import (
	"fmt"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
	"github.com/katalvlaran/arrangex/matrix"
	"github.com/katalvlaran/arrangex/sizing"
)

// Variant selects which MIP encoding Build dispatches to (§9 Design Notes).
type Variant int

const (
	// Compressed aggregates subjects of the same group into one placement
	// variable per group/point (§4.2). Smaller model, no per-subject routing.
	Compressed Variant = iota
	// PerSubject materializes one placement variable per individual
	// subject (§4.3). Larger model, recovers per-subject routing.
	PerSubject
)

// Build dispatches to BuildCompressed or BuildPerSubject according to
// variant, so callers can select an encoding by value rather than calling
// the builder function directly.
func Build(
	variant Variant,
	points []core.Point,
	groups []core.SubjectGroup,
	flows *core.Flows,
	sizes map[string]sizing.Sizing,
	dist *matrix.Dense,
	desc *gridspec.Descriptor,
	gridOpts gridspec.Options,
) (*ilp.Model, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return nil, fmt.Errorf("model: distance matrix: %w", err)
	}
	if dist.Rows() != len(points) {
		return nil, fmt.Errorf("model: distance matrix is %dx%d, want %dx%d: %w",
			dist.Rows(), dist.Cols(), len(points), len(points), matrix.ErrDimensionMismatch)
	}

	switch variant {
	case PerSubject:
		return BuildPerSubject(points, groups, flows, sizes, dist, desc, gridOpts)
	default:
		return BuildCompressed(points, groups, flows, sizes, dist, desc, gridOpts)
	}
}
