package emit

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/ilp"
)

// palette assigns a deterministic color per group, cycling if there are
// more groups than colors, matching the archetype-to-color switch of the
// corpus's own SVG exporter.
var palette = []string{
	"#48bb78", "#f56565", "#ffd700", "#9f7aea", "#4299e1",
	"#ed8936", "#38b2ac", "#805ad5", "#ecc94b", "#718096",
}

// SVGOptions configures the floor-plan preview.
type SVGOptions struct {
	Width         int
	Height        int
	Margin        int
	PointSize     int // side length of each location's square, in pixels
	MaxFlowStroke int // stroke width added to the 1px base for the single heaviest flow
	ShowLabels    bool
	Title         string
}

// DefaultSVGOptions returns sensible default floor-plan export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:         1000,
		Height:        1000,
		Margin:        60,
		PointSize:     64,
		MaxFlowStroke: 10,
		ShowLabels:    true,
		Title:         "Arrangement",
	}
}

// RenderSVG draws every location as a square sized to its area, the
// groups occupying it as labeled circles colored by group, and the
// material flow between occupied locations as line segments whose stroke
// width scales with flow volume. It reads occupancy back out of the
// solved model by reconstructing the compressed encoding's n(i)[u]
// variable name locally (§6.4), so it renders Compressed-variant
// solutions; a PerSubject solution renders bare locations only, with no
// group circles and no flow lines, since it has no n(i)[u] variables.
func RenderSVG(points []core.Point, groups []core.SubjectGroup, flows *core.Flows, model *ilp.Model, solver ilp.Solver, opts SVGOptions) ([]byte, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("emit: RenderSVG: %w", ErrNothingToWrite)
	}
	if opts.Width <= 0 {
		opts.Width = 1000
	}
	if opts.Height <= 0 {
		opts.Height = 1000
	}
	if opts.Margin <= 0 {
		opts.Margin = 60
	}
	if opts.PointSize <= 0 {
		opts.PointSize = 64
	}
	if opts.MaxFlowStroke <= 0 {
		opts.MaxFlowStroke = 10
	}

	byName, err := valuesByName(model, solver)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#1a1a2e")

	layout := layoutPoints(points, opts)
	if flows != nil {
		drawFlows(canvas, points, groups, flows, byName, layout, opts)
	}
	drawLocations(canvas, points, layout, opts)
	drawGroupCircles(canvas, points, groups, byName, layout, opts)
	if opts.ShowLabels {
		drawPointLabels(canvas, points, layout, opts)
		drawLegend(canvas, groups, opts)
	}
	if opts.Title != "" {
		canvas.Text(opts.Margin, opts.Margin/2, opts.Title, "fill:#e2e8f0;font-size:20px;font-weight:bold")
	}

	canvas.End()

	return buf.Bytes(), nil
}

type position struct{ X, Y float64 }

// layoutPoints maps each point's data-space (X,Y) into canvas pixel space,
// preserving relative position and leaving opts.Margin on every side.
func layoutPoints(points []core.Point, opts SVGOptions) map[string]position {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := points[0].X, points[0].Y
	for _, p := range points {
		minX, maxX = minF(minX, p.X), maxF(maxX, p.X)
		minY, maxY = minF(minY, p.Y), maxF(maxY, p.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	if spanX == 0 {
		spanX = 1
	}
	if spanY == 0 {
		spanY = 1
	}
	usableW := float64(opts.Width - 2*opts.Margin)
	usableH := float64(opts.Height - 2*opts.Margin)

	out := make(map[string]position, len(points))
	for _, p := range points {
		out[p.Name] = position{
			X: float64(opts.Margin) + (p.X-minX)/spanX*usableW,
			Y: float64(opts.Margin) + (p.Y-minY)/spanY*usableH,
		}
	}

	return out
}

// drawLocations draws one square per point, sized by the point's declared
// area relative to the largest area in the facility.
func drawLocations(canvas *svg.SVG, points []core.Point, layout map[string]position, opts SVGOptions) {
	maxArea := 1
	for _, p := range points {
		if p.Area > maxArea {
			maxArea = p.Area
		}
	}
	for _, p := range points {
		pos := layout[p.Name]
		scale := 0.5 + 0.5*float64(p.Area)/float64(maxArea)
		size := int(float64(opts.PointSize) * scale)
		x0, y0 := int(pos.X)-size/2, int(pos.Y)-size/2
		canvas.Rect(x0, y0, size, size, "fill:#2d3748;stroke:#4a5568;stroke-width:2")
	}
}

// drawGroupCircles draws one labeled circle of fixed radius per group with
// n(i)[u] > 0 at a point, arranged left-to-right within the point's square.
func drawGroupCircles(canvas *svg.SVG, points []core.Point, groups []core.SubjectGroup, byName map[string]float64, layout map[string]position, opts SVGOptions) {
	for _, p := range points {
		pos := layout[p.Name]
		occupants := make([]int, 0, len(groups))
		for i, g := range groups {
			if byName[fmt.Sprintf("n(%s)[%s]", g.Name, p.Name)] > 0 {
				occupants = append(occupants, i)
			}
		}
		if len(occupants) == 0 {
			continue
		}

		radius := opts.PointSize / 4
		spacing := opts.PointSize / (len(occupants) + 1)
		startX := int(pos.X) - opts.PointSize/2
		for slot, gi := range occupants {
			cx := startX + spacing*(slot+1)
			cy := int(pos.Y)
			color := palette[gi%len(palette)]
			canvas.Circle(cx, cy, radius, fmt.Sprintf("fill:%s;opacity:0.9", color))
			if opts.ShowLabels {
				canvas.Text(cx, cy+radius+12, groups[gi].Name, "fill:#e2e8f0;font-size:10px;text-anchor:middle")
			}
		}
	}
}

// drawFlows draws a line between every pair of distinct locations with
// positive aggregate material flow between the groups occupying them,
// stroke width scaled linearly against the heaviest flow present.
func drawFlows(canvas *svg.SVG, points []core.Point, groups []core.SubjectGroup, flows *core.Flows, byName map[string]float64, layout map[string]position, opts SVGOptions) {
	type edge struct {
		u, v   string
		weight float64
	}
	var edges []edge
	maxWeight := 0.0

	for i, pu := range points {
		for j := i + 1; j < len(points); j++ {
			pv := points[j]
			weight := locationFlowWeight(pu, pv, groups, flows, byName)
			if weight <= 0 {
				continue
			}
			edges = append(edges, edge{u: pu.Name, v: pv.Name, weight: weight})
			if weight > maxWeight {
				maxWeight = weight
			}
		}
	}
	if maxWeight == 0 {
		return
	}

	for _, e := range edges {
		pu, pv := layout[e.u], layout[e.v]
		width := int(1 + e.weight/maxWeight*float64(opts.MaxFlowStroke))
		canvas.Line(int(pu.X), int(pu.Y), int(pv.X), int(pv.Y), fmt.Sprintf("stroke:#edf2f7;stroke-width:%d;opacity:0.35", width))
	}
}

// locationFlowWeight sums, over every ordered group pair (gi,gj), the
// declared flow T(gi,gj) weighted by how much of each group occupies u
// and v respectively, in either direction.
func locationFlowWeight(u, v core.Point, groups []core.SubjectGroup, flows *core.Flows, byName map[string]float64) float64 {
	total := 0.0
	for _, gi := range groups {
		occU := byName[fmt.Sprintf("n(%s)[%s]", gi.Name, u.Name)]
		occV := byName[fmt.Sprintf("n(%s)[%s]", gi.Name, v.Name)]
		if occU <= 0 && occV <= 0 {
			continue
		}
		for _, gj := range groups {
			t := float64(flows.T(gi.Name, gj.Name))
			if t == 0 {
				continue
			}
			occUj := byName[fmt.Sprintf("n(%s)[%s]", gj.Name, u.Name)]
			occVj := byName[fmt.Sprintf("n(%s)[%s]", gj.Name, v.Name)]
			total += t * (occU*occVj + occV*occUj)
		}
	}

	return total
}

func drawPointLabels(canvas *svg.SVG, points []core.Point, layout map[string]position, opts SVGOptions) {
	for _, p := range points {
		pos := layout[p.Name]
		canvas.Text(int(pos.X), int(pos.Y)+opts.PointSize/2+16, p.Name, "fill:#cbd5e0;font-size:12px;text-anchor:middle")
	}
}

// drawLegend lists each group's assigned color in the top-right corner.
func drawLegend(canvas *svg.SVG, groups []core.SubjectGroup, opts SVGOptions) {
	x := opts.Width - opts.Margin - 120
	y := opts.Margin
	for i, g := range groups {
		yi := y + i*18
		canvas.Circle(x, yi, 6, fmt.Sprintf("fill:%s", palette[i%len(palette)]))
		canvas.Text(x+14, yi+4, g.Name, "fill:#e2e8f0;font-size:12px")
	}
}

// valuesByName reconstructs a variable-name-to-value map from the solved
// model, so each draw helper can look up occupancy without depending on
// model's unexported naming helpers.
func valuesByName(model *ilp.Model, solver ilp.Solver) (map[string]float64, error) {
	out := make(map[string]float64, len(model.Vars))
	for i, v := range model.Vars {
		val, err := solver.Value(i)
		if err != nil {
			return nil, err
		}
		out[v.Name] = val
	}

	return out, nil
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}

	return b
}
