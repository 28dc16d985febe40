package gridspec

import (
	"fmt"
	"strconv"
	"strings"
)

// PointSpec is a generated grid point, independent of package core so that
// gridspec has no dependency on the domain model. Package bundle converts
// PointSpecs into core.Point values.
type PointSpec struct {
	Name string
	X, Y float64
	Area int
}

// GeneratedGrid is the result of parsing a §6.2 descriptor string.
type GeneratedGrid struct {
	Descriptor Descriptor
	Points     []PointSpec
}

// ParseDescriptorString parses "gN:HxM:WxA" (§6.2): N rows, M columns, row
// step H, column step W, per-point area A, all positive. Generated points
// are named "(x,y)" for 0 ≤ x < M, 0 ≤ y < N, with coordinates (W·x, H·y).
// The returned Descriptor always carries AnchorAtLeast; callers that pass a
// "force vanilla" flag should discard the Descriptor and keep only Points.
func ParseDescriptorString(s string) (GeneratedGrid, error) {
	if !strings.HasPrefix(s, "g") {
		return GeneratedGrid{}, fmt.Errorf("gridspec: %q: %w", s, ErrInvalidDescriptor)
	}
	parts := strings.SplitN(s[1:], ":", 3)
	if len(parts) != 3 {
		return GeneratedGrid{}, fmt.Errorf("gridspec: %q: %w", s, ErrInvalidDescriptor)
	}

	rows, err := strconv.Atoi(parts[0])
	if err != nil {
		return GeneratedGrid{}, fmt.Errorf("gridspec: %q: %w", s, ErrInvalidDescriptor)
	}

	stepH, cols, err := parseDim(parts[1])
	if err != nil {
		return GeneratedGrid{}, fmt.Errorf("gridspec: %q: %w", s, err)
	}

	stepW, area, err := parseDim(parts[2])
	if err != nil {
		return GeneratedGrid{}, fmt.Errorf("gridspec: %q: %w", s, err)
	}

	if rows <= 0 || cols <= 0 || stepH <= 0 || stepW <= 0 || area <= 0 {
		return GeneratedGrid{}, fmt.Errorf("gridspec: %q: %w", s, ErrInvalidDescriptor)
	}

	points := make([]PointSpec, 0, rows*cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			points = append(points, PointSpec{
				Name: pointName(x, y),
				X:    stepW * float64(x),
				Y:    stepH * float64(y),
				Area: area,
			})
		}
	}

	return GeneratedGrid{
		Descriptor: Descriptor{Cols: cols, Rows: rows, Anchor: AnchorAtLeast},
		Points:     points,
	}, nil
}

// parseDim parses "HxM"-style "<step>x<count>" halves of the descriptor,
// returning (step, count).
func parseDim(s string) (float64, int, error) {
	halves := strings.SplitN(s, "x", 2)
	if len(halves) != 2 {
		return 0, 0, ErrInvalidDescriptor
	}
	step, err := strconv.ParseFloat(halves[0], 64)
	if err != nil {
		return 0, 0, ErrInvalidDescriptor
	}
	count, err := strconv.Atoi(halves[1])
	if err != nil {
		return 0, 0, ErrInvalidDescriptor
	}

	return step, count, nil
}
