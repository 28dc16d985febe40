package reduce

import (
	"fmt"

	"github.com/katalvlaran/arrangex/core"
)

// parseGridIndex extracts (x,y) from a point name of the form "(x,y)",
// the convention gridspec.ParseDescriptorString uses to name generated
// grid points.
func parseGridIndex(name string) (x, y int, err error) {
	n, scanErr := fmt.Sscanf(name, "(%d,%d)", &x, &y)
	if scanErr != nil || n != 2 {
		return 0, 0, fmt.Errorf("reduce: %q: %w", name, ErrMalformedPointName)
	}

	return x, y, nil
}

// subGrid returns the points of the full grid whose indices satisfy
// x < c && y < r, preserving the input order (§5 ordering).
func subGrid(points []core.Point, c, r int) ([]core.Point, error) {
	out := make([]core.Point, 0, len(points))
	for _, p := range points {
		x, y, err := parseGridIndex(p.Name)
		if err != nil {
			return nil, err
		}
		if x < c && y < r {
			out = append(out, p)
		}
	}

	return out, nil
}
