package model

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
)

// addGridConstraints expands gridspec.Rows against placementVarsByPoint
// (the S(x,y) aggregate of §4.4: every n(i)[u] variable index for the
// compressed model, or every b(i:p)[u] index for the per-subject model,
// keyed by point name) and adds one sparse constraint per row.
func addGridConstraints(m *ilp.Model, placementVarsByPoint map[string][]int, desc gridspec.Descriptor, opts gridspec.Options) error {
	rows, err := gridspec.Rows(desc, opts)
	if err != nil {
		return err
	}

	for _, row := range rows {
		points := make([]string, 0, len(row.Weights))
		for point := range row.Weights {
			points = append(points, point)
		}
		sort.Strings(points) // deterministic term order for byte-stable models (§5)

		indices := make([]int, 0, len(row.Weights))
		coeffs := make([]float64, 0, len(row.Weights))
		for _, point := range points {
			weight := row.Weights[point]
			if weight == 0 {
				continue
			}
			for _, idx := range placementVarsByPoint[point] {
				indices = append(indices, idx)
				coeffs = append(coeffs, weight)
			}
		}
		if len(indices) == 0 {
			continue // degenerate sub-grid with no placement variables at all
		}
		if err = m.AddConstraint(fmt.Sprintf("grid_%s", row.Name), indices, coeffs, row.Sense, row.RHS); err != nil {
			return err
		}
	}

	return nil
}
