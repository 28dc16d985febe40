package gridspec

import (
	"fmt"

	"github.com/katalvlaran/arrangex/ilp"
)

// Row is one symmetry-breaking constraint (§4.4), expressed as a weighted
// sum over point names. A model builder expands each nonzero weight into
// one coefficient per decision variable placed at that point (summed over
// groups, or groups-and-subjects, depending on the chosen encoding) and
// adds the resulting sparse row to its ilp.Model.
type Row struct {
	Name    string
	Sense   ilp.Sense
	RHS     float64
	Weights map[string]float64 // point name "(x,y)" -> weight
}

// Rows returns the symmetry-breaking constraints for desc. FirstRow and
// FirstColumn are always emitted; LeftHalf and UpperHalf are emitted only
// when desc.Anchor == AnchorAtLeast, per §4.4.
//
// The upper-half row preserves the reference implementation's documented
// bug (§9 Open Question 1) unless opts.FixUpperHalfAxis is set: it weights
// by the x-index compared against a row-count threshold, not the y-index.
func Rows(desc Descriptor, opts Options) ([]Row, error) {
	if desc.Cols <= 0 || desc.Rows <= 0 {
		return nil, ErrInvalidDescriptor
	}
	if desc.Anchor != AnchorExact && desc.Anchor != AnchorAtLeast {
		return nil, ErrInvalidAnchor
	}

	rows := make([]Row, 0, 4)

	// First row usage: sum over x of S(x,0).
	firstRow := Row{Name: "first_row", Weights: make(map[string]float64, desc.Cols)}
	for x := 0; x < desc.Cols; x++ {
		firstRow.Weights[pointName(x, 0)] = 1
	}
	firstRow.Sense, firstRow.RHS = anchorSenseRHS(desc.Anchor)
	rows = append(rows, firstRow)

	// First column usage: sum over y of S(0,y).
	firstCol := Row{Name: "first_column", Weights: make(map[string]float64, desc.Rows)}
	for y := 0; y < desc.Rows; y++ {
		firstCol.Weights[pointName(0, y)] = 1
	}
	firstCol.Sense, firstCol.RHS = anchorSenseRHS(desc.Anchor)
	rows = append(rows, firstCol)

	if desc.Anchor != AnchorAtLeast {
		return rows, nil
	}

	colThreshold := ceilDiv(desc.Cols, 2)
	leftHalf := Row{Name: "left_half", Sense: ilp.GE, RHS: 0, Weights: make(map[string]float64, desc.Cols*desc.Rows)}
	for x := 0; x < desc.Cols; x++ {
		w := -1.0
		if x <= colThreshold {
			w = 1
		}
		for y := 0; y < desc.Rows; y++ {
			leftHalf.Weights[pointName(x, y)] = w
		}
	}
	rows = append(rows, leftHalf)

	rowThreshold := ceilDiv(desc.Rows, 2)
	upperHalf := Row{Name: "upper_half", Sense: ilp.GE, RHS: 0, Weights: make(map[string]float64, desc.Cols*desc.Rows)}
	for x := 0; x < desc.Cols; x++ {
		for y := 0; y < desc.Rows; y++ {
			var axis int
			if opts.FixUpperHalfAxis {
				axis = y
			} else {
				axis = x // reference behavior: reuses the x-index, see §9 Open Question 1
			}
			w := -1.0
			if axis <= rowThreshold {
				w = 1
			}
			upperHalf.Weights[pointName(x, y)] = w
		}
	}
	rows = append(rows, upperHalf)

	return rows, nil
}

func anchorSenseRHS(a Anchor) (ilp.Sense, float64) {
	if a == AnchorExact {
		return ilp.EQ, 0
	}

	return ilp.GE, 1
}

func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}

func pointName(x, y int) string {
	return fmt.Sprintf("(%d,%d)", x, y)
}
