package distance

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/matrix"
)

// Metric is a parsed Minkowski order: either a finite order in [1,50] or
// the L∞ (Chebyshev) metric.
type Metric struct {
	order    int
	infinity bool
}

// ParseMetric parses "m1".."m50" or "moo" (§6.5).
func ParseMetric(s string) (Metric, error) {
	if s == "moo" {
		return Metric{infinity: true}, nil
	}
	if !strings.HasPrefix(s, "m") {
		return Metric{}, fmt.Errorf("distance: %q: %w", s, ErrUnknownMetric)
	}
	order, err := strconv.Atoi(s[1:])
	if err != nil || order < 1 || order > 50 {
		return Metric{}, fmt.Errorf("distance: %q: %w", s, ErrUnknownMetric)
	}

	return Metric{order: order}, nil
}

// Distance returns d((0,0),(dx,dy)) under m.
//
//   - order 1: |dx| + |dy|.
//   - order k>1: (|dx|^k + |dy|^k)^(1/k).
//   - L∞: max(|dx|, |dy|).
func (m Metric) Distance(dx, dy float64) float64 {
	ax, ay := math.Abs(dx), math.Abs(dy)
	if m.infinity {
		return math.Max(ax, ay)
	}
	if m.order == 1 {
		return ax + ay
	}
	k := float64(m.order)

	return math.Pow(math.Pow(ax, k)+math.Pow(ay, k), 1/k)
}

// Compute returns the pairwise distance matrix for points, in the order
// given, under metric m. d(u,u) = 0 for every supported metric.
func Compute(points []core.Point, m Metric) (*matrix.Dense, error) {
	n := len(points)
	dm, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue // diagonal stays zero
			}
			d := m.Distance(points[i].X-points[j].X, points[i].Y-points[j].Y)
			if err = dm.Set(i, j, d); err != nil {
				return nil, err
			}
		}
	}

	return dm, nil
}
