package model

import (
	"fmt"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
	"github.com/katalvlaran/arrangex/matrix"
	"github.com/katalvlaran/arrangex/sizing"
)

// BuildCompressed constructs the group-aggregated MIP of §4.2: one
// placement variable n(i)[u] per group/point rather than one per subject.
// points and their pairwise distances (dist, indexed in the same order as
// points) describe the sub-grid the caller wants solved; desc, when
// non-nil, adds the grid symmetry constraints of §4.4 at the given anchor.
//
// Variables with a forced zero upper bound are never created: a pair
// (i,j) with T[i,j]==0 contributes nothing to any sum it would appear in,
// so omitting its flow variables is equivalent to creating them fixed at
// zero, and keeps the model's variable count proportional to declared
// demand rather than |groups|².
func BuildCompressed(
	points []core.Point,
	groups []core.SubjectGroup,
	flows *core.Flows,
	sizes map[string]sizing.Sizing,
	dist *matrix.Dense,
	desc *gridspec.Descriptor,
	gridOpts gridspec.Options,
) (*ilp.Model, error) {
	if len(points) == 0 || len(groups) == 0 {
		return nil, ErrEmptyInstance
	}

	pointIdx := make(map[string]int, len(points))
	for idx, p := range points {
		pointIdx[p.Name] = idx
	}

	m := ilp.NewModel()
	varIdx := make(map[string]int)

	// Stage 1: f(i,j)[u,v] for every group pair with positive demand.
	for _, gi := range groups {
		for _, gj := range groups {
			t := flows.T(gi.Name, gj.Name)
			if t <= 0 {
				continue
			}
			for _, u := range points {
				for _, v := range points {
					name := fName(gi.Name, gj.Name, u.Name, v.Name)
					idx, err := m.AddVar(name, 0, float64(t), true)
					if err != nil {
						return nil, err
					}
					varIdx[name] = idx
					d, derr := dist.At(pointIdx[u.Name], pointIdx[v.Name])
					if derr != nil {
						return nil, derr
					}
					if err = m.SetObjCoeff(idx, d); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// Stage 2: n(i)[u] and g(i)[u], and the placement index for grid constraints.
	placementByPoint := make(map[string][]int, len(points))
	for _, g := range groups {
		s := sizes[g.Name]
		for _, u := range points {
			nVarName := nName(g.Name, u.Name)
			nIdx, err := m.AddVar(nVarName, 0, float64(s.N), true)
			if err != nil {
				return nil, err
			}
			varIdx[nVarName] = nIdx
			placementByPoint[u.Name] = append(placementByPoint[u.Name], nIdx)

			lower, upper := netProductionBounds(s.G)
			gVarName := gName(g.Name, u.Name)
			gIdx, err := m.AddVar(gVarName, lower, upper, true)
			if err != nil {
				return nil, err
			}
			varIdx[gVarName] = gIdx
		}
	}

	// Stage 3: per-(i,u) capacity and Kirchhoff constraints.
	for _, gi := range groups {
		for _, u := range points {
			outIdx, outCoef := flowTerms(points, groups, flows, varIdx, gi.Name, u.Name, true)
			inIdx, inCoef := flowTerms(points, groups, flows, varIdx, gi.Name, u.Name, false)

			nIdx := varIdx[nName(gi.Name, u.Name)]

			if len(outIdx) > 0 {
				idx := append(append([]int(nil), outIdx...), nIdx)
				coef := append(append([]float64(nil), outCoef...), -float64(gi.OutputCapacity))
				if err := m.AddConstraint(fmt.Sprintf("out_cap(%s)[%s]", gi.Name, u.Name), idx, coef, ilp.LE, 0); err != nil {
					return nil, err
				}
			}
			if len(inIdx) > 0 {
				idx := append(append([]int(nil), inIdx...), nIdx)
				coef := append(append([]float64(nil), inCoef...), -float64(gi.InputCapacity))
				if err := m.AddConstraint(fmt.Sprintf("in_cap(%s)[%s]", gi.Name, u.Name), idx, coef, ilp.LE, 0); err != nil {
					return nil, err
				}
			}

			// Kirchhoff balance: outflow (incl. self) - inflow (excl. self) - g(i)[u] = 0.
			kIdx := append([]int(nil), outIdx...)
			kCoef := append([]float64(nil), outCoef...)
			inExcl, inExclCoef := flowTermsExcludingSelf(points, groups, flows, varIdx, gi.Name, u.Name)
			for k, c := range inExclCoef {
				inExclCoef[k] = -c
			}
			kIdx = append(kIdx, inExcl...)
			kCoef = append(kCoef, inExclCoef...)
			kIdx = append(kIdx, varIdx[gName(gi.Name, u.Name)])
			kCoef = append(kCoef, -1)
			if len(kIdx) > 0 {
				if err := m.AddConstraint(fmt.Sprintf("kirchhoff(%s)[%s]", gi.Name, u.Name), kIdx, kCoef, ilp.EQ, 0); err != nil {
					return nil, err
				}
			}
		}
	}

	// Stage 4: per-group net production and subject count.
	for _, g := range groups {
		s := sizes[g.Name]

		gIdx := make([]int, 0, len(points))
		gCoef := make([]float64, 0, len(points))
		nIdx := make([]int, 0, len(points))
		nCoef := make([]float64, 0, len(points))
		for _, u := range points {
			gIdx = append(gIdx, varIdx[gName(g.Name, u.Name)])
			gCoef = append(gCoef, 1)
			nIdx = append(nIdx, varIdx[nName(g.Name, u.Name)])
			nCoef = append(nCoef, 1)
		}
		if err := m.AddConstraint(fmt.Sprintf("net_production(%s)", g.Name), gIdx, gCoef, ilp.EQ, float64(s.G)); err != nil {
			return nil, err
		}
		if err := m.AddConstraint(fmt.Sprintf("subject_count(%s)", g.Name), nIdx, nCoef, ilp.EQ, float64(s.N)); err != nil {
			return nil, err
		}
	}

	// Stage 5: demand realization, per ordered group pair with positive demand.
	for _, gi := range groups {
		for _, gj := range groups {
			t := flows.T(gi.Name, gj.Name)
			if t <= 0 {
				continue
			}
			idx := make([]int, 0, len(points)*len(points))
			coef := make([]float64, 0, len(points)*len(points))
			for _, u := range points {
				for _, v := range points {
					idx = append(idx, varIdx[fName(gi.Name, gj.Name, u.Name, v.Name)])
					coef = append(coef, 1)
				}
			}
			if err := m.AddConstraint(fmt.Sprintf("demand(%s,%s)", gi.Name, gj.Name), idx, coef, ilp.EQ, float64(t)); err != nil {
				return nil, err
			}
		}
	}

	// Stage 6: per-location area.
	for _, u := range points {
		idx := make([]int, 0, len(groups))
		coef := make([]float64, 0, len(groups))
		for _, g := range groups {
			idx = append(idx, varIdx[nName(g.Name, u.Name)])
			coef = append(coef, float64(g.Area))
		}
		if err := m.AddConstraint(fmt.Sprintf("area[%s]", u.Name), idx, coef, ilp.LE, float64(u.Area)); err != nil {
			return nil, err
		}
	}

	// Stage 7: grid symmetry constraints, if this is a grid layout.
	if desc != nil {
		if err := addGridConstraints(m, placementByPoint, *desc, gridOpts); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// netProductionBounds returns [-g,g] if g>=0, else [g,0] (§4.2).
func netProductionBounds(g int) (float64, float64) {
	if g >= 0 {
		return -float64(g), float64(g)
	}

	return float64(g), 0
}

// flowTerms returns the f(i,j)[u,v] (outflow=true) or f(j,i)[v,u]
// (outflow=false) variable indices/coefficients touching group gi at point
// u, over every group j (gi itself included) with positive demand on that
// side and every point v.
func flowTerms(points []core.Point, groups []core.SubjectGroup, flows *core.Flows, varIdx map[string]int, gi, u string, outflow bool) ([]int, []float64) {
	var idx []int
	var coef []float64
	for _, gj := range groups {
		var t int
		if outflow {
			t = flows.T(gi, gj.Name)
		} else {
			t = flows.T(gj.Name, gi)
		}
		if t <= 0 {
			continue
		}
		for _, v := range points {
			var name string
			if outflow {
				name = fName(gi, gj.Name, u, v.Name)
			} else {
				name = fName(gj.Name, gi, v.Name, u)
			}
			if vIdx, ok := varIdx[name]; ok {
				idx = append(idx, vIdx)
				coef = append(coef, 1)
			}
		}
	}

	return idx, coef
}

// flowTermsExcludingSelf is flowTerms(outflow=false) restricted to j != gi,
// for the Kirchhoff inflow term (§4.2: "the self-loop term appears on the
// outflow side only").
func flowTermsExcludingSelf(points []core.Point, groups []core.SubjectGroup, flows *core.Flows, varIdx map[string]int, gi, u string) ([]int, []float64) {
	var idx []int
	var coef []float64
	for _, gj := range groups {
		if gj.Name == gi {
			continue
		}
		t := flows.T(gj.Name, gi)
		if t <= 0 {
			continue
		}
		for _, v := range points {
			name := fName(gj.Name, gi, v.Name, u)
			if vIdx, ok := varIdx[name]; ok {
				idx = append(idx, vIdx)
				coef = append(coef, 1)
			}
		}
	}

	return idx, coef
}
