package model

import (
	"fmt"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/gridspec"
	"github.com/katalvlaran/arrangex/ilp"
	"github.com/katalvlaran/arrangex/matrix"
	"github.com/katalvlaran/arrangex/sizing"
)

// subject identifies one materialized subject of the per-subject encoding.
type subject struct {
	group string
	p     int
}

// BuildPerSubject constructs the individual-subject MIP of §4.3: N_i
// logical subjects per group i are materialized and placed individually,
// so downstream consumers can recover per-subject routing. It is strictly
// larger than BuildCompressed (§4.3 Trade-off) and shares the same
// zero-upper-bound variable omission as BuildCompressed.
func BuildPerSubject(
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

	subjects := make(map[string][]subject, len(groups))
	for _, g := range groups {
		n := sizes[g.Name].N
		list := make([]subject, n)
		for p := 0; p < n; p++ {
			list[p] = subject{group: g.Name, p: p}
		}
		subjects[g.Name] = list
	}

	m := ilp.NewModel()
	varIdx := make(map[string]int)

	// Stage 1: f(i:p,j:q)[u,v] for every subject pair with positive group demand.
	for _, gi := range groups {
		for _, gj := range groups {
			t := flows.T(gi.Name, gj.Name)
			if t <= 0 {
				continue
			}
			for _, si := range subjects[gi.Name] {
				for _, sj := range subjects[gj.Name] {
					for _, u := range points {
						for _, v := range points {
							name := fSubjectName(gi.Name, si.p, gj.Name, sj.p, u.Name, v.Name)
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
		}
	}

	// Stage 2: b(i:p)[u] and g(i:p)[u], and the placement index for grid constraints.
	placementByPoint := make(map[string][]int, len(points))
	for _, g := range groups {
		s := sizes[g.Name]
		for _, si := range subjects[g.Name] {
			for _, u := range points {
				bVarName := bName(g.Name, si.p, u.Name)
				bIdx, err := m.AddVar(bVarName, 0, 1, true)
				if err != nil {
					return nil, err
				}
				varIdx[bVarName] = bIdx
				placementByPoint[u.Name] = append(placementByPoint[u.Name], bIdx)

				lower, upper := netProductionBounds(s.G)
				gVarName := gSubjectName(g.Name, si.p, u.Name)
				gIdx, err := m.AddVar(gVarName, lower, upper, true)
				if err != nil {
					return nil, err
				}
				varIdx[gVarName] = gIdx
			}
		}
	}

	// Stage 3: unique placement, per (i,p).
	for _, g := range groups {
		for _, si := range subjects[g.Name] {
			idx := make([]int, 0, len(points))
			coef := make([]float64, 0, len(points))
			for _, u := range points {
				idx = append(idx, varIdx[bName(g.Name, si.p, u.Name)])
				coef = append(coef, 1)
			}
			if err := m.AddConstraint(fmt.Sprintf("unique_placement(%s:%d)", g.Name, si.p), idx, coef, ilp.EQ, 1); err != nil {
				return nil, err
			}
		}
	}

	// Stage 4: per-(i,p,u) capacity and Kirchhoff constraints.
	for _, gi := range groups {
		for _, si := range subjects[gi.Name] {
			for _, u := range points {
				outIdx, outCoef := subjectFlowTerms(points, groups, subjects, flows, varIdx, gi.Name, si.p, u.Name, true)
				inIdx, inCoef := subjectFlowTerms(points, groups, subjects, flows, varIdx, gi.Name, si.p, u.Name, false)

				bIdx := varIdx[bName(gi.Name, si.p, u.Name)]

				if len(outIdx) > 0 {
					idx := append(append([]int(nil), outIdx...), bIdx)
					coef := append(append([]float64(nil), outCoef...), -float64(gi.OutputCapacity))
					if err := m.AddConstraint(fmt.Sprintf("out_cap(%s:%d)[%s]", gi.Name, si.p, u.Name), idx, coef, ilp.LE, 0); err != nil {
						return nil, err
					}
				}
				if len(inIdx) > 0 {
					idx := append(append([]int(nil), inIdx...), bIdx)
					coef := append(append([]float64(nil), inCoef...), -float64(gi.InputCapacity))
					if err := m.AddConstraint(fmt.Sprintf("in_cap(%s:%d)[%s]", gi.Name, si.p, u.Name), idx, coef, ilp.LE, 0); err != nil {
						return nil, err
					}
				}

				kIdx := append([]int(nil), outIdx...)
				kCoef := append([]float64(nil), outCoef...)
				inExcl, inExclCoef := subjectFlowTermsExcludingSelf(points, groups, subjects, flows, varIdx, gi.Name, si.p, u.Name)
				for k, c := range inExclCoef {
					inExclCoef[k] = -c
				}
				kIdx = append(kIdx, inExcl...)
				kCoef = append(kCoef, inExclCoef...)
				kIdx = append(kIdx, varIdx[gSubjectName(gi.Name, si.p, u.Name)])
				kCoef = append(kCoef, -1)
				if len(kIdx) > 0 {
					if err := m.AddConstraint(fmt.Sprintf("kirchhoff(%s:%d)[%s]", gi.Name, si.p, u.Name), kIdx, kCoef, ilp.EQ, 0); err != nil {
						return nil, err
					}
				}
			}
		}
	}

	// Stage 5: per-group demand realization and net production.
	for _, gi := range groups {
		for _, gj := range groups {
			t := flows.T(gi.Name, gj.Name)
			if t <= 0 {
				continue
			}
			idx := make([]int, 0)
			coef := make([]float64, 0)
			for _, si := range subjects[gi.Name] {
				for _, sj := range subjects[gj.Name] {
					for _, u := range points {
						for _, v := range points {
							idx = append(idx, varIdx[fSubjectName(gi.Name, si.p, gj.Name, sj.p, u.Name, v.Name)])
							coef = append(coef, 1)
						}
					}
				}
			}
			if err := m.AddConstraint(fmt.Sprintf("demand(%s,%s)", gi.Name, gj.Name), idx, coef, ilp.EQ, float64(t)); err != nil {
				return nil, err
			}
		}
	}

	for _, g := range groups {
		s := sizes[g.Name]
		idx := make([]int, 0)
		coef := make([]float64, 0)
		for _, si := range subjects[g.Name] {
			for _, u := range points {
				idx = append(idx, varIdx[gSubjectName(g.Name, si.p, u.Name)])
				coef = append(coef, 1)
			}
		}
		if len(idx) > 0 {
			if err := m.AddConstraint(fmt.Sprintf("net_production(%s)", g.Name), idx, coef, ilp.EQ, float64(s.G)); err != nil {
				return nil, err
			}
		}
	}

	// Stage 6: per-location area.
	for _, u := range points {
		idx := make([]int, 0)
		coef := make([]float64, 0)
		for _, g := range groups {
			for _, si := range subjects[g.Name] {
				idx = append(idx, varIdx[bName(g.Name, si.p, u.Name)])
				coef = append(coef, float64(g.Area))
			}
		}
		if len(idx) > 0 {
			if err := m.AddConstraint(fmt.Sprintf("area[%s]", u.Name), idx, coef, ilp.LE, float64(u.Area)); err != nil {
				return nil, err
			}
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

func subjectFlowTerms(points []core.Point, groups []core.SubjectGroup, subjects map[string][]subject, flows *core.Flows, varIdx map[string]int, gi string, p int, u string, outflow bool) ([]int, []float64) {
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
		for _, sj := range subjects[gj.Name] {
			for _, v := range points {
				var name string
				if outflow {
					name = fSubjectName(gi, p, gj.Name, sj.p, u, v.Name)
				} else {
					name = fSubjectName(gj.Name, sj.p, gi, p, v.Name, u)
				}
				if vIdx, ok := varIdx[name]; ok {
					idx = append(idx, vIdx)
					coef = append(coef, 1)
				}
			}
		}
	}

	return idx, coef
}

// subjectFlowTermsExcludingSelf derives the excluded-group index list from
// what it actually emits, rather than from a separate formula — see §9
// Open Question 2, which flags a discrepancy in the reference precisely
// because it computes the count analytically instead of from the emitted
// list.
func subjectFlowTermsExcludingSelf(points []core.Point, groups []core.SubjectGroup, subjects map[string][]subject, flows *core.Flows, varIdx map[string]int, gi string, p int, u string) ([]int, []float64) {
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
		for _, sj := range subjects[gj.Name] {
			for _, v := range points {
				name := fSubjectName(gj.Name, sj.p, gi, p, v.Name, u)
				if vIdx, ok := varIdx[name]; ok {
					idx = append(idx, vIdx)
					coef = append(coef, 1)
				}
			}
		}
	}

	return idx, coef
}
