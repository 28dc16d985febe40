package refsolver

import (
	"context"
	"math"
	"time"

	"github.com/katalvlaran/arrangex/ilp"
)

var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// bnbEngine holds all search data and policies, mirroring the teacher's
// bbEngine: explicit struct fields instead of closures, a sparse deadline
// check, deterministic branching, and admissible-bound pruning. A
// Hamiltonian-tour search branches on the next path position; this search
// branches on the next variable index, since a Model has no path topology.
type bnbEngine struct {
	model *ilp.Model
	n     int
	eps   float64

	useDeadline bool
	deadline    time.Time
	ctx         context.Context
	steps       int

	// varCons[v] lists every constraint index that references variable v,
	// so assigning v only needs to re-check constraints touching it.
	varCons [][]int

	assigned []bool
	assign   []float64

	bestAssign []float64
	bestCost   float64
	foundAny   bool
}

// buildVarConstraintIndex inverts Model.Cons into a per-variable list of
// referencing constraint indices, used to scope propagate's work to
// constraints actually affected by the variable just assigned.
func buildVarConstraintIndex(m *ilp.Model) [][]int {
	out := make([][]int, m.NumVars())
	for ci, c := range m.Cons {
		for _, idx := range c.Indices {
			out[idx] = append(out[idx], ci)
		}
	}

	return out
}

// deadlineCheck performs a rare deadline/cancellation test (every 4096
// node events), matching the teacher's sparse-polling budget.
func (e *bnbEngine) deadlineCheck() bool {
	e.steps++
	if (e.steps & 4095) != 0 {
		return false
	}
	if e.ctx != nil && e.ctx.Err() != nil {
		return true
	}

	return e.useDeadline && time.Now().After(e.deadline)
}

// search explores variable v's domain depth-first, where v == depth: every
// variable with a lower index is already assigned.
func (e *bnbEngine) search(depth int, costSoFar float64) {
	if e.deadlineCheck() {
		return
	}

	if depth == e.n {
		if costSoFar < e.bestCost-e.eps {
			e.recordIncumbent(costSoFar)
		}

		return
	}

	if e.lowerBound(depth, costSoFar) >= e.bestCost-e.eps {
		return
	}

	v := e.model.Vars[depth]
	lower, upper := int64(v.Lower), int64(v.Upper)
	coeff := e.model.Obj[depth]

	// Ascending order tightens the incumbent early when coeff >= 0 (the
	// common case: every flow variable's distance coefficient is
	// non-negative); it is still correct, just not fastest, otherwise.
	for val := lower; val <= upper; val++ {
		fval := float64(val)
		e.assigned[depth] = true
		e.assign[depth] = fval
		if e.propagate(depth) {
			e.search(depth+1, costSoFar+coeff*fval)
		}
		e.assigned[depth] = false

		if e.deadlineCheck() {
			return
		}
	}
}

// lowerBound extends costSoFar with each unassigned variable's best-case
// contribution: coeff*lower if coeff >= 0, else coeff*upper. Both bounds
// are finite (Solve rejects unbounded variables), so this sum is always a
// valid lower bound on any completion.
func (e *bnbEngine) lowerBound(depth int, costSoFar float64) float64 {
	extra := 0.0
	for i := depth; i < e.n; i++ {
		coeff := e.model.Obj[i]
		v := e.model.Vars[i]
		if coeff >= 0 {
			extra += coeff * v.Lower
		} else {
			extra += coeff * v.Upper
		}
	}

	return costSoFar + extra
}

// propagate checks every constraint touching the variable just assigned at
// depth for interval feasibility against the remaining unassigned
// variables' bounds. It returns false as soon as one constraint can no
// longer be satisfied by any completion.
func (e *bnbEngine) propagate(depth int) bool {
	for _, ci := range e.varCons[depth] {
		c := e.model.Cons[ci]
		min, max := 0.0, 0.0
		for k, idx := range c.Indices {
			coeff := c.Coeffs[k]
			if e.assigned[idx] {
				term := coeff * e.assign[idx]
				min += term
				max += term
				continue
			}
			v := e.model.Vars[idx]
			if coeff >= 0 {
				min += coeff * v.Lower
				max += coeff * v.Upper
			} else {
				min += coeff * v.Upper
				max += coeff * v.Lower
			}
		}

		switch c.Sense {
		case ilp.LE:
			if min > c.RHS+e.eps {
				return false
			}
		case ilp.GE:
			if max < c.RHS-e.eps {
				return false
			}
		case ilp.EQ:
			if min > c.RHS+e.eps || max < c.RHS-e.eps {
				return false
			}
		}
	}

	return true
}

func (e *bnbEngine) recordIncumbent(cost float64) {
	if e.bestAssign == nil {
		e.bestAssign = make([]float64, e.n)
	}
	copy(e.bestAssign, e.assign)
	e.bestCost = cost
	e.foundAny = true
}
