package sizing

import (
	"fmt"

	"github.com/katalvlaran/arrangex/core"
)

// Sizing is the derived per-group sizing of §3: N (sufficient subject
// count) and G (net production, sign-sensitive).
type Sizing struct {
	N int
	G int
}

// Compute returns Sizing for every group in groups, keyed by group name.
// Iteration and the returned map's construction follow groups.Groups()
// insertion order (§5); callers that need reproducible iteration over the
// result should iterate groups.Names() again rather than ranging the map.
func Compute(groups *core.GroupSet, flows *core.Flows) (map[string]Sizing, error) {
	result := make(map[string]Sizing, groups.Len())
	for _, g := range groups.Groups() {
		in := flows.In(g.Name)
		out := flows.Out(g.Name)
		s, err := computeOne(g, in, out)
		if err != nil {
			return nil, err
		}
		result[g.Name] = s
	}

	return result, nil
}

func computeOne(g core.SubjectGroup, in, out int) (Sizing, error) {
	if in == 0 && out == 0 {
		return Sizing{N: 0, G: 0}, nil
	}

	var nIn, nOut int
	if in > 0 {
		if g.InputCapacity == 0 {
			return Sizing{}, fmt.Errorf("sizing: group %s: in=%d: %w", g.Name, in, ConfigurationError)
		}
		nIn = ceilDiv(in, g.InputCapacity)
	}
	if out > 0 {
		if g.OutputCapacity == 0 {
			return Sizing{}, fmt.Errorf("sizing: group %s: out=%d: %w", g.Name, out, ConfigurationError)
		}
		nOut = ceilDiv(out, g.OutputCapacity)
	}

	n := nIn
	if nOut > n {
		n = nOut
	}

	return Sizing{N: n, G: out - in}, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
