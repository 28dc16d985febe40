package bundle

import (
	"fmt"

	"github.com/katalvlaran/arrangex/core"
	"github.com/katalvlaran/arrangex/gridspec"
)

// DecodeGridFacility parses a §6.2 grid descriptor string and returns both
// the resulting Facility and the gridspec.Descriptor the builder should
// apply. When forceVanilla is set, the descriptor is nil (no grid
// symmetry constraints) while the generated points are kept.
func DecodeGridFacility(s string, forceVanilla bool) (*core.Facility, *gridspec.Descriptor, error) {
	g, err := gridspec.ParseDescriptorString(s)
	if err != nil {
		return nil, nil, fmt.Errorf("bundle: grid facility: %w", err)
	}

	fac := core.NewFacility()
	for _, p := range g.Points {
		if err = fac.AddPoint(core.Point{Name: p.Name, X: p.X, Y: p.Y, Area: p.Area}); err != nil {
			return nil, nil, fmt.Errorf("bundle: grid facility: %w", err)
		}
	}

	if forceVanilla {
		return fac, nil, nil
	}

	desc := g.Descriptor

	return fac, &desc, nil
}
