package bundle

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/arrangex/core"
)

type fasfEntry struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Area int     `json:"area"`
}

// DecodeFASF decodes a FASF (facility) bundle into a core.Facility,
// preserving the payload's key order (§5).
func DecodeFASF(data []byte) (*core.Facility, error) {
	env, err := decodeEnvelope(data, "fasf")
	if err != nil {
		return nil, err
	}

	keys, err := decodeOrderedKeys(env.Stuff)
	if err != nil {
		return nil, fmt.Errorf("bundle: fasf: %w", err)
	}
	var entries map[string]fasfEntry
	if err = json.Unmarshal(env.Stuff, &entries); err != nil {
		return nil, fmt.Errorf("bundle: fasf: %w: %v", FormatError, err)
	}

	fac := core.NewFacility()
	for _, name := range keys {
		e := entries[name]
		if err = fac.AddPoint(core.Point{Name: name, X: e.X, Y: e.Y, Area: e.Area}); err != nil {
			return nil, fmt.Errorf("bundle: fasf: %w", err)
		}
	}

	return fac, nil
}
