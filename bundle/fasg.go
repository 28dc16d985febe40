package bundle

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/arrangex/core"
)

type fasgEntry struct {
	InputCapacity  int `json:"input_capacity"`
	OutputCapacity int `json:"output_capacity"`
	Area           int `json:"area"`
}

// DecodeFASG decodes a FASG (groups) bundle into a core.GroupSet,
// preserving the payload's key order (§5).
func DecodeFASG(data []byte) (*core.GroupSet, error) {
	env, err := decodeEnvelope(data, "fasg")
	if err != nil {
		return nil, err
	}

	keys, err := decodeOrderedKeys(env.Stuff)
	if err != nil {
		return nil, fmt.Errorf("bundle: fasg: %w", err)
	}
	var entries map[string]fasgEntry
	if err = json.Unmarshal(env.Stuff, &entries); err != nil {
		return nil, fmt.Errorf("bundle: fasg: %w: %v", FormatError, err)
	}

	gs := core.NewGroupSet()
	for _, name := range keys {
		e := entries[name]
		g := core.SubjectGroup{Name: name, InputCapacity: e.InputCapacity, OutputCapacity: e.OutputCapacity, Area: e.Area}
		if err = gs.AddGroup(g); err != nil {
			return nil, fmt.Errorf("bundle: fasg: %w", err)
		}
	}

	return gs, nil
}
