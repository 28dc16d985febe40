package bundle

import (
	"encoding/json"
	"fmt"

	"github.com/katalvlaran/arrangex/core"
)

// DecodeFAST decodes a FAST (total flows) bundle into a core.Flows,
// preserving both the source-group and target-group key order (§5).
func DecodeFAST(data []byte) (*core.Flows, error) {
	env, err := decodeEnvelope(data, "fast")
	if err != nil {
		return nil, err
	}

	sources, err := decodeOrderedKeys(env.Stuff)
	if err != nil {
		return nil, fmt.Errorf("bundle: fast: %w", err)
	}
	var outer map[string]json.RawMessage
	if err = json.Unmarshal(env.Stuff, &outer); err != nil {
		return nil, fmt.Errorf("bundle: fast: %w: %v", FormatError, err)
	}

	flows := core.NewFlows()
	for _, src := range sources {
		raw := outer[src]
		targets, err := decodeOrderedKeys(raw)
		if err != nil {
			return nil, fmt.Errorf("bundle: fast: %s: %w", src, err)
		}
		var inner map[string]int
		if err = json.Unmarshal(raw, &inner); err != nil {
			return nil, fmt.Errorf("bundle: fast: %s: %w: %v", src, FormatError, err)
		}
		for _, dst := range targets {
			if err = flows.Set(src, dst, inner[dst]); err != nil {
				return nil, fmt.Errorf("bundle: fast: %w", err)
			}
		}
	}

	return flows, nil
}
