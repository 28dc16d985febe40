package bundle

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// supportedSpec is the only envelope spec version this decoder accepts.
const supportedSpec = "1.0.0"

// Meta is the common envelope header of §6.1.
type Meta struct {
	CreatedBy string `json:"created_by"`
	Spec      string `json:"spec"`
	Type      string `json:"type"`
}

// envelope is the common wrapper every bundle shares; stuff is decoded
// against the concrete payload shape once the type tag is checked.
type envelope struct {
	Meta  Meta            `json:"meta"`
	Stuff json.RawMessage `json:"stuff"`
}

// decodeEnvelope unmarshals data and validates meta.spec/meta.type against
// wantType before returning the raw stuff payload for type-specific decoding.
func decodeEnvelope(data []byte, wantType string) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return envelope{}, fmt.Errorf("bundle: %w: %v", FormatError, err)
	}
	if env.Meta.Spec != supportedSpec {
		return envelope{}, fmt.Errorf("bundle: unsupported spec %q: %w", env.Meta.Spec, FormatError)
	}
	if env.Meta.Type != wantType {
		return envelope{}, fmt.Errorf("bundle: expected type %q, got %q: %w", wantType, env.Meta.Type, FormatError)
	}

	return env, nil
}

// decodeOrderedKeys returns raw's top-level object keys in source order.
// encoding/json's map-based Unmarshal does not preserve key order, but §5
// requires loaders to preserve the input's iteration order for facilities,
// groups, and flow pairs.
func decodeOrderedKeys(raw json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("bundle: %w: %v", FormatError, err)
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return nil, fmt.Errorf("bundle: expected a JSON object: %w", FormatError)
	}

	var keys []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("bundle: %w: %v", FormatError, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("bundle: expected a string key: %w", FormatError)
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return nil, fmt.Errorf("bundle: %w: %v", FormatError, err)
		}
	}

	return keys, nil
}
