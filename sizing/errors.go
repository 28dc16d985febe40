package sizing

import "errors"

// ConfigurationError is returned when a group has zero input or output
// capacity but non-zero demand on that side (§4.1).
var ConfigurationError = errors.New("sizing: zero capacity with non-zero demand")
