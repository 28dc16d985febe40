package bundle

import "errors"

// FormatError is returned for a malformed bundle, an unsupported spec
// version, or a bundle whose meta.type does not match what the decoder
// expects (§6.1, §7 FormatError).
var FormatError = errors.New("bundle: malformed or wrong-type input")
