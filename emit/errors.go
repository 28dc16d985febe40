package emit

import "errors"

// SinkError wraps a failure to open or write the requested destination
// path. Solution writes recover from it locally by retrying against
// backupSolutionPath; callers only observe SinkError if the backup path
// also fails (§7 SinkError).
type SinkError struct {
	Path    string
	Message string
}

func (e *SinkError) Error() string {
	return "emit: " + e.Path + ": " + e.Message
}

// ErrNothingToWrite is returned when Solution is called on a model with no
// variables.
var ErrNothingToWrite = errors.New("emit: model has no variables to write")
