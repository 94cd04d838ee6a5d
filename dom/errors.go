package dom

import "fmt"

// BuildError reports a malformed event stream rejected by a strict
// Builder, or misuse of a finished one.
type BuildError struct {
	Message string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("DOM builder aborted: %s", e.Message)
}

func buildErrorf(format string, args ...interface{}) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...)}
}
