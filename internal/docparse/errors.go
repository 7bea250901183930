package docparse

import "fmt"

// UnavailableError signals that the remote parsing service could not produce
// a usable result. It is always recoverable: callers fall back to local
// heuristic extraction.
type UnavailableError struct {
	Message string
	Cause   error
}

func (e *UnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document parser unavailable: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document parser unavailable: %s", e.Message)
}

func (e *UnavailableError) Unwrap() error {
	return e.Cause
}
