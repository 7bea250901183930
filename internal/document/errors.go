package document

import "fmt"

// UnreadableError indicates the binary could not be parsed as a well-formed
// PDF document. This is terminal for the local extraction tier.
type UnreadableError struct {
	Cause error
}

func (e *UnreadableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document unreadable: %v", e.Cause)
	}
	return "document unreadable"
}

func (e *UnreadableError) Unwrap() error {
	return e.Cause
}

// EmptyError indicates the document parsed cleanly but yielded no pages or
// no extractable text.
type EmptyError struct{}

func (e *EmptyError) Error() string {
	return "document contains no extractable text"
}
