package narrative

import (
	"fmt"
	"time"
)

// TimeoutError signals that generation did not finish within the deadline.
// Callers substitute the default bio and continue.
type TimeoutError struct {
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("narrative generation timed out after %s", e.Timeout)
}

// GenerationError wraps a provider failure or an empty generation result.
// Like TimeoutError it is recoverable: the default bio takes its place.
type GenerationError struct {
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("narrative generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("narrative generation failed: %s", e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
