package enricher

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled is returned when the context is cancelled while the
	// request is outstanding.
	ErrCancelled = errors.New("chat completion request cancelled")

	// ErrAlreadyRun is returned by every Run call after the first.
	ErrAlreadyRun = errors.New("enricher already ran")
)

// RequestFailure reports a failed chat completion request. StatusCode is 0
// when no HTTP response was received.
type RequestFailure struct {
	StatusCode int
	Err        error
}

func (e *RequestFailure) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("chat completion request failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("chat completion request failed: %v", e.Err)
}

func (e *RequestFailure) Unwrap() error { return e.Err }
