package mocknet

import (
	"fmt"
	"time"
)

// UnmatchedRequestError is recorded when a request reaches the registry and no route matches
// its method and path.
type UnmatchedRequestError struct {
	Method string
	URL    string
}

// Error implements the error interface
func (e *UnmatchedRequestError) Error() string {
	return fmt.Sprintf("no mock handler matched %s %s", e.Method, e.URL)
}

// NewUnmatchedRequestError creates a new UnmatchedRequestError
func NewUnmatchedRequestError(method, url string) *UnmatchedRequestError {
	return &UnmatchedRequestError{Method: method, URL: url}
}

// CaptureTimeoutError indicates that a capture cell stayed empty for the whole wait.
type CaptureTimeoutError struct {
	Route   string
	Timeout time.Duration
}

// Error implements the error interface
func (e *CaptureTimeoutError) Error() string {
	return fmt.Sprintf("timed out after %s waiting for a request to %s", e.Timeout, e.Route)
}
