package screen

import (
	"fmt"
	"time"
)

// LocatorError indicates that a query found no element, or more than one where exactly one was
// required.
type LocatorError struct {
	Query   string
	Matches int
	Tree    string
}

// Error implements the error interface
func (e *LocatorError) Error() string {
	if e.Matches == 0 {
		return fmt.Sprintf("unable to find an element %s\n%s", e.Query, e.Tree)
	}
	return fmt.Sprintf("found %d elements %s, expected exactly one\n%s", e.Matches, e.Query, e.Tree)
}

// NewLocatorError creates a new LocatorError
func NewLocatorError(query string, matches int, elements []Element) *LocatorError {
	return &LocatorError{Query: query, Matches: matches, Tree: PrettyTree(elements)}
}

// TimeoutError indicates that a bounded wait expired. Cause is the last error returned by the
// condition being waited for.
type TimeoutError struct {
	What    string
	Timeout time.Duration
	Cause   error
}

// Error implements the error interface
func (e *TimeoutError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("timed out after %s waiting for %s: %v", e.Timeout, e.What, e.Cause)
	}
	return fmt.Sprintf("timed out after %s waiting for %s", e.Timeout, e.What)
}

// Unwrap returns the underlying error
func (e *TimeoutError) Unwrap() error {
	return e.Cause
}

// DisabledError is returned when a click targets a disabled element.
type DisabledError struct {
	Element Element
}

// Error implements the error interface
func (e *DisabledError) Error() string {
	return fmt.Sprintf("cannot interact with disabled element: %s", e.Element)
}
