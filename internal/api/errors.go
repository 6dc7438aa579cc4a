package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks a network-level failure: the backend could not be
// reached even after the warm-up retry. Match with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// Error is an HTTP-level failure: the backend answered with a non-2xx status.
// Detail carries the human-readable message from the response body's "detail"
// field when the backend provided one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("api: request failed with status %d", e.StatusCode)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not an
// HTTP-level failure.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
