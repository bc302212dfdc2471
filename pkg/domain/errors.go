package domain

import (
	"errors"
	"fmt"
)

// Common domain errors
var (
	// ErrInvalidPayload is returned when the upstream response envelope is
	// malformed, the payload node is missing, or a field cannot be parsed
	// into its strict representation.
	ErrInvalidPayload = errors.New("invalid upstream payload")
	// ErrRecordNotFound is returned when the upstream reported no value
	// where one was expected.
	ErrRecordNotFound = errors.New("record not found")
)

// UpstreamError reports a failed upstream exchange: a transport failure
// (StatusCode zero) or a non-2xx response. The upstream message is
// preserved verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream call failed: %s", e.Message)
}
