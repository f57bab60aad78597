package api

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable means the request produced no HTTP response at all
	// (DNS failure, connection refused, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized means the server rejected the request with 401.
	// The gateway has already performed session revocation when a caller
	// observes this error.
	ErrUnauthorized = errors.New("authorization expired")
)

// StatusError is returned for any non-2xx response other than 401.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: unexpected status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}
