package supabase

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the backend could not be reached at all.
	ErrUnavailable = errors.New("backend unavailable")
	// ErrUnauthenticated indicates an operation that needs a valid session
	// was attempted without one.
	ErrUnauthenticated = errors.New("not authenticated")
)

// APIError carries the backend's own error message for a non-2xx response.
// The auth error classifier matches on Message substrings.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}
