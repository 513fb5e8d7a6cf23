// internal/app/remote/errors.go
package remote

import (
	"errors"
	"fmt"
)

// Sentinel errors for platform responses that callers branch on. Anything
// else surfaces as an *APIError or a wrapped transport error.
var (
	ErrNotFound     = errors.New("record not found")
	ErrUnauthorized = errors.New("platform rejected credentials")
	ErrForbidden    = errors.New("operation not permitted")
	ErrUnavailable  = errors.New("platform unavailable")
)

// APIError is a structured rejection from the platform: validation
// failures, duplicate names, and similar 4xx responses that carry a
// message worth showing to the user.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("platform rejected request: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("platform rejected request: %s", e.Message)
}

// IsNotFound reports whether err means the record no longer exists.
// List reconciliation treats this as "someone else deleted it".
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnavailable reports whether err is a transport failure or a 5xx,
// i.e. retrying later may succeed.
func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}

// AsAPIError unwraps a structured platform rejection if err carries one.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
