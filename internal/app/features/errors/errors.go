// internal/app/features/errors/errors.go

// Package errors writes the relay's JSON error envelope and maps platform
// failures to relay status codes. Features import it as uierrors.
package errors

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/app/system/inputval"
)

// Detail is the user-facing half of a failure: a display message, a stable
// machine code, and per-field messages for validation failures.
type Detail struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Envelope is the relay's error response body.
type Envelope struct {
	Error Detail `json:"error"`
}

// Write sends an error envelope with the given status.
func Write(w http.ResponseWriter, status int, message, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Envelope{Error: Detail{Message: message, Code: code}})
}

// WriteValidation sends a 422 envelope carrying one message per failed
// field. The top-level message is the first failure, which is what inline
// form errors show.
func WriteValidation(w http.ResponseWriter, errs []inputval.FieldError) {
	fields := make(map[string]string, len(errs))
	message := "Invalid input."
	for i, fe := range errs {
		if i == 0 {
			message = fe.Message
		}
		if _, ok := fields[fe.Field]; !ok && fe.Field != "" {
			fields[fe.Field] = fe.Message
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	_ = json.NewEncoder(w).Encode(Envelope{Error: Detail{
		Message: message,
		Code:    "validation",
		Fields:  fields,
	}})
}

// StatusFor maps a platform-boundary error to the relay status the
// presenter sees. Upstream credential rejections surface as 502: from the
// presenter's side the relay failed to reach its backend, and the fix is
// operational, not theirs.
func StatusFor(err error) int {
	var apiErr *remote.APIError
	switch {
	case errors.Is(err, remote.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, remote.ErrUnauthorized), errors.Is(err, remote.ErrForbidden):
		return http.StatusBadGateway
	case errors.Is(err, remote.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &apiErr):
		return apiErr.Status
	default:
		return http.StatusInternalServerError
	}
}

// CodeFor maps a platform-boundary error to the envelope's machine code.
func CodeFor(err error) string {
	var apiErr *remote.APIError
	switch {
	case errors.Is(err, remote.ErrNotFound):
		return "notFound"
	case errors.Is(err, remote.ErrUnauthorized), errors.Is(err, remote.ErrForbidden):
		return "upstreamAuth"
	case errors.Is(err, remote.ErrUnavailable):
		return "unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.As(err, &apiErr):
		return apiErr.Code
	default:
		return ""
	}
}
