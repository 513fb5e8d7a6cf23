// internal/app/features/errors/errorlog.go
package errors

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/remote"
)

// ErrorLogger pairs server-side error logging with the user-facing
// envelope: handlers report a failure once and both sides are served.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger over the given logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ErrorLogger{log: logger}
}

// LogServerError logs internal detail for err and writes the envelope. The
// status and code derive from the error taxonomy; when the platform sent a
// display-ready message (duplicate name, validation detail) it replaces
// userMsg so the presenter sees the specific reason.
func (el *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, internal string, err error, userMsg string) {
	status := StatusFor(err)
	el.log.Error(internal,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
	)

	msg := userMsg
	if apiErr, ok := remote.AsAPIError(err); ok && apiErr.Message != "" {
		msg = apiErr.Message
	}
	Write(w, status, msg, CodeFor(err))
}

// LogBadRequest logs a malformed-request failure and writes a 400 envelope.
func (el *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, internal string, err error, userMsg string) {
	el.log.Warn(internal,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	Write(w, http.StatusBadRequest, userMsg, "badRequest")
}
