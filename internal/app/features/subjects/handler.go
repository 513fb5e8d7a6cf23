// internal/app/features/subjects/handler.go
package subjects

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	subjectclient "github.com/dalemusser/pulsehub/internal/app/remote/subjects"
)

// Handler is the feature-level entry point for Subjects.
type Handler struct {
	Subjects *subjectclient.Client
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a Subjects handler bound to the platform client.
func NewHandler(subjects *subjectclient.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Subjects: subjects,
		ErrLog:   errLog,
		Log:      logger,
	}
}
