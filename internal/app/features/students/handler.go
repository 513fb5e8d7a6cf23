// internal/app/features/students/handler.go
package students

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	studentclient "github.com/dalemusser/pulsehub/internal/app/remote/students"
)

// Handler is the feature-level entry point for Students.
type Handler struct {
	Students *studentclient.Client
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a Students handler bound to the platform client.
func NewHandler(students *studentclient.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Students: students,
		ErrLog:   errLog,
		Log:      logger,
	}
}
