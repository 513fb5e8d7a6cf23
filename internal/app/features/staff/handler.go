// internal/app/features/staff/handler.go
package staff

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	staffclient "github.com/dalemusser/pulsehub/internal/app/remote/staff"
)

// Handler is the feature-level entry point for Staff accounts.
type Handler struct {
	Staff  *staffclient.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Staff handler bound to the platform client.
func NewHandler(staff *staffclient.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Staff:  staff,
		ErrLog: errLog,
		Log:    logger,
	}
}
