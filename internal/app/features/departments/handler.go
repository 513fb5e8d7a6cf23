// internal/app/features/departments/handler.go
package departments

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	departmentclient "github.com/dalemusser/pulsehub/internal/app/remote/departments"
)

// Handler is the feature-level entry point for Departments.
type Handler struct {
	Depts  *departmentclient.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Departments handler bound to the platform client.
func NewHandler(depts *departmentclient.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Depts:  depts,
		ErrLog: errLog,
		Log:    logger,
	}
}
