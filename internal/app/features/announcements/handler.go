// internal/app/features/announcements/handler.go
package announcements

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	announcementclient "github.com/dalemusser/pulsehub/internal/app/remote/announcements"
)

// Handler is the feature-level entry point for Announcements.
type Handler struct {
	Anns   *announcementclient.Client
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an Announcements handler bound to the platform
// client.
func NewHandler(anns *announcementclient.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Anns:   anns,
		ErrLog: errLog,
		Log:    logger,
	}
}
