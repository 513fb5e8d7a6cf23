// internal/app/features/feedback/handler.go
package feedback

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	feedbackclient "github.com/dalemusser/pulsehub/internal/app/remote/feedback"
)

// Handler is the feature-level entry point for Feedback moderation.
// Feedback is authored by students upstream; this surface lists, inspects,
// and removes it.
type Handler struct {
	Feedback *feedbackclient.Client
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a Feedback handler bound to the platform client.
func NewHandler(feedback *feedbackclient.Client, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Feedback: feedback,
		ErrLog:   errLog,
		Log:      logger,
	}
}
