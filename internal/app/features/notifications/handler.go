// internal/app/features/notifications/handler.go
package notifications

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	notificationclient "github.com/dalemusser/pulsehub/internal/app/remote/notifications"
	"github.com/dalemusser/pulsehub/internal/app/system/workers"
)

// Handler is the feature-level entry point for Notifications. Panel reads
// come from the background poller's snapshot when one is running; marking
// read proxies to the platform and nudges the poller so the badge does not
// lag a full interval.
type Handler struct {
	Notifs *notificationclient.Client
	Poller *workers.NotificationPoller
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs a Notifications handler. Poller may be nil, in which
// case every panel read fetches directly.
func NewHandler(notifs *notificationclient.Client, poller *workers.NotificationPoller, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Notifs: notifs,
		Poller: poller,
		ErrLog: errLog,
		Log:    logger,
	}
}
