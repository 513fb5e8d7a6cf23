// internal/app/features/dashboard/handler.go
package dashboard

import (
	"go.uber.org/zap"

	uierrors "github.com/dalemusser/pulsehub/internal/app/features/errors"
	analyticsclient "github.com/dalemusser/pulsehub/internal/app/remote/analytics"
	announcementclient "github.com/dalemusser/pulsehub/internal/app/remote/announcements"
	departmentclient "github.com/dalemusser/pulsehub/internal/app/remote/departments"
	feedbackclient "github.com/dalemusser/pulsehub/internal/app/remote/feedback"
	notificationclient "github.com/dalemusser/pulsehub/internal/app/remote/notifications"
	staffclient "github.com/dalemusser/pulsehub/internal/app/remote/staff"
	studentclient "github.com/dalemusser/pulsehub/internal/app/remote/students"
	subjectclient "github.com/dalemusser/pulsehub/internal/app/remote/subjects"
	"github.com/dalemusser/pulsehub/internal/app/system/workers"
)

// Clients bundles the platform clients the dashboards compose. The dashboard
// is the one surface that reads across most of the API, so construction takes
// the bundle rather than a parade of positional arguments.
type Clients struct {
	Analytics *analyticsclient.Client
	Depts     *departmentclient.Client
	Subjects  *subjectclient.Client
	Staff     *staffclient.Client
	Students  *studentclient.Client
	Feedback  *feedbackclient.Client
	Anns      *announcementclient.Client
	Notifs    *notificationclient.Client
}

type Handler struct {
	Clients
	Poller *workers.NotificationPoller
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler builds the dashboard handler. Poller may be nil; the unread
// badge then falls back to a direct summary fetch.
func NewHandler(c Clients, poller *workers.NotificationPoller, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Clients: c,
		Poller:  poller,
		ErrLog:  errLog,
		Log:     logger,
	}
}
