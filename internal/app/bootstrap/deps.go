// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/dalemusser/pulsehub/internal/app/remote"
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

// Deps holds the back-end dependencies for the app: the shared platform API
// handle, the per-resource clients built on it, and the notification poller
// whose lifecycle Startup and Shutdown own.
type Deps struct {
	API *remote.Client

	Analytics     *analyticsclient.Client
	Announcements *announcementclient.Client
	Departments   *departmentclient.Client
	Feedback      *feedbackclient.Client
	Notifications *notificationclient.Client
	Staff         *staffclient.Client
	Students      *studentclient.Client
	Subjects      *subjectclient.Client

	Poller *workers.NotificationPoller
}
