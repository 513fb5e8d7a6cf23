// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	announcementsfeature "github.com/dalemusser/pulsehub/internal/app/features/announcements"
	clientconfigfeature "github.com/dalemusser/pulsehub/internal/app/features/clientconfig"
	dashboardfeature "github.com/dalemusser/pulsehub/internal/app/features/dashboard"
	departmentsfeature "github.com/dalemusser/pulsehub/internal/app/features/departments"
	errorsfeature "github.com/dalemusser/pulsehub/internal/app/features/errors"
	feedbackfeature "github.com/dalemusser/pulsehub/internal/app/features/feedback"
	healthfeature "github.com/dalemusser/pulsehub/internal/app/features/health"
	notificationsfeature "github.com/dalemusser/pulsehub/internal/app/features/notifications"
	stafffeature "github.com/dalemusser/pulsehub/internal/app/features/staff"
	studentsfeature "github.com/dalemusser/pulsehub/internal/app/features/students"
	subjectsfeature "github.com/dalemusser/pulsehub/internal/app/features/subjects"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the platform connection, and any
// Startup hooks have completed. It mounts one feature router per relay
// surface: health, the client boot config, the resource screens, and the
// role dashboards.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Error logger shared by all relay handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators; also
	// reports platform reachability.
	healthHandler := healthfeature.NewHandler(deps.API, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Boot parameters for the admin client's screen engine.
	configHandler := clientconfigfeature.NewHandler(
		appCfg.PageSize, appCfg.SearchDebounce, appCfg.NotifyPollInterval, logger)
	r.Mount("/client-config", clientconfigfeature.Routes(configHandler))

	// Resource screens
	departmentsHandler := departmentsfeature.NewHandler(deps.Departments, errLog, logger)
	r.Mount("/departments", departmentsfeature.Routes(departmentsHandler))

	subjectsHandler := subjectsfeature.NewHandler(deps.Subjects, errLog, logger)
	r.Mount("/subjects", subjectsfeature.Routes(subjectsHandler))

	staffHandler := stafffeature.NewHandler(deps.Staff, errLog, logger)
	r.Mount("/staff", stafffeature.Routes(staffHandler))

	studentsHandler := studentsfeature.NewHandler(deps.Students, errLog, logger)
	r.Mount("/students", studentsfeature.Routes(studentsHandler))

	feedbackHandler := feedbackfeature.NewHandler(deps.Feedback, errLog, logger)
	r.Mount("/feedback", feedbackfeature.Routes(feedbackHandler))

	announcementsHandler := announcementsfeature.NewHandler(deps.Announcements, errLog, logger)
	r.Mount("/announcements", announcementsfeature.Routes(announcementsHandler))

	// Notification panel backed by the background poller.
	notificationsHandler := notificationsfeature.NewHandler(deps.Notifications, deps.Poller, errLog, logger)
	r.Mount("/notifications", notificationsfeature.Routes(notificationsHandler))

	// Role dashboards composing catalogs, aggregates, and announcements.
	dashboardHandler := dashboardfeature.NewHandler(dashboardfeature.Clients{
		Analytics: deps.Analytics,
		Depts:     deps.Departments,
		Subjects:  deps.Subjects,
		Staff:     deps.Staff,
		Students:  deps.Students,
		Feedback:  deps.Feedback,
		Anns:      deps.Announcements,
		Notifs:    deps.Notifications,
	}, deps.Poller, errLog, logger)
	r.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

	return r, nil
}
