// internal/app/bootstrap/platform.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

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

// ConnectDB builds the platform API client, verifies the platform is
// reachable, and assembles the per-resource clients plus the notification
// poller. The relay's backend is the platform API; this hook is its
// connect-and-ping.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	api, err := remote.New(remote.Config{
		BaseURL: appCfg.APIBaseURL,
		Token:   appCfg.APIToken,
		Timeout: appCfg.APITimeout,
	}, logger)
	if err != nil {
		return Deps{}, err
	}

	if err := api.Ping(ctx); err != nil {
		logger.Error("platform API unreachable",
			zap.String("base_url", appCfg.APIBaseURL),
			zap.Error(err))
		return Deps{}, fmt.Errorf("ping platform API: %w", err)
	}
	logger.Info("connected to platform API", zap.String("base_url", appCfg.APIBaseURL))

	notifs := notificationclient.New(api)

	return Deps{
		API: api,

		Analytics:     analyticsclient.New(api),
		Announcements: announcementclient.New(api),
		Departments:   departmentclient.New(api),
		Feedback:      feedbackclient.New(api),
		Notifications: notifs,
		Staff:         staffclient.New(api),
		Students:      studentclient.New(api),
		Subjects:      subjectclient.New(api),

		Poller: workers.NewNotificationPoller(notifs, logger, appCfg.NotifyPollInterval, appCfg.NotifyRecentLimit),
	}, nil
}

// EnsureSchema is part of the WAFFLE lifecycle; the platform owns its own
// schema, so there is nothing to set up on this side.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
