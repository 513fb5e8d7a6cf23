// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down background work. The poller's Stop waits for
// an in-flight poll to finish, so teardown is deterministic.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if deps.Poller != nil {
		logger.Info("stopping notification poller")
		deps.Poller.Stop()
	}
	return nil
}
