// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/dalemusser/pulsehub/internal/app/remote"
	"github.com/dalemusser/pulsehub/internal/app/system/paging"
)

// appConfigKeys defines the configuration keys for PulseHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: api_base_url, page_size, etc.
//   - Environment variables: PULSEHUB_API_BASE_URL, PULSEHUB_PAGE_SIZE, etc.
//   - Command-line flags: --api_base_url, --page_size, etc.
var appConfigKeys = []config.AppKey{
	{Name: "api_base_url", Default: "http://localhost:9000", Desc: "Platform API base URL"},
	{Name: "api_token", Default: "", Desc: "Service bearer token for platform API calls"},
	{Name: "api_timeout", Default: "10s", Desc: "Per-request ceiling on platform calls (e.g., 10s, 1m)"},

	// Screen-engine defaults handed to the admin client at boot
	{Name: "page_size", Default: paging.DefaultPageSize, Desc: "Default list page size"},
	{Name: "search_debounce", Default: "300ms", Desc: "Debounce window for search-as-you-type fetches"},

	// Notification polling
	{Name: "notify_poll_interval", Default: "30s", Desc: "Background poll cadence for the unread badge"},
	{Name: "notify_recent_limit", Default: 10, Desc: "Notifications kept in the panel snapshot"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PULSEHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PULSEHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		APIBaseURL: appValues.String("api_base_url"),
		APIToken:   appValues.String("api_token"),
		APITimeout: appValues.Duration("api_timeout", 10*time.Second),

		PageSize:       appValues.Int("page_size"),
		SearchDebounce: appValues.Duration("search_debounce", 300*time.Millisecond),

		NotifyPollInterval: appValues.Duration("notify_poll_interval", 30*time.Second),
		NotifyRecentLimit:  appValues.Int("notify_recent_limit"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// PulseHub validates the platform base URL and the page size here so
// configuration errors surface before the first request.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := remote.ValidateBaseURL(appCfg.APIBaseURL); err != nil {
		logger.Error("invalid platform API base URL", zap.Error(err))
		return err
	}

	if !paging.IsValidPageSize(appCfg.PageSize) {
		return fmt.Errorf("page_size %d is not one of the allowed sizes %v", appCfg.PageSize, paging.PageSizes)
	}

	if appCfg.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive, got %s", appCfg.APITimeout)
	}

	return nil
}
