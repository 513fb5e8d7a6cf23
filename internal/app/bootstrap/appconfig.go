// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: WAFFLE's CoreConfig handles
// framework-level settings like HTTP ports, TLS, logging level, and request
// limits.
//
// AppConfig is where everything specific to this relay lives: how to reach
// the platform API and the screen-engine defaults handed to the admin client
// at boot. The struct is passed to most lifecycle hooks, so any configuration
// needed during startup, request handling, or shutdown should live here.
type AppConfig struct {
	// Platform API connection
	APIBaseURL string        // platform API base URL (e.g., http://localhost:9000)
	APIToken   string        // service bearer token; empty sends no Authorization header
	APITimeout time.Duration // per-request ceiling on outbound platform calls

	// Screen-engine defaults served to the admin client
	PageSize       int           // default list page size
	SearchDebounce time.Duration // debounce window for search-as-you-type fetches

	// Notification polling
	NotifyPollInterval time.Duration // background poll cadence for the unread badge
	NotifyRecentLimit  int           // notifications kept in the panel snapshot
}
