package config

import "time"

const (
	// envRapidAPIKey is the credential name used by older deployments.
	envRapidAPIKey = "RAPIDAPI_KEY"

	defaultPort          = "5174"
	defaultTank01Host    = "tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"
	defaultTank01Timeout = 12 * Duration(time.Second)
	defaultESPNSiteURL   = "https://site.api.espn.com"
	defaultESPNWebURL    = "https://site.web.api.espn.com"
	defaultESPNTimeout   = 10 * Duration(time.Second)
	defaultMetricsPort   = "9090"
	defaultServiceName   = "scoreboard-relay"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatText = "text"
	LogFormatJSON = "json"
)
