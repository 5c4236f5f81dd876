// Package config resolves process configuration: environment variables
// for secrets and addresses, plus an optional TOML file for the display
// settings, which can be hot-reloaded while the service runs.
package config

import "os"

// Config is the process configuration, resolved once at startup and
// passed explicitly to the components that need it.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string

	// CalendarID is the boardroom calendar to list. Its absence is a
	// request-time listing error, not a startup failure, so the page can
	// still serve its static links.
	CalendarID string

	// ServiceAccountJSON is an optional base64-encoded service-account
	// key file. Takes precedence over the discrete fields below.
	ServiceAccountJSON string

	// ClientEmail and PrivateKey are the discrete credential fields.
	ClientEmail string
	PrivateKey  string

	// DisplayConfigPath points at the optional display TOML file.
	DisplayConfigPath string

	// LogLevel, LogFormat, and LogFile configure the logger.
	LogLevel  string
	LogFormat string
	LogFile   string
}

// Load resolves configuration from the environment.
func Load() Config {
	return Config{
		Addr:               envOr("BOARDROOM_ADDR", ":8080"),
		CalendarID:         os.Getenv("GOOGLE_CALENDAR_ID"),
		ServiceAccountJSON: os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"),
		ClientEmail:        os.Getenv("GOOGLE_CLIENT_EMAIL"),
		PrivateKey:         os.Getenv("GOOGLE_PRIVATE_KEY"),
		DisplayConfigPath:  os.Getenv("BOARDROOM_DISPLAY_CONFIG"),
		LogLevel:           envOr("LOG_LEVEL", "info"),
		LogFormat:          envOr("LOG_FORMAT", "console"),
		LogFile:            os.Getenv("LOG_FILE"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
