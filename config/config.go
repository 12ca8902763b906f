package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// It is composed of smaller structs that represent different concerns of
// the system: the HTTP server, the upstream stock API, and the dashboard
// behavior knobs.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	UPSTREAM_BASE_URL=http://localhost:8000
//	UPSTREAM_TIMEOUT_MS=15000
//	SEARCH_DEBOUNCE_MS=150
//	ZOOM_THRESHOLD=50
//	LIVE_REFRESH_SECONDS=30
//	BREAKER_ENABLED=false
type Config struct {
	Server    ServerConfig    // HTTP server configuration
	Upstream  UpstreamConfig  // external stock API connection settings
	Dashboard DashboardConfig // dashboard behavior knobs
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// UpstreamConfig defines how to reach the external stock API.
//
// Fields:
//   - BaseURL: root of the upstream API (e.g., "http://localhost:8000").
//   - Timeout: per-request timeout for upstream fetches.
//   - BreakerEnabled: wrap the client in a circuit breaker when true.
type UpstreamConfig struct {
	BaseURL        string
	Timeout        time.Duration
	BreakerEnabled bool
}

// DashboardConfig tunes the dashboard state machine.
//
// Fields:
//   - SearchDebounce: quiet period before a suggestion fetch is issued.
//   - ZoomThreshold: pinch distance change required for one window step.
//   - LiveRefresh: interval for live price refresh; 0 disables it.
type DashboardConfig struct {
	SearchDebounce time.Duration
	ZoomThreshold  float64
	LiveRefresh    time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and read throughout the
// application instead of consulting environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from a .env
// file or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() terminates the
//     app with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("UPSTREAM_BASE_URL", "http://localhost:8000")
	viper.SetDefault("UPSTREAM_TIMEOUT_MS", 15000)
	viper.SetDefault("BREAKER_ENABLED", false)

	viper.SetDefault("SEARCH_DEBOUNCE_MS", 150)
	viper.SetDefault("ZOOM_THRESHOLD", 50.0)
	viper.SetDefault("LIVE_REFRESH_SECONDS", 30)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        viper.GetString("UPSTREAM_BASE_URL"),
			Timeout:        time.Duration(viper.GetInt("UPSTREAM_TIMEOUT_MS")) * time.Millisecond,
			BreakerEnabled: viper.GetBool("BREAKER_ENABLED"),
		},
		Dashboard: DashboardConfig{
			SearchDebounce: time.Duration(viper.GetInt("SEARCH_DEBOUNCE_MS")) * time.Millisecond,
			ZoomThreshold:  viper.GetFloat64("ZOOM_THRESHOLD"),
			LiveRefresh:    time.Duration(viper.GetInt("LIVE_REFRESH_SECONDS")) * time.Second,
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing, avoiding unexpected runtime
// failures due to incomplete configuration.
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Upstream.BaseURL == "" {
		missing = append(missing, "UPSTREAM_BASE_URL")
	}
	if AppConfig.Upstream.Timeout <= 0 {
		missing = append(missing, "UPSTREAM_TIMEOUT_MS")
	}
	if AppConfig.Dashboard.SearchDebounce <= 0 {
		missing = append(missing, "SEARCH_DEBOUNCE_MS")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}
