// Package config provides configuration management for acervo.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - API: base_url, timeout
//   - Web: addr
//   - Log: level, format, destination
//
// Runtime-only fields:
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use ACERVO_ prefix with underscores for nesting:
//
//	ACERVO_API_BASE_URL=http://127.0.0.1:8000
//	ACERVO_API_TIMEOUT=10
//	ACERVO_WEB_ADDR=127.0.0.1:8080
//	ACERVO_LOG_LEVEL=info
//
// A .env file in the working directory is read before the environment is
// consulted. Variables already set in the environment win over the file.
package config

// Config represents the complete acervo configuration.
type Config struct {
	// API contains settings of the plant catalog backend.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Web contains settings of the browser UI served by 'acervo serve'.
	Web WebConfig `mapstructure:"web" yaml:"web"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// APIConfig describes how to reach the REST backend.
type APIConfig struct {
	// BaseURL is the root of the backend, plant resources live under
	// {BaseURL}/plantas/.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`

	// Timeout in seconds for a single request. Zero means no timeout is
	// enforced by the client, defaults of the HTTP stack apply.
	Timeout int `mapstructure:"timeout" yaml:"timeout"`
}

// WebConfig contains settings of the local web UI.
type WebConfig struct {
	// Addr is the host:port the UI listens on.
	Addr string `mapstructure:"addr" yaml:"addr"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		API: APIConfig{
			BaseURL: "http://127.0.0.1:8000",
		},
		Web: WebConfig{
			Addr: "127.0.0.1:8080",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}
