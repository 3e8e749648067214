// Package config provides configuration management for pbpkit.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
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
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - Enrich.InputPath, OutputPath, Store, Historical (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PBPKIT_ prefix with underscores for nesting:
//
//	PBPKIT_DATABASE_HOST=localhost
//	PBPKIT_DATABASE_PORT=5432
//	PBPKIT_LOG_LEVEL=info
//	PBPKIT_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete pbpkit configuration.
type Config struct {
	// Database contains PostgreSQL connection settings for the optional
	// enriched-plays store.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Enrich contains settings specific to the enrich command.
	Enrich EnrichConfig `mapstructure:"enrich" yaml:"enrich"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers for parallel
	// operations (reference-dataset fetches).
	// Default value is set according to the number of available threads.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize defines the number of enriched plays inserted per batch.
	// Larger batches are faster but use more memory.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// EnrichConfig contains settings specific to the enrich command.
type EnrichConfig struct {
	// InputPath is the play-by-play CSV file to enrich.
	// Runtime-only: supplied by CLI flag or positional argument.
	InputPath string `mapstructure:"input_path" yaml:"input_path"`

	// OutputPath is where the enriched CSV is written.
	// Empty means input path with an "_enriched" suffix.
	// Runtime-only field.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`

	// Store is true when enriched plays should also be bulk-inserted
	// into PostgreSQL. Runtime-only field.
	Store bool `mapstructure:"store" yaml:"store"`

	// Historical selects the game-metadata join mode. Historical data
	// joins on game_id; live-era data joins on the old game identifier
	// and swaps the identifier naming after the join.
	// Uses pointer to distinguish between unset (nil) and false.
	Historical *bool `mapstructure:"historical" yaml:"historical"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
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
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "pbp",
			SSLMode:   "disable",
			BatchSize: 10_000, // Batch size for bulk inserts of enriched plays
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(), // Default to number of CPU threads
	}

	return res
}
