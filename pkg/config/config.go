// Package config provides configuration management for MorphDB.
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
//   - Database: path, batch_size
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.RangeLowerBound (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use MORPHDB_ prefix with underscores for nesting:
//
//	MORPHDB_DATABASE_PATH=/tmp/morphdb.db
//	MORPHDB_DATABASE_BATCH_SIZE=500
//	MORPHDB_LOG_LEVEL=info
package config

// Config represents the complete MorphDB configuration.
type Config struct {
	// Database contains SQLite storage settings.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains SQLite storage parameters.
type DatabaseConfig struct {
	// Path is the location of the SQLite database file. When empty, the
	// CLI resolves it to DataDir(HomeDir)/morphdb.db.
	Path string `mapstructure:"path" yaml:"path"`

	// BatchSize defines the number of records to insert per transaction
	// during bulk import. Larger batches are faster but hold the write
	// lock longer.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// ImportConfig contains settings specific to the import command.
type ImportConfig struct {
	// RangeLowerBound controls how textual ranges like "3-8" in numeric
	// cells are collapsed. When true (default) only the lower bound is
	// kept, matching the historical behavior of the dataset. When
	// false, range cells import as NULL instead of a lossy value.
	RangeLowerBound *bool `mapstructure:"range_lower_bound" yaml:"range_lower_bound"`
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
		Database: DatabaseConfig{
			Path:      "",
			BatchSize: 500,
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
