// Package ioconfig provides I/O operations for loading configuration
// from files and environment. This is an impure package that handles
// file system operations.
package ioconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/morphdb/morphdb/pkg/config"
	"github.com/spf13/viper"
)

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and returns a validated
// Config with source info. If configPath is empty, it uses the
// default location (~/.config/morphdb/config.yaml). Returns error if
// an explicitly given file is missing or malformed.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	// Enable environment variable overrides
	// Precedence: flags > env vars > config file > defaults
	v.SetEnvPrefix("MORPHDB")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults BEFORE reading config - this allows env vars to
	// work with AutomaticEnv() even when no config file exists.
	defaults := config.New()
	v.SetDefault("database.path", defaults.Database.Path)
	v.SetDefault("database.batch_size", defaults.Database.BatchSize)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("log.destination", defaults.Log.Destination)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		defaultPath, err := GetDefaultConfigPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				v.SetConfigFile(defaultPath)
			}
		}
		// With no config file viper serves defaults + env vars.
	}

	configFileRead := false
	usedConfigPath := ""

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if configPath != "" {
				return nil, fmt.Errorf("config file not found: %s", configPath)
			}
		} else if configPath == "" && os.IsNotExist(err) {
			// Default location disappeared between Stat and read.
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileRead = true
		usedConfigPath = v.ConfigFileUsed()
	}

	// Build the config through Option functions so invalid values are
	// rejected with warnings instead of corrupting the state.
	cfg := config.New()
	var opts []config.Option
	if s := v.GetString("database.path"); s != "" {
		opts = append(opts, config.OptDatabasePath(s))
	}
	if i := v.GetInt("database.batch_size"); i > 0 {
		opts = append(opts, config.OptDatabaseBatchSize(i))
	}
	if s := v.GetString("log.level"); s != "" {
		opts = append(opts, config.OptLogLevel(s))
	}
	if s := v.GetString("log.format"); s != "" {
		opts = append(opts, config.OptLogFormat(s))
	}
	if s := v.GetString("log.destination"); s != "" {
		opts = append(opts, config.OptLogDestination(s))
	}
	cfg.Update(opts)

	source := "defaults"
	if configFileRead {
		source = "file"
	} else if hasEnvVars() {
		source = "defaults+env"
	}

	return &LoadResult{
		Config:     cfg,
		SourcePath: usedConfigPath,
		Source:     source,
	}, nil
}

// hasEnvVars reports whether any MORPHDB_ environment variable is set.
func hasEnvVars() bool {
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "MORPHDB_") {
			return true
		}
	}
	return false
}
