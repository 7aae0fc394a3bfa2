package config_test

import (
	"path/filepath"
	"testing"

	"github.com/morphdb/morphdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "morphdb"),
		},
		{
			msg: "data dir",
			fn:  config.DataDir,
			res: filepath.Join(tempHome, ".local", "share", "morphdb"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "morphdb", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "morphdb", "config.yaml"),
		},
		{
			msg: "database file",
			fn:  config.DatabasePath,
			res: filepath.Join(tempHome, ".local", "share", "morphdb", "morphdb.db"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		// Database defaults; path is resolved by the CLI at startup
		assert.Equal(t, "", cfg.Database.Path)
		assert.Equal(t, 500, cfg.Database.BatchSize)

		// Log defaults
		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		// Runtime-only fields start unset
		assert.Nil(t, cfg.Import.RangeLowerBound)
		assert.Equal(t, "", cfg.HomeDir)
	})
}

func TestOptionDatabasePath(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "sets valid path",
			input:    "/tmp/morphdb.db",
			expected: "/tmp/morphdb.db",
		},
		{
			name:     "trims whitespace",
			input:    "  /tmp/morphdb.db  ",
			expected: "/tmp/morphdb.db",
		},
		{
			name:     "ignores empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabasePath(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.Path)
		})
	}
}

func TestOptionDatabaseBatchSize(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{"sets valid size", 1000, 1000},
		{"ignores zero", 0, 500},
		{"ignores negative", -10, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDatabaseBatchSize(tt.input)})
			assert.Equal(t, tt.expected, cfg.Database.BatchSize)
		})
	}
}

func TestOptionLogEnums(t *testing.T) {
	tests := []struct {
		name   string
		opt    config.Option
		verify func(t *testing.T, cfg *config.Config)
	}{
		{
			name: "sets valid level",
			opt:  config.OptLogLevel("debug"),
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "debug", cfg.Log.Level)
			},
		},
		{
			name: "normalizes case",
			opt:  config.OptLogLevel("WARN"),
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "warn", cfg.Log.Level)
			},
		},
		{
			name: "ignores unknown level",
			opt:  config.OptLogLevel("verbose"),
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "info", cfg.Log.Level)
			},
		},
		{
			name: "sets valid format",
			opt:  config.OptLogFormat("tint"),
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "tint", cfg.Log.Format)
			},
		},
		{
			name: "ignores unknown format",
			opt:  config.OptLogFormat("xml"),
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "json", cfg.Log.Format)
			},
		},
		{
			name: "sets valid destination",
			opt:  config.OptLogDestination("stderr"),
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "stderr", cfg.Log.Destination)
			},
		},
		{
			name: "ignores unknown destination",
			opt:  config.OptLogDestination("syslog"),
			verify: func(t *testing.T, cfg *config.Config) {
				assert.Equal(t, "file", cfg.Log.Destination)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			tt.verify(t, cfg)
		})
	}
}

func TestOptionImportRangeLowerBound(t *testing.T) {
	cfg := config.New()
	require.Nil(t, cfg.Import.RangeLowerBound)

	cfg.Update([]config.Option{config.OptImportRangeLowerBound(nil)})
	assert.Nil(t, cfg.Import.RangeLowerBound, "nil leaves the field unset")

	v := false
	cfg.Update([]config.Option{config.OptImportRangeLowerBound(&v)})
	require.NotNil(t, cfg.Import.RangeLowerBound)
	assert.False(t, *cfg.Import.RangeLowerBound)
}

func TestToOptionsRoundTrip(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptDatabasePath("/tmp/morphdb.db"),
		config.OptDatabaseBatchSize(250),
		config.OptLogLevel("debug"),
		config.OptHomeDir("/home/someone"),
	})

	clone := config.New()
	clone.Update(cfg.ToOptions())

	assert.Equal(t, cfg.Database, clone.Database)
	assert.Equal(t, cfg.Log, clone.Log)

	// Runtime-only fields do not round-trip.
	assert.Equal(t, "", clone.HomeDir)
}
