package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/morphdb/morphdb/internal/ioconfig"
	"github.com/morphdb/morphdb/pkg/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
database:
  path: /tmp/custom.db
  batch_size: 250
log:
  level: debug
  format: text
`)

	result, err := ioconfig.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file", result.Source)
	assert.Equal(t, path, result.SourcePath)
	assert.Equal(t, "/tmp/custom.db", result.Config.Database.Path)
	assert.Equal(t, 250, result.Config.Database.BatchSize)
	assert.Equal(t, "debug", result.Config.Log.Level)
	assert.Equal(t, "text", result.Config.Log.Format)
	// Unset fields keep their defaults.
	assert.Equal(t, "file", result.Config.Log.Destination)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := ioconfig.Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "database: [not a map")
	_, err := ioconfig.Load(path)
	require.Error(t, err)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("MORPHDB_LOG_LEVEL", "warn")
	t.Setenv("MORPHDB_DATABASE_BATCH_SIZE", "100")

	path := writeConfig(t, "log:\n  level: debug\n")
	result, err := ioconfig.Load(path)
	require.NoError(t, err)

	// Environment variables win over the config file.
	assert.Equal(t, "warn", result.Config.Log.Level)
	assert.Equal(t, 100, result.Config.Database.BatchSize)
}

func TestLoadInvalidValuesKeepDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: loudest
  format: xml
`)

	result, err := ioconfig.Load(path)
	require.NoError(t, err)

	// Unknown enum values are rejected with a warning, not an error.
	assert.Equal(t, "info", result.Config.Log.Level)
	assert.Equal(t, "json", result.Config.Log.Format)
}

func TestValidateGeneratedConfig(t *testing.T) {
	path := writeConfig(t, templates.ConfigYAML)
	assert.NoError(t, ioconfig.ValidateGeneratedConfig(path))

	bad := writeConfig(t, ":\nnot yaml at all [")
	assert.Error(t, ioconfig.ValidateGeneratedConfig(bad))
}

func TestEmbeddedTemplateLoads(t *testing.T) {
	// The shipped template is all comments: loading it must produce
	// pure defaults.
	path := writeConfig(t, templates.ConfigYAML)
	result, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, result.Config.Database.BatchSize)
	assert.Equal(t, "info", result.Config.Log.Level)
}
