// Package iotesting provides shared test utilities for integration
// tests. This is an internal package for test infrastructure only.
package iotesting

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/ioschema"
	"github.com/morphdb/morphdb/pkg/config"
	"github.com/morphdb/morphdb/pkg/db"
	"github.com/stretchr/testify/require"
)

// GetTestConfig returns a configuration pointing at a throwaway
// SQLite file under t.TempDir(). Each test gets its own database
// file, so tests never touch the real catalog and need no cleanup.
func GetTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Database.Path = filepath.Join(t.TempDir(), "morphdb_test.db")
	return cfg
}

// SetupDB connects to a fresh test database and creates the schema,
// including the search index. The connection is closed automatically
// when the test finishes.
func SetupDB(t *testing.T) (db.Operator, *config.Config) {
	t.Helper()
	ctx := context.Background()
	cfg := GetTestConfig(t)

	op := iodb.NewSqliteOperator()
	err := op.Connect(ctx, &cfg.Database)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { op.Close() })

	sm := ioschema.NewManager(op)
	err = sm.Create(ctx, cfg)
	require.NoError(t, err, "Schema creation should succeed")

	return op, cfg
}
