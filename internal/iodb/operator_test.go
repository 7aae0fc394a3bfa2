package iodb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/iotesting"
	"github.com/morphdb/morphdb/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectCreatesDatabaseFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbCfg := config.DatabaseConfig{
		Path: filepath.Join(dir, "nested", "morphdb.db"),
	}

	op := iodb.NewSqliteOperator()
	require.NoError(t, op.Connect(ctx, &dbCfg))
	defer op.Close()

	// Missing parent directories are created on the way.
	_, err := os.Stat(dbCfg.Path)
	require.NoError(t, err)
	require.NotNil(t, op.DB())
}

func TestNotConnected(t *testing.T) {
	op := iodb.NewSqliteOperator()
	assert.Nil(t, op.DB())
	assert.NoError(t, op.Close(), "closing an unconnected operator is a no-op")
}

func TestTableChecks(t *testing.T) {
	ctx := context.Background()
	cfg := iotesting.GetTestConfig(t)

	op := iodb.NewSqliteOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has, "fresh database has no tables")

	exists, err := op.TableExists(ctx, "species")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = op.DB().ExecContext(ctx,
		`CREATE TABLE species (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)

	has, err = op.HasTables(ctx)
	require.NoError(t, err)
	assert.True(t, has)

	exists, err = op.TableExists(ctx, "species")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDropAllTables(t *testing.T) {
	ctx := context.Background()
	op, _ := iotesting.SetupDB(t)

	require.NoError(t, op.DropAllTables(ctx))

	has, err := op.HasTables(ctx)
	require.NoError(t, err)
	assert.False(t, has, "all tables including the search index are dropped")
}
