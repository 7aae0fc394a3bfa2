// Package ioschema implements SchemaManager interface for database
// schema management. This is an impure I/O package that wraps GORM
// AutoMigrate functionality plus a raw-SQL step for the FTS5 search
// index.
package ioschema

import (
	"context"

	"github.com/morphdb/morphdb/pkg/config"
	"github.com/morphdb/morphdb/pkg/db"
	"github.com/morphdb/morphdb/pkg/lifecycle"
	"github.com/morphdb/morphdb/pkg/schema"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create creates the initial database schema using GORM AutoMigrate,
// then creates the derived FTS5 search index. Virtual tables are
// outside GORM's model language, so the index is raw DDL.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	// Run GORM AutoMigrate to create schema
	if err := schema.Migrate(gormDB); err != nil {
		return CreateSchemaError(err)
	}

	// Create the derived search index and secondary indexes
	if err := m.createSearchIndex(ctx); err != nil {
		return err
	}

	return nil
}

// Migrate updates the database schema to the latest version
// using GORM AutoMigrate.
func (m *manager) Migrate(
	ctx context.Context,
	cfg *config.Config,
) error {
	gormDB, err := m.gormDB()
	if err != nil {
		return err
	}

	// Run GORM AutoMigrate
	if err := schema.Migrate(gormDB); err != nil {
		return MigrateSchemaError(err)
	}

	// Idempotent: CREATE ... IF NOT EXISTS throughout
	if err := m.createSearchIndex(ctx); err != nil {
		return err
	}

	return nil
}

// gormDB wraps the operator's connection with GORM. The dialector
// reuses the modernc driver connection instead of opening a second,
// cgo-based one.
func (m *manager) gormDB() (*gorm.DB, error) {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return nil, NotConnectedError()
	}

	gormDB, err := gorm.Open(
		sqlite.Dialector{Conn: sqlDB},
		&gorm.Config{},
	)
	if err != nil {
		return nil, GORMConnectionError(err)
	}

	return gormDB, nil
}

// createSearchIndex creates the FTS5 virtual table mirroring the
// species text columns, and secondary lookup indexes.
func (m *manager) createSearchIndex(ctx context.Context) error {
	sqlDB := m.operator.DB()
	if sqlDB == nil {
		return NotConnectedError()
	}

	for _, ddl := range schema.SearchIndexDDL() {
		if _, err := sqlDB.ExecContext(ctx, ddl); err != nil {
			return SearchIndexError(err)
		}
	}

	return nil
}
