package db

import (
	"context"
	"database/sql"

	"github.com/morphdb/morphdb/pkg/config"
)

// Operator defines the interface for basic database management
// operations. It provides connection lifecycle management and exposes
// the *sql.DB handle for higher-level components (SchemaManager,
// Store, Searcher) to execute their specialized SQL internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
// - DB() lets components run transactions and raw FTS statements
// - Schema creation and migration are handled by GORM AutoMigrate via
//   SchemaManager
type Operator interface {
	// Connect opens the SQLite database file, creating it when absent.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database handle.
	Close() error

	// DB returns the underlying *sql.DB for higher-level components to
	// execute specialized SQL operations.
	DB() *sql.DB

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables, including the derived search
	// index. Used during schema initialization when overwriting
	// existing data.
	DropAllTables(ctx context.Context) error
}
