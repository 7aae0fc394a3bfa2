package lifecycle

import (
	"context"

	"github.com/morphdb/morphdb/pkg/config"
)

// SchemaManager defines the interface for database schema management.
// It uses GORM AutoMigrate to handle both initial schema creation and
// migrations, plus a raw-SQL step for the derived search index.
// Schema management is idempotent - safe to run multiple times.
type SchemaManager interface {
	// Create creates the initial database schema using GORM
	// AutoMigrate and creates the derived FTS search index.
	Create(ctx context.Context, cfg *config.Config) error

	// Migrate updates the database schema to the latest version using
	// GORM AutoMigrate. GORM handles schema version tracking
	// automatically.
	Migrate(ctx context.Context, cfg *config.Config) error
}
