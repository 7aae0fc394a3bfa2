package main

import (
	"context"
	"fmt"

	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/ioschema"
	"github.com/morphdb/morphdb/pkg/db"
	"github.com/morphdb/morphdb/pkg/lifecycle"
	"github.com/spf13/cobra"
)

func getMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Applies database migrations",
		Long:  "Applies all pending database migrations to bring the schema to the latest version.",
		RunE:  runMigrate,
	}
	return cmd
}

func runMigrate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	// Create database operator
	var op db.Operator = iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer op.Close()

	fmt.Printf("Connected to database: %s\n", cfg.Database.Path)

	// Create schema manager
	var sm lifecycle.SchemaManager = ioschema.NewManager(op)

	// Run GORM AutoMigrate to migrate schema
	fmt.Println("Applying database migrations...")
	if err := sm.Migrate(ctx, cfg); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	fmt.Println("\n✓ Database migration complete!")
	return nil
}
