package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/morphdb/morphdb/internal/iodb"
	"github.com/morphdb/morphdb/internal/ioschema"
	"github.com/morphdb/morphdb/pkg/db"
	"github.com/morphdb/morphdb/pkg/lifecycle"
	"github.com/spf13/cobra"
)

var (
	forceCreate bool
)

func getCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create database schema",
		Long: `Create the morphdb database schema from scratch.

This command:
  1. Opens (or creates) the SQLite database file
  2. Checks for existing tables and prompts for confirmation if found
  3. Creates the species and varieties tables using GORM AutoMigrate
  4. Creates the derived full-text search index

Use --force to skip confirmation and drop existing tables automatically.

Examples:
  morphdb create
  morphdb create --force
  morphdb create --db /tmp/test.db`,
		RunE: runCreate,
	}

	cmd.Flags().BoolVar(&forceCreate, "force", false,
		"drop existing tables before creating schema (destructive)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	cfg := getConfig()

	// Create database operator
	var op db.Operator = iodb.NewSqliteOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer op.Close()

	fmt.Printf("Connected to database: %s\n", cfg.Database.Path)

	// Check if database has existing tables
	hasTables, err := op.HasTables(ctx)
	if err != nil {
		return fmt.Errorf("failed to check for existing tables: %w", err)
	}

	// Handle existing tables
	if hasTables {
		if forceCreate {
			// Force flag set - drop without prompting
			fmt.Println("Dropping all existing tables (--force enabled)...")
			if err := op.DropAllTables(ctx); err != nil {
				return fmt.Errorf("failed to drop tables: %w", err)
			}
			fmt.Println("✓ All tables dropped")
		} else {
			// Prompt user for confirmation
			fmt.Println("\n⚠️  Warning: Database contains existing tables.")
			fmt.Println("Creating schema will drop ALL existing tables and data.")
			fmt.Print("\nDo you want to continue? (yes/no): ")

			reader := bufio.NewReader(os.Stdin)
			response, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read user input: %w", err)
			}

			response = strings.TrimSpace(strings.ToLower(response))
			if response != "yes" && response != "y" {
				fmt.Println("Aborted. No changes made to the database.")
				return nil
			}

			// User confirmed - drop tables
			fmt.Println("Dropping all existing tables...")
			if err := op.DropAllTables(ctx); err != nil {
				return fmt.Errorf("failed to drop tables: %w", err)
			}
			fmt.Println("✓ All tables dropped")
		}
	}

	// Create schema manager
	var sm lifecycle.SchemaManager = ioschema.NewManager(op)

	// Run GORM AutoMigrate to create schema
	fmt.Println("Creating schema using GORM AutoMigrate...")
	if err := sm.Create(ctx, cfg); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	fmt.Println("\n✓ Database schema creation complete!")
	fmt.Println("\nNext steps:")
	fmt.Println("  - Run 'morphdb import <file.csv>' to load records")
	fmt.Println("  - Run 'morphdb search' to query the catalog")

	return nil
}
