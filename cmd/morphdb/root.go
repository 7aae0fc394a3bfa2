package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/morphdb/morphdb/internal/ioconfig"
	"github.com/morphdb/morphdb/internal/iologger"
	"github.com/morphdb/morphdb/pkg/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	dbPath  string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "morphdb",
		Short: "morphdb manages a botanical morphology catalog",
		Long: `morphdb is a CLI tool for a local catalog of species morphology
records backed by SQLite.

The tool covers the full catalog lifecycle:
  - create: create database schema and the derived search index
  - import: bulk-load records from a CSV spreadsheet export
  - search: filter records by free text and per-field constraints
  - show:   display one record with its varieties
  - export: write the full catalog back to CSV
  - stats:  aggregate counts over the catalog
  - reset:  delete every record (destructive, double confirmation)

Configuration precedence (highest to lowest):
  1. CLI flags (--db, etc.)
  2. Environment variables (MORPHDB_*)
  3. Config file (~/.config/morphdb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.path → MORPHDB_DATABASE_PATH).

  Examples:
    MORPHDB_DATABASE_PATH           SQLite database file
    MORPHDB_DATABASE_BATCH_SIZE     Import progress step
    MORPHDB_LOG_LEVEL               Log level (debug/info/warn/error)`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Auto-generate config file on first run if it doesn't exist
			if cfgFile == "" {
				exists, err := ioconfig.ConfigFileExists()
				if err != nil {
					return fmt.Errorf("failed to check config file: %w", err)
				}

				if !exists {
					generatedPath, err := ioconfig.GenerateDefaultConfig()
					if err != nil {
						// Only warn, don't fail - can use defaults
						fmt.Printf("Warning: could not generate config file: %v\n", err)
					} else {
						fmt.Printf("Generated default config at: %s\n", generatedPath)
					}
				}
			}

			// Load configuration
			result, err := ioconfig.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			cfg = result.Config

			homeDir, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			var opts []config.Option
			opts = append(opts, config.OptHomeDir(homeDir))
			if dbPath != "" {
				opts = append(opts, config.OptDatabasePath(dbPath))
			}
			cfg.Update(opts)

			// The database path defaults to the data directory.
			if cfg.Database.Path == "" {
				cfg.Database.Path = config.DatabasePath(homeDir)
			}

			err = iologger.Init(
				config.LogDir(homeDir), cfg.Log, false)
			if err != nil {
				return fmt.Errorf("failed to init logging: %w", err)
			}

			slog.Info("Configuration loaded",
				"source", result.Source, "path", result.SourcePath)

			return nil
		},
	}

	// Persistent flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/morphdb/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "",
		"SQLite database file (default: ~/.local/share/morphdb/morphdb.db)")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for morphdb")

	// Add subcommands
	rootCmd.AddCommand(getCreateCmd())
	rootCmd.AddCommand(getMigrateCmd())
	rootCmd.AddCommand(getImportCmd())
	rootCmd.AddCommand(getAddCmd())
	rootCmd.AddCommand(getVarietyCmd())
	rootCmd.AddCommand(getSearchCmd())
	rootCmd.AddCommand(getShowCmd())
	rootCmd.AddCommand(getExportCmd())
	rootCmd.AddCommand(getStatsCmd())
	rootCmd.AddCommand(getResetCmd())

	return rootCmd
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *config.Config {
	return cfg
}
