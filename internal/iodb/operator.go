// Package iodb implements database operations for the local SQLite
// store. This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/morphdb/morphdb/pkg/config"
	"github.com/morphdb/morphdb/pkg/db"
	_ "modernc.org/sqlite"
)

// sqliteOperator implements db.Operator using the pure-Go
// modernc.org/sqlite driver.
type sqliteOperator struct {
	path string
	db   *sql.DB
}

// NewSqliteOperator creates a new database operator
// (without connecting).
func NewSqliteOperator() db.Operator {
	return &sqliteOperator{}
}

// Connect opens the SQLite database file, creating parent directories
// and the file itself when absent. A single writer connection keeps
// transactions serialized; the engine provides all locking.
func (s *sqliteOperator) Connect(
	ctx context.Context,
	cfg *config.DatabaseConfig,
) error {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return CreateDirError(dir, err)
	}

	sqlDB, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return ConnectionError(cfg.Path, err)
	}

	// database/sql would otherwise open concurrent connections, which
	// SQLite answers with "database is locked" under write load.
	sqlDB.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := sqlDB.ExecContext(ctx, pragma); err != nil {
			sqlDB.Close()
			return ConnectionError(cfg.Path, err)
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return ConnectionError(cfg.Path, err)
	}

	s.path = cfg.Path
	s.db = sqlDB
	return nil
}

// Close closes the database handle.
func (s *sqliteOperator) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for higher-level components.
func (s *sqliteOperator) DB() *sql.DB {
	return s.db
}

// TableExists checks if a table (or virtual table) exists.
func (s *sqliteOperator) TableExists(
	ctx context.Context,
	tableName string,
) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name = ?
		)
	`

	var exists bool
	err := s.db.QueryRowContext(ctx, query, tableName).Scan(&exists)
	if err != nil {
		return false, TableExistsCheckError(tableName, err)
	}

	return exists, nil
}

// HasTables checks if the database has any user tables.
func (s *sqliteOperator) HasTables(ctx context.Context) (bool, error) {
	if s.db == nil {
		return false, NotConnectedError()
	}

	query := `
		SELECT EXISTS (
			SELECT 1 FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		)
	`

	var hasTables bool
	err := s.db.QueryRowContext(ctx, query).Scan(&hasTables)
	if err != nil {
		return false, TableCheckError(err)
	}

	return hasTables, nil
}

// DropAllTables drops all user tables, the derived search index
// included.
func (s *sqliteOperator) DropAllTables(ctx context.Context) error {
	if s.db == nil {
		return NotConnectedError()
	}

	query := `
		SELECT name FROM sqlite_master
		WHERE type = 'table'
			AND name NOT LIKE 'sqlite_%'
			AND name NOT LIKE 'species_fts_%'
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return QueryTablesError(err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return ScanTableError(err)
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return ScanTableError(err)
	}

	// The FTS virtual table goes first so its shadow tables
	// (species_fts_data etc.) disappear with it.
	for _, table := range orderedForDrop(tables) {
		dropSQL := `DROP TABLE IF EXISTS "` + table + `"`
		if _, err := s.db.ExecContext(ctx, dropSQL); err != nil {
			return DropTableError(table, err)
		}
	}

	return nil
}

func orderedForDrop(tables []string) []string {
	res := make([]string, 0, len(tables))
	for _, t := range tables {
		if t == "species_fts" {
			res = append(res, t)
		}
	}
	for _, t := range tables {
		if t != "species_fts" {
			res = append(res, t)
		}
	}
	return res
}
