package iodb

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// CreateDirError creates an error for a failed data directory
// creation.
func CreateDirError(dir string, err error) error {
	msg := fmt.Sprintf(`Cannot create data directory <em>%s</em>

<em>Possible causes:</em>
  - Missing write permission for the parent directory
  - The path points to an existing file

<em>How to fix:</em>
  1. Check permissions of the parent directory
  2. Set a writable location with <em>--db</em> or MORPHDB_DATABASE_PATH`, dir)

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create dir %s: %w", dir, err),
	}
}

// ConnectionError creates an error for SQLite open failures.
func ConnectionError(path string, err error) error {
	msg := fmt.Sprintf(`Cannot open database file <em>%s</em>

<em>Possible causes:</em>
  - The file is not an SQLite database
  - Missing read/write permission
  - The file is corrupted

<em>How to fix:</em>
  1. Check the configured database path
  2. Check file permissions
  3. Run <em>morphdb create</em> to start a fresh database`, path)

	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to open %s: %w", path, err),
	}
}

// NotConnectedError creates an error for when a database operation is
// attempted without a connection.
func NotConnectedError() error {
	msg := "Database operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TableCheckError creates an error for a failed table existence
// check.
func TableCheckError(err error) error {
	msg := "Could not verify database state"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to check database tables: %w", err),
	}
}

// TableExistsCheckError creates an error for a failed per-table
// existence check.
func TableExistsCheckError(table string, err error) error {
	msg := fmt.Sprintf("Could not check whether table <em>%s</em> exists", table)

	return &gn.Error{
		Code: errcode.DBTableExistsCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to check table %s: %w", table, err),
	}
}

// QueryTablesError creates an error for a failed table listing.
func QueryTablesError(err error) error {
	msg := "Could not list database tables"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to query tables: %w", err),
	}
}

// ScanTableError creates an error for a failed table-name scan.
func ScanTableError(err error) error {
	msg := "Could not read database table names"

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to scan table name: %w", err),
	}
}

// DropTableError creates an error for a failed DROP TABLE.
func DropTableError(table string, err error) error {
	msg := fmt.Sprintf("Could not drop table <em>%s</em>", table)

	return &gn.Error{
		Code: errcode.DBDropTableError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to drop table %s: %w", table, err),
	}
}
