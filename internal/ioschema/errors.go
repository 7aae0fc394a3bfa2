package ioschema

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// NotConnectedError creates an error for when schema
// operation is attempted without database connection.
func NotConnectedError() error {
	msg := "Schema operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// GORMConnectionError creates an error for GORM
// connection failures.
func GORMConnectionError(err error) error {
	msg := `Cannot connect to database with GORM

<em>Possible causes:</em>
  - Database handle not initialized
  - GORM driver problem

<em>How to fix:</em>
  1. Ensure database operator is connected
  2. Check the configured database path`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to connect with GORM: %w", err),
	}
}

// CreateSchemaError creates an error for schema
// creation failures.
func CreateSchemaError(err error) error {
	msg := `Cannot create database schema

<em>Possible causes:</em>
  - The database file is read-only
  - Existing tables conflict with the schema

<em>How to fix:</em>
  1. Check file permissions on the database path
  2. Run <em>morphdb create --force</em> to rebuild from scratch`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create schema: %w", err),
	}
}

// MigrateSchemaError creates an error for schema
// migration failures.
func MigrateSchemaError(err error) error {
	msg := `Cannot migrate database schema

<em>Possible causes:</em>
  - Existing columns conflict with the new schema
  - The database file is read-only

<em>How to fix:</em>
  1. Back up the database file
  2. Run <em>morphdb create --force</em> to rebuild from scratch`

	return &gn.Error{
		Code: errcode.SchemaMigrateError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to migrate schema: %w", err),
	}
}

// SearchIndexError creates an error for a failed search-index DDL
// statement.
func SearchIndexError(err error) error {
	msg := `Cannot create the derived search index

<em>Possible causes:</em>
  - The SQLite build lacks the FTS5 extension
  - The database file is read-only

<em>How to fix:</em>
  1. Check file permissions on the database path
  2. Report the problem if FTS5 is unavailable`

	return &gn.Error{
		Code: errcode.SchemaSearchIndexError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create search index: %w", err),
	}
}
