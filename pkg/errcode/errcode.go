package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBTableExistsCheckError
	DBDropTableError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError
	SchemaSearchIndexError

	// Store errors
	StoreInsertError
	StoreDuplicateNameError
	StoreEmptyNameError
	StoreLookupError
	StoreScanError
	StoreVarietyError
	StoreClearError
	StoreStatsError

	// Import errors
	ImportReadError
	ImportDecodeError
	ImportMissingColumnError

	// Query errors
	QueryFieldError
	QuerySearchError

	// Export errors
	ExportWriteError
)
