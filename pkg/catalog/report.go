package catalog

// ImportReport is the structured outcome of one bulk import. A
// malformed row never aborts the batch; its failure is recorded here
// instead. The report is returned even when Total is zero.
type ImportReport struct {
	// Total is the number of data rows seen in the input.
	Total int

	// Success is the number of rows inserted into the store.
	Success int

	// Failed counts rows rejected for per-row data errors (blank
	// natural key, row-level insert failure).
	Failed int

	// Duplicates counts rows skipped because a record with the same
	// natural key already exists.
	Duplicates int

	// Errors holds one human-readable message per failed row.
	Errors []string
}
