package lifecycle

import (
	"context"
	"io"

	"github.com/morphdb/morphdb/pkg/catalog"
)

// Importer converts tabular input into record insertions, collecting
// a structured report instead of aborting on the first bad row. Only
// structurally invalid input (missing the natural-key column, an
// unreadable or undecodable file) fails the whole import.
type Importer interface {
	// ImportFile reads a CSV file from disk. The file is decoded as
	// UTF-8, falling back to GBK when the content is not valid UTF-8.
	ImportFile(ctx context.Context, path string) (catalog.ImportReport, error)

	// ImportCSV imports CSV data with a header row from r. The reader
	// must yield UTF-8 text.
	ImportCSV(ctx context.Context, r io.Reader) (catalog.ImportReport, error)
}
