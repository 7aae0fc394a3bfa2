package lifecycle

import (
	"context"
	"io"
)

// Exporter serializes the full catalog back to delimited text. Always
// a complete snapshot in natural-key order; variety names of each
// record are flattened into one delimiter-joined column.
type Exporter interface {
	// ExportCSV writes the snapshot as UTF-8 CSV with a byte-order
	// marker for spreadsheet compatibility. Returns the number of
	// records written.
	ExportCSV(ctx context.Context, w io.Writer) (int, error)
}
