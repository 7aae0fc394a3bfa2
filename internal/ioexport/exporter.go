// Package ioexport implements the Exporter interface: a full-table
// CSV snapshot of the catalog in natural-key order. This is an impure
// I/O package.
package ioexport

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/morphdb/morphdb/pkg/lifecycle"
	"github.com/morphdb/morphdb/pkg/schema"
)

// VarietyHeader is the header of the flattened varieties column
// appended after the catalog columns. The importer does not read it;
// varieties are not round-tripped through flat exports.
const VarietyHeader = "变种"

// varietySep joins variety names into the flattened column.
const varietySep = "; "

// utf8BOM makes spreadsheet applications recognize the file as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// exporter implements the lifecycle.Exporter interface.
type exporter struct {
	store catalog.Store
}

// New creates a new Exporter.
func New(st catalog.Store) lifecycle.Exporter {
	return &exporter{store: st}
}

// ExportCSV writes every record, ordered by natural key, as UTF-8 CSV
// with a byte-order marker. Surrogate ids and timestamps are
// excluded; the header row reuses the import headers so an export can
// be re-imported.
func (e *exporter) ExportCSV(
	ctx context.Context,
	w io.Writer,
) (int, error) {
	species, err := e.store.ScanAll(ctx, 0)
	if err != nil {
		return 0, err
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return 0, WriteError(err)
	}

	cw := csv.NewWriter(w)

	header := append(catalog.Headers(), VarietyHeader)
	if err := cw.Write(header); err != nil {
		return 0, WriteError(err)
	}

	count := 0
	for i := range species {
		sp := &species[i]

		varieties, err := e.store.VarietiesOf(ctx, sp.ID)
		if err != nil {
			return count, err
		}

		row := make([]string, 0, len(header))
		for _, f := range catalog.Fields() {
			row = append(row, sp.ColumnValue(f.Column))
		}
		row = append(row, flattenVarieties(varieties))

		if err := cw.Write(row); err != nil {
			return count, WriteError(err)
		}
		count++
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return count, WriteError(err)
	}
	return count, nil
}

// flattenVarieties joins child rows into a single delimited cell.
func flattenVarieties(varieties []schema.Variety) string {
	if len(varieties) == 0 {
		return ""
	}
	names := make([]string, len(varieties))
	for i, v := range varieties {
		names[i] = v.Name
	}
	return strings.Join(names, varietySep)
}
