// Package ioimport implements the Importer interface for loading
// morphology spreadsheets exported as CSV into the record store.
// This is an impure I/O package; each input row is processed
// independently so one malformed row never aborts the batch.
package ioimport

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/morphdb/morphdb/pkg/config"
	"github.com/morphdb/morphdb/pkg/lifecycle"
	"github.com/morphdb/morphdb/pkg/schema"
)

// importer implements the lifecycle.Importer interface.
type importer struct {
	cfg   *config.Config
	store catalog.Store
}

// New creates a new Importer.
func New(cfg *config.Config, st catalog.Store) lifecycle.Importer {
	return &importer{cfg: cfg, store: st}
}

// ImportFile reads a CSV file from disk, decoding UTF-8 with a GBK
// fallback, and imports it with a progress bar.
func (imp *importer) ImportFile(
	ctx context.Context,
	path string,
) (catalog.ImportReport, error) {
	var report catalog.ImportReport

	data, err := os.ReadFile(path)
	if err != nil {
		return report, ReadError(path, err)
	}

	decoded, err := decode(data)
	if err != nil {
		return report, DecodeError(path, err)
	}

	rows, err := readRows(bytes.NewReader(decoded))
	if err != nil {
		return report, ReadError(path, err)
	}

	start := time.Now()
	report, err = imp.importRows(ctx, rows, true)
	if err != nil {
		return report, err
	}

	slog.Info("Import finished",
		"file", path,
		"total", report.Total,
		"success", report.Success,
		"failed", report.Failed,
		"duplicates", report.Duplicates,
		"records_per_sec", humanize.CommafWithDigits(
			float64(report.Total)/time.Since(start).Seconds(), 0),
	)
	return report, nil
}

// ImportCSV imports CSV data with a header row from r. The reader
// must yield UTF-8 text.
func (imp *importer) ImportCSV(
	ctx context.Context,
	r io.Reader,
) (catalog.ImportReport, error) {
	var report catalog.ImportReport

	rows, err := readRows(r)
	if err != nil {
		return report, ReadError("", err)
	}

	return imp.importRows(ctx, rows, false)
}

// readRows parses CSV records. Rows may be ragged: short rows read as
// missing cells, surplus cells are ignored.
func readRows(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	return cr.ReadAll()
}

// importRows runs per-row processing over parsed records. The first
// record is the header row; it must contain the natural-key column or
// the whole batch is rejected before any row is processed.
func (imp *importer) importRows(
	ctx context.Context,
	rows [][]string,
	withProgress bool,
) (catalog.ImportReport, error) {
	var report catalog.ImportReport

	if len(rows) == 0 {
		return report, MissingColumnError(catalog.NameHeader)
	}

	headerIdx := make(map[string]int)
	for i, h := range rows[0] {
		headerIdx[cleanText(h)] = i
	}
	if _, ok := headerIdx[catalog.NameHeader]; !ok {
		return report, MissingColumnError(catalog.NameHeader)
	}

	// Known names, for duplicate detection without a per-row query.
	existing, err := imp.store.Names(ctx)
	if err != nil {
		return report, err
	}

	dataRows := rows[1:]
	var bar *pb.ProgressBar
	if withProgress && len(dataRows) > 0 {
		bar = pb.Full.Start(len(dataRows))
		bar.Set("prefix", "Importing records: ")
		bar.Set(pb.CleanOnFinish, true)
	}

	batch := imp.cfg.Database.BatchSize
	for i, row := range dataRows {
		if bar != nil {
			bar.Increment()
		}
		report.Total++

		cell := func(header string) string {
			idx, ok := headerIdx[header]
			if !ok || idx >= len(row) {
				return ""
			}
			return row[idx]
		}

		name := cleanText(cell(catalog.NameHeader))
		if name == "" {
			report.Failed++
			report.Errors = append(report.Errors,
				fmt.Sprintf("row %d: species name is empty", i+2))
			continue
		}

		if _, ok := existing[name]; ok {
			report.Duplicates++
			continue
		}

		sp := imp.buildSpecies(cell)
		if _, err := imp.store.Insert(ctx, sp); err != nil {
			// A concurrent import may have inserted the name after the
			// snapshot; the engine's constraint is the authority.
			if isDuplicate(err) {
				report.Duplicates++
				continue
			}
			report.Failed++
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: %v", name, err))
			continue
		}

		report.Success++
		existing[name] = struct{}{}

		if batch > 0 && report.Total%batch == 0 {
			slog.Info("Import progress",
				"processed", report.Total, "of", len(dataRows))
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return report, nil
}

// buildSpecies coerces one row into a record, field by field
// according to the catalog registry kinds.
func (imp *importer) buildSpecies(cell func(header string) string) *schema.Species {
	var sp schema.Species
	for _, f := range catalog.Fields() {
		setField(&sp, f, cell(f.Header), imp.rangeLowerBound())
	}
	return &sp
}

// rangeLowerBound reports how range cells collapse. Unset means the
// historical behavior: keep the lower bound.
func (imp *importer) rangeLowerBound() bool {
	if imp.cfg.Import.RangeLowerBound == nil {
		return true
	}
	return *imp.cfg.Import.RangeLowerBound
}

// SetField coerces one raw cell into its record field: text columns
// are cleaned, numeric columns parsed with range and placeholder
// handling. Shared by CSV import and single-record submission.
func SetField(sp *schema.Species, f catalog.Field, raw string) {
	setField(sp, f, raw, true)
}

func setField(
	sp *schema.Species,
	f catalog.Field,
	raw string,
	rangeLowerBound bool,
) {
	switch f.Column {
	case "serial_number":
		sp.SerialNumber = parseInteger(raw, rangeLowerBound)
	case "species_name":
		sp.SpeciesName = cleanText(raw)
	case "growth_form":
		sp.GrowthForm = cleanText(raw)
	case "min_height_cm":
		sp.MinHeightCm = parseNumeric(raw, rangeLowerBound)
	case "max_height_cm":
		sp.MaxHeightCm = parseNumeric(raw, rangeLowerBound)
	case "root_color":
		sp.RootColor = cleanText(raw)
	case "leaf_max_length_cm":
		sp.LeafMaxLengthCm = parseNumeric(raw, rangeLowerBound)
	case "leaf_min_length_cm":
		sp.LeafMinLengthCm = parseNumeric(raw, rangeLowerBound)
	case "leaf_min_width_mm":
		sp.LeafMinWidthMm = parseNumeric(raw, rangeLowerBound)
	case "leaf_max_width_mm":
		sp.LeafMaxWidthMm = parseNumeric(raw, rangeLowerBound)
	case "leaf_shape":
		sp.LeafShape = cleanText(raw)
	case "leaf_color":
		sp.LeafColor = cleanText(raw)
	case "min_vein_number":
		sp.MinVeinNumber = parseInteger(raw, rangeLowerBound)
	case "max_vein_number":
		sp.MaxVeinNumber = parseInteger(raw, rangeLowerBound)
	case "min_inflorescence_diameter_cm":
		sp.MinInflorescenceDiameterCm = parseNumeric(raw, rangeLowerBound)
	case "max_inflorescence_diameter_cm":
		sp.MaxInflorescenceDiameterCm = parseNumeric(raw, rangeLowerBound)
	case "bract_number":
		sp.BractNumber = cleanText(raw)
	case "bract_shape":
		sp.BractShape = cleanText(raw)
	case "min_bract_length_mm":
		sp.MinBractLengthMm = parseNumeric(raw, rangeLowerBound)
	case "max_bract_length_mm":
		sp.MaxBractLengthMm = parseNumeric(raw, rangeLowerBound)
	case "ray_number":
		sp.RayNumber = cleanText(raw)
	case "min_ray_length_cm":
		sp.MinRayLengthCm = parseNumeric(raw, rangeLowerBound)
	case "max_ray_length_cm":
		sp.MaxRayLengthCm = parseNumeric(raw, rangeLowerBound)
	case "umbellet_diameter_mm":
		sp.UmbelletDiameterMm = cleanText(raw)
	case "bracteole_number":
		sp.BracteoleNumber = cleanText(raw)
	case "bracteole_shape":
		sp.BracteoleShape = cleanText(raw)
	case "umbellet_number":
		sp.UmbelletNumber = cleanText(raw)
	case "petal_color":
		sp.PetalColor = cleanText(raw)
	case "fruit_shape":
		sp.FruitShape = cleanText(raw)
	case "fruit_color":
		sp.FruitColor = cleanText(raw)
	}
}
