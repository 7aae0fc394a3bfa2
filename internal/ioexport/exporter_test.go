package ioexport_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/morphdb/morphdb/internal/ioexport"
	"github.com/morphdb/morphdb/internal/ioimport"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/internal/iotesting"
	"github.com/morphdb/morphdb/pkg/catalog"
	"github.com/morphdb/morphdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	op, _ := iotesting.SetupDB(t)
	st := iostore.New(op)

	id, err := st.Insert(ctx, &schema.Species{
		SpeciesName: "红柴胡",
		GrowthForm:  "单生",
		MinHeightCm: sql.NullFloat64{Float64: 30.5, Valid: true},
	})
	require.NoError(t, err)
	_, err = st.AddVariety(ctx, &schema.Variety{SpeciesID: id, Name: "狭叶变种"})
	require.NoError(t, err)
	_, err = st.AddVariety(ctx, &schema.Variety{SpeciesID: id, Name: "秦岭变种"})
	require.NoError(t, err)

	_, err = st.Insert(ctx, &schema.Species{SpeciesName: "北柴胡"})
	require.NoError(t, err)

	var buf bytes.Buffer
	exp := ioexport.New(st)
	count, err := exp.ExportCSV(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.Bytes()
	require.True(t, bytes.HasPrefix(out, utf8BOM),
		"export must start with a UTF-8 byte-order marker")

	records, err := csv.NewReader(
		bytes.NewReader(bytes.TrimPrefix(out, utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	wantHeader := append(catalog.Headers(), ioexport.VarietyHeader)
	assert.Equal(t, wantHeader, records[0])

	// Natural-key order, surrogate ids excluded.
	assert.Equal(t, "北柴胡", records[1][1])
	assert.Equal(t, "红柴胡", records[2][1])
	assert.Equal(t, "单生", records[2][2])
	assert.Equal(t, "30.5", records[2][3])

	// Varieties flattened into the final column, name-ordered.
	last := len(records[2]) - 1
	assert.Equal(t, "狭叶变种; 秦岭变种", records[2][last])
	assert.Equal(t, "", records[1][last])
}

func TestExportEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	op, _ := iotesting.SetupDB(t)
	st := iostore.New(op)

	var buf bytes.Buffer
	count, err := ioexport.New(st).ExportCSV(ctx, &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	records, err := csv.NewReader(
		bytes.NewReader(bytes.TrimPrefix(buf.Bytes(), utf8BOM))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "header row only")
}

func TestExportReimportRoundTrip(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)

	_, err := st.Insert(ctx, &schema.Species{
		SpeciesName: "北柴胡",
		LeafShape:   "线形",
		MinHeightCm: sql.NullFloat64{Float64: 50, Valid: true},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "export.csv")
	f, err := os.Create(path)
	require.NoError(t, err)
	_, err = ioexport.New(st).ExportCSV(ctx, f)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	// Re-importing an export changes nothing: every row is a duplicate.
	imp := ioimport.New(cfg, st)
	report, err := imp.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Total)
	assert.Equal(t, 0, report.Success)
	assert.Equal(t, 1, report.Duplicates)
	assert.Equal(t, 0, report.Failed)
}
