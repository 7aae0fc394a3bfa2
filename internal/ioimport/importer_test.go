package ioimport_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/morphdb/morphdb/internal/ioimport"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/internal/iotesting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

const csvHeader = "序号,物种,株型,最小株高(厘米),最大株高(厘米),叶形,果形状"

func TestImportCSV(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	input := strings.Join([]string{
		csvHeader,
		"1,北柴胡,丛生,50,85,线形,椭圆形",
		"2,红柴胡,单生,30,60,线状披针形,卵形",
	}, "\n")

	report, err := imp.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 2, report.Success)
	assert.Equal(t, 0, report.Failed)
	assert.Equal(t, 0, report.Duplicates)
	assert.Empty(t, report.Errors)

	sp, err := st.GetByName(ctx, "北柴胡")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "丛生", sp.GrowthForm)
	require.True(t, sp.MinHeightCm.Valid)
	assert.Equal(t, 50.0, sp.MinHeightCm.Float64)
	assert.Equal(t, "线形", sp.LeafShape)
}

func TestImportCSVMissingNameColumn(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	input := "序号,株型\n1,丛生\n"
	_, err := imp.ImportCSV(ctx, strings.NewReader(input))
	require.Error(t, err)

	// Nothing from the batch may have been inserted.
	stats, err := st.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalSpecies)
}

func TestImportCSVRowIsolation(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	input := strings.Join([]string{
		csvHeader,
		"1,北柴胡,丛生,50,85,线形,椭圆形",
		"2,,单生,30,60,卵形,卵形",
		"3,未明确,单生,30,60,卵形,卵形",
		"4,红柴胡,单生,30,60,线状披针形,卵形",
	}, "\n")

	report, err := imp.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.Success)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Errors, 2)
	assert.Contains(t, report.Errors[0], "row 3")
	assert.Contains(t, report.Errors[1], "row 4")
}

func TestImportCSVDuplicates(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	input := strings.Join([]string{
		csvHeader,
		"1,北柴胡,丛生,50,85,线形,椭圆形",
		"2,北柴胡,单生,30,60,卵形,卵形",
	}, "\n")

	report, err := imp.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Success)
	assert.Equal(t, 1, report.Duplicates)

	// A second pass over the same data changes nothing.
	report, err = imp.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 0, report.Success)
	assert.Equal(t, 2, report.Duplicates)

	stats, err := st.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalSpecies)

	// The first row won; the duplicate did not overwrite it.
	sp, err := st.GetByName(ctx, "北柴胡")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "丛生", sp.GrowthForm)
}

func TestImportCSVAbsentValues(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	input := strings.Join([]string{
		csvHeader,
		"1,北柴胡,未明确,未明确,,线形,未明确",
	}, "\n")

	report, err := imp.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, report.Success)

	sp, err := st.GetByName(ctx, "北柴胡")
	require.NoError(t, err)
	require.NotNil(t, sp)

	// Absent measurements stay NULL, never zero.
	assert.False(t, sp.MinHeightCm.Valid)
	assert.False(t, sp.MaxHeightCm.Valid)
	assert.Equal(t, "", sp.GrowthForm)
	assert.Equal(t, "", sp.FruitShape)
}

func TestImportCSVRangeValues(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	input := strings.Join([]string{
		"物种,最小叶脉数,最小株高(厘米)",
		"北柴胡,3-8,45-60",
	}, "\n")

	report, err := imp.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, report.Success)

	sp, err := st.GetByName(ctx, "北柴胡")
	require.NoError(t, err)
	require.NotNil(t, sp)
	require.True(t, sp.MinVeinNumber.Valid)
	assert.Equal(t, int64(3), sp.MinVeinNumber.Int64)
	require.True(t, sp.MinHeightCm.Valid)
	assert.Equal(t, 45.0, sp.MinHeightCm.Float64)
}

func TestImportCSVRangeDisabled(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)

	off := false
	cfg.Import.RangeLowerBound = &off
	imp := ioimport.New(cfg, st)

	input := "物种,最小株高(厘米)\n北柴胡,45-60\n"
	report, err := imp.ImportCSV(ctx, strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 1, report.Success)

	sp, err := st.GetByName(ctx, "北柴胡")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.False(t, sp.MinHeightCm.Valid,
		"range cells import as NULL when the collapse is disabled")
}

func TestImportFileGBK(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	input := "物种,株型\n北柴胡,丛生\n"
	gbk, _, err := transform.Bytes(
		simplifiedchinese.GBK.NewEncoder(), []byte(input))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "records.csv")
	require.NoError(t, os.WriteFile(path, gbk, 0644))

	report, err := imp.ImportFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Success)

	sp, err := st.GetByName(ctx, "北柴胡")
	require.NoError(t, err)
	require.NotNil(t, sp)
	assert.Equal(t, "丛生", sp.GrowthForm)
}

func TestImportFileNotFound(t *testing.T) {
	ctx := context.Background()
	op, cfg := iotesting.SetupDB(t)
	st := iostore.New(op)
	imp := ioimport.New(cfg, st)

	_, err := imp.ImportFile(ctx, filepath.Join(t.TempDir(), "no-such.csv"))
	require.Error(t, err)
}
