// Package catalog defines the pure contracts of the morphology
// catalog: the canonical field registry shared by importer, query
// layer and exporter, the import report, and the record store
// interface. No I/O happens here.
package catalog

// Kind describes how a field's raw cell value is coerced on import
// and how the field participates in filtering.
type Kind int

const (
	// KindText fields are trimmed strings; placeholder values become
	// empty. Filters use substring containment.
	KindText Kind = iota

	// KindNumeric fields are nullable floats. Filters are lower-bound
	// (field >= value).
	KindNumeric

	// KindInteger fields are nullable integers, parsed like numeric
	// values and truncated. Filters are lower-bound.
	KindInteger
)

// Field describes one catalog column: its store column name, the
// header used in the source spreadsheet, and its kind. The header
// mapping is fixed at compile time and not user-configurable.
type Field struct {
	Column string
	Header string
	Kind   Kind
}

// NameColumn is the store column holding the natural key.
const NameColumn = "species_name"

// NameHeader is the spreadsheet header of the natural-key column.
// An input missing this column is rejected before any row is
// processed.
const NameHeader = "物种"

// fields is the canonical registry, in spreadsheet column order.
var fields = []Field{
	{Column: "serial_number", Header: "序号", Kind: KindInteger},
	{Column: "species_name", Header: "物种", Kind: KindText},
	{Column: "growth_form", Header: "株型", Kind: KindText},
	{Column: "min_height_cm", Header: "最小株高(厘米)", Kind: KindNumeric},
	{Column: "max_height_cm", Header: "最大株高(厘米)", Kind: KindNumeric},
	{Column: "root_color", Header: "根颜色", Kind: KindText},
	{Column: "leaf_max_length_cm", Header: "叶最大长度(厘米)", Kind: KindNumeric},
	{Column: "leaf_min_length_cm", Header: "叶最小长度(厘米)", Kind: KindNumeric},
	{Column: "leaf_min_width_mm", Header: "叶最小宽度(毫米)", Kind: KindNumeric},
	{Column: "leaf_max_width_mm", Header: "叶最大宽度(毫米)", Kind: KindNumeric},
	{Column: "leaf_shape", Header: "叶形", Kind: KindText},
	{Column: "leaf_color", Header: "叶颜色", Kind: KindText},
	{Column: "min_vein_number", Header: "最小叶脉数", Kind: KindInteger},
	{Column: "max_vein_number", Header: "最大叶脉数", Kind: KindInteger},
	{Column: "min_inflorescence_diameter_cm", Header: "最小花序直径(厘米)", Kind: KindNumeric},
	{Column: "max_inflorescence_diameter_cm", Header: "最大花序直径(厘米)", Kind: KindNumeric},
	{Column: "bract_number", Header: "总苞片数量", Kind: KindText},
	{Column: "bract_shape", Header: "总苞片形状", Kind: KindText},
	{Column: "min_bract_length_mm", Header: "总苞片最小长度(毫米)", Kind: KindNumeric},
	{Column: "max_bract_length_mm", Header: "总苞片最大长度(毫米)", Kind: KindNumeric},
	{Column: "ray_number", Header: "伞辐数量", Kind: KindText},
	{Column: "min_ray_length_cm", Header: "最小伞辐长度(厘米)", Kind: KindNumeric},
	{Column: "max_ray_length_cm", Header: "最大伞辐长度(厘米)", Kind: KindNumeric},
	{Column: "umbellet_diameter_mm", Header: "小伞形花序直径(毫米)", Kind: KindText},
	{Column: "bracteole_number", Header: "小总苞片数量", Kind: KindText},
	{Column: "bracteole_shape", Header: "小总苞片形状", Kind: KindText},
	{Column: "umbellet_number", Header: "小伞形花序数量", Kind: KindText},
	{Column: "petal_color", Header: "花瓣颜色", Kind: KindText},
	{Column: "fruit_shape", Header: "果形状", Kind: KindText},
	{Column: "fruit_color", Header: "果颜色", Kind: KindText},
}

// Fields returns the canonical field registry in spreadsheet column
// order. The returned slice must not be modified.
func Fields() []Field {
	return fields
}

// FieldByColumn finds a field by its store column name.
func FieldByColumn(column string) (Field, bool) {
	for _, f := range fields {
		if f.Column == column {
			return f, true
		}
	}
	return Field{}, false
}

// FieldByHeader finds a field by its spreadsheet header.
func FieldByHeader(header string) (Field, bool) {
	for _, f := range fields {
		if f.Header == header {
			return f, true
		}
	}
	return Field{}, false
}

// Headers returns spreadsheet headers in canonical order.
func Headers() []string {
	res := make([]string, len(fields))
	for i, f := range fields {
		res[i] = f.Header
	}
	return res
}

// Columns returns store column names in canonical order.
func Columns() []string {
	res := make([]string, len(fields))
	for i, f := range fields {
		res[i] = f.Column
	}
	return res
}
