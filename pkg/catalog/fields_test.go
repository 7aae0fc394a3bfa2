package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryIntegrity(t *testing.T) {
	all := Fields()
	require.NotEmpty(t, all)

	columns := make(map[string]struct{})
	headers := make(map[string]struct{})
	for _, f := range all {
		assert.NotEmpty(t, f.Column)
		assert.NotEmpty(t, f.Header)
		_, dup := columns[f.Column]
		assert.False(t, dup, "duplicate column %s", f.Column)
		columns[f.Column] = struct{}{}
		_, dup = headers[f.Header]
		assert.False(t, dup, "duplicate header %s", f.Header)
		headers[f.Header] = struct{}{}
	}

	// The natural key is part of the registry.
	name, ok := FieldByColumn(NameColumn)
	require.True(t, ok)
	assert.Equal(t, NameHeader, name.Header)
	assert.Equal(t, KindText, name.Kind)
}

func TestFieldLookups(t *testing.T) {
	f, ok := FieldByColumn("min_height_cm")
	require.True(t, ok)
	assert.Equal(t, "最小株高(厘米)", f.Header)
	assert.Equal(t, KindNumeric, f.Kind)

	f, ok = FieldByHeader("最小叶脉数")
	require.True(t, ok)
	assert.Equal(t, "min_vein_number", f.Column)
	assert.Equal(t, KindInteger, f.Kind)

	_, ok = FieldByColumn("no_such_column")
	assert.False(t, ok)
	_, ok = FieldByHeader("无此列")
	assert.False(t, ok)
}

func TestHeadersMatchColumns(t *testing.T) {
	headers := Headers()
	columns := Columns()
	require.Equal(t, len(headers), len(columns))
	require.Equal(t, len(fields), len(headers))

	for i, f := range fields {
		assert.Equal(t, f.Header, headers[i])
		assert.Equal(t, f.Column, columns[i])
	}
}

func TestValidateFilters(t *testing.T) {
	tests := []struct {
		name    string
		filters map[string]string
		wantErr bool
	}{
		{"nil filters", nil, false},
		{"empty filters", map[string]string{}, false},
		{"text filter", map[string]string{"growth_form": "丛生"}, false},
		{"numeric filter", map[string]string{"min_height_cm": "50"}, false},
		{"decimal numeric filter", map[string]string{"max_height_cm": "8.5"}, false},
		{"integer filter", map[string]string{"min_vein_number": "3"}, false},
		{
			"several valid filters",
			map[string]string{"growth_form": "丛生", "min_height_cm": "50"},
			false,
		},
		{"unknown field", map[string]string{"petal_count": "5"}, true},
		{"surrogate id is not filterable", map[string]string{"id": "1"}, true},
		{"sql in field name", map[string]string{"1=1; DROP TABLE species": "x"}, true},
		{"numeric field with text value", map[string]string{"min_height_cm": "tall"}, true},
		{"numeric field with empty value", map[string]string{"min_height_cm": ""}, true},
		{
			"one bad filter rejects the set",
			map[string]string{"growth_form": "丛生", "bogus": "x"},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFilters(tt.filters)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
