package ioimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain value", "丛生", "丛生"},
		{"surrounding whitespace", "  线形 ", "线形"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"unspecified placeholder", "未明确", ""},
		{"nan placeholder", "NaN", ""},
		{"na placeholder", "N/A", ""},
		{"placeholder with whitespace", " 未明确 ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  float64
		valid bool
	}{
		{"integer", "50", 50, true},
		{"decimal", "8.5", 8.5, true},
		{"zero is a measurement", "0", 0, true},
		{"range keeps lower bound", "3-8", 3, true},
		{"range with spaces", "3 - 8", 3, true},
		{"decimal range", "0.5-1.2", 0.5, true},
		{"negative is not a range", "-5", -5, true},
		{"empty is NULL", "", 0, false},
		{"placeholder is NULL", "未明确", 0, false},
		{"text is NULL", "很高", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseNumeric(tt.in, true)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Float64)
			}
		})
	}
}

func TestParseNumericRangeDisabled(t *testing.T) {
	// With the lower-bound collapse disabled, ranges become NULL
	// instead of a lossy value; plain numbers still parse.
	assert.False(t, parseNumeric("3-8", false).Valid)
	got := parseNumeric("50", false)
	assert.True(t, got.Valid)
	assert.Equal(t, 50.0, got.Float64)
	// A leading minus still reads as a negative number, not a range.
	assert.True(t, parseNumeric("-5", false).Valid)
}

func TestParseInteger(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		want  int64
		valid bool
	}{
		{"integer", "7", 7, true},
		{"decimal truncates", "7.9", 7, true},
		{"range keeps lower bound", "5-9", 5, true},
		{"placeholder is NULL", "未明确", 0, false},
		{"empty is NULL", "", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseInteger(tt.in, true)
			assert.Equal(t, tt.valid, got.Valid)
			if tt.valid {
				assert.Equal(t, tt.want, got.Int64)
			}
		})
	}
}
