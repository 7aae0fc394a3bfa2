package ioimport

import (
	"database/sql"
	"strconv"
	"strings"
)

// absentValues are cell placeholders meaning "not specified". They
// coerce to an empty string for text fields and to NULL for numeric
// fields - never to zero, so absence stays distinguishable from a
// measured zero.
var absentValues = map[string]struct{}{
	"":            {},
	"未明确":         {},
	"nan":         {},
	"na":          {},
	"n/a":         {},
	"unspecified": {},
}

// cleanText trims a text cell and maps placeholder values to empty.
func cleanText(value string) string {
	value = strings.TrimSpace(value)
	if _, ok := absentValues[strings.ToLower(value)]; ok {
		return ""
	}
	return value
}

// parseNumeric parses a numeric cell. A dash-separated range like
// "3-8" collapses to its lower bound only: the single-value columns
// have no place for the upper one, and the catalog has always been
// built this way. With rangeLowerBound false, ranges become NULL
// instead of a silently lossy value. Unparseable values become NULL
// either way.
func parseNumeric(value string, rangeLowerBound bool) sql.NullFloat64 {
	value = cleanText(value)
	if value == "" {
		return sql.NullFloat64{}
	}

	if idx := strings.Index(value, "-"); idx > 0 {
		if !rangeLowerBound {
			return sql.NullFloat64{}
		}
		value = strings.TrimSpace(value[:idx])
	}

	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

// parseInteger parses like parseNumeric, then truncates to an
// integer.
func parseInteger(value string, rangeLowerBound bool) sql.NullInt64 {
	num := parseNumeric(value, rangeLowerBound)
	if !num.Valid {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(num.Float64), Valid: true}
}
