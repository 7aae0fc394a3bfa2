package catalog

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// ValidateFilters checks a per-field constraint set before any SQL is
// built from it. Unknown field names are rejected instead of being
// silently interpolated into a query clause; values for numeric and
// integer fields must parse as numbers.
func ValidateFilters(filters map[string]string) error {
	for _, column := range slices.Sorted(maps.Keys(filters)) {
		f, ok := FieldByColumn(column)
		if !ok {
			return unknownFieldError(column)
		}

		if f.Kind == KindText {
			continue
		}

		val := strings.TrimSpace(filters[column])
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			return badFilterValueError(column, filters[column])
		}
	}
	return nil
}

func unknownFieldError(column string) error {
	msg := fmt.Sprintf(`Unknown filter field <em>%s</em>

Filter fields must be catalog column names. Run
<em>morphdb search --fields</em> to list them.`, column)

	return &gn.Error{
		Code: errcode.QueryFieldError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("unknown filter field %q", column),
	}
}

func badFilterValueError(column, value string) error {
	msg := fmt.Sprintf(`Filter field <em>%s</em> needs a numeric value, got <em>%s</em>

Numeric fields filter as lower bounds: records with
%s >= value match.`, column, value, column)

	return &gn.Error{
		Code: errcode.QueryFieldError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("filter %s: %q is not a number", column, value),
	}
}
