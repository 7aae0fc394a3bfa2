package ioimport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/internal/iostore"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// isDuplicate reports whether a store error marks a natural-key
// collision, which counts as a duplicate outcome rather than a
// failure.
func isDuplicate(err error) bool {
	return iostore.IsDuplicateName(err)
}

// ReadError creates an error for an unreadable or unparseable input
// file.
func ReadError(path string, err error) error {
	msg := `Cannot read the import file

<em>Possible causes:</em>
  - The file does not exist or is not readable
  - The file is not valid CSV

<em>How to fix:</em>
  1. Check the file path and permissions
  2. Export the spreadsheet again as CSV`
	if path != "" {
		msg = fmt.Sprintf(`Cannot read import file <em>%s</em>

<em>Possible causes:</em>
  - The file does not exist or is not readable
  - The file is not valid CSV

<em>How to fix:</em>
  1. Check the file path and permissions
  2. Export the spreadsheet again as CSV`, path)
	}

	return &gn.Error{
		Code: errcode.ImportReadError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to read import input %q: %w", path, err),
	}
}

// DecodeError creates an error for input that is neither UTF-8 nor
// GBK.
func DecodeError(path string, err error) error {
	msg := fmt.Sprintf(`Cannot decode import file <em>%s</em>

The file is neither UTF-8 nor GBK encoded.

<em>How to fix:</em>
  1. Re-export the spreadsheet as UTF-8 CSV`, path)

	return &gn.Error{
		Code: errcode.ImportDecodeError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to decode %q: %w", path, err),
	}
}

// MissingColumnError creates an error for input without the
// natural-key column. This is a structural problem: the whole batch
// is rejected before any row is processed.
func MissingColumnError(header string) error {
	msg := fmt.Sprintf(`Import file lacks the required column <em>%s</em>

The species-name column is the natural key of the catalog;
no rows can be imported without it.

<em>How to fix:</em>
  1. Check the header row of the file
  2. Export the original spreadsheet with all columns`, header)

	return &gn.Error{
		Code: errcode.ImportMissingColumnError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("required column %q missing", header),
	}
}
