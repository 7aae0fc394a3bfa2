package iologger

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// CreateLogFileError creates an error for a log file that could not
// be created.
func CreateLogFileError(path string, err error) error {
	msg := fmt.Sprintf(`Cannot create log file <em>%s</em>

<em>How to fix:</em>
  1. Check directory permissions
  2. Use <em>stderr</em> or <em>stdout</em> as log destination`, path)

	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to create log file %s: %w", path, err),
	}
}
