package ioexport

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// WriteError creates an error for a failed export write.
func WriteError(err error) error {
	msg := `Cannot write the export file

<em>Possible causes:</em>
  - The destination is not writable
  - The disk is full`

	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to write export: %w", err),
	}
}
