package ioquery

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// NotConnectedError creates an error for when a search is attempted
// without a database connection.
func NotConnectedError() error {
	msg := "Search attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// SearchError creates an error for a failed search statement.
func SearchError(err error) error {
	msg := `Search failed

<em>Possible causes:</em>
  - The database schema is out of date

<em>How to fix:</em>
  1. Run <em>morphdb migrate</em> to update the schema`

	return &gn.Error{
		Code: errcode.QuerySearchError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("search failed: %w", err),
	}
}
