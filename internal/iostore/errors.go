package iostore

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/morphdb/morphdb/pkg/errcode"
)

// NotConnectedError creates an error for when a store operation is
// attempted without a database connection.
func NotConnectedError() error {
	msg := "Store operation attempted without database connection"

	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("not connected to database"),
	}
}

// EmptyNameError creates an error for an insert with a blank natural
// key.
func EmptyNameError() error {
	msg := `Species name cannot be empty

Every record needs a species name: it is the natural key
of the catalog.`

	return &gn.Error{
		Code: errcode.StoreEmptyNameError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("species name is empty"),
	}
}

// DuplicateNameError creates an error for an insert whose natural key
// already exists.
func DuplicateNameError(name string) error {
	msg := fmt.Sprintf(`Species <em>%s</em> already exists

Species names are unique. Use the replace path to overwrite
the existing record.`, name)

	return &gn.Error{
		Code: errcode.StoreDuplicateNameError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("species %q already exists", name),
	}
}

// IsDuplicateName reports whether err marks a natural-key collision.
func IsDuplicateName(err error) bool {
	gnErr, ok := err.(*gn.Error)
	return ok && gnErr.Code == errcode.StoreDuplicateNameError
}

// InsertError creates an error for a failed row insert or update.
func InsertError(name string, err error) error {
	msg := fmt.Sprintf("Could not store species <em>%s</em>", name)

	return &gn.Error{
		Code: errcode.StoreInsertError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to store species %q: %w", name, err),
	}
}

// LookupError creates an error for a failed point lookup.
func LookupError(name string, err error) error {
	msg := "Could not look up species"
	if name != "" {
		msg = fmt.Sprintf("Could not look up species <em>%s</em>", name)
	}

	return &gn.Error{
		Code: errcode.StoreLookupError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed lookup: %w", err),
	}
}

// ScanError creates an error for a failed table scan.
func ScanError(err error) error {
	msg := "Could not read species records"

	return &gn.Error{
		Code: errcode.StoreScanError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to scan species: %w", err),
	}
}

// VarietyError creates an error for a failed variety operation.
func VarietyError(name string, err error) error {
	msg := "Could not store variety"
	if name != "" {
		msg = fmt.Sprintf("Could not store variety <em>%s</em>", name)
	}
	if err == nil {
		err = fmt.Errorf("variety name is empty")
	}

	return &gn.Error{
		Code: errcode.StoreVarietyError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("variety operation failed: %w", err),
	}
}

// ClearError creates an error for a failed administrative reset.
func ClearError(err error) error {
	msg := "Could not clear the catalog"

	return &gn.Error{
		Code: errcode.StoreClearError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to clear catalog: %w", err),
	}
}

// StatsError creates an error for a failed statistics query.
func StatsError(err error) error {
	msg := "Could not compute catalog statistics"

	return &gn.Error{
		Code: errcode.StoreStatsError,
		Msg:  msg,
		Vars: nil,
		Err:  fmt.Errorf("failed to compute statistics: %w", err),
	}
}
