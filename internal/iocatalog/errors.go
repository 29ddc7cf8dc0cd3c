package iocatalog

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/errcode"
	"github.com/gnames/pgkeeper/pkg/maintenance"
)

// QueryError is returned when a catalog query cannot be executed.
func QueryError(kind maintenance.Kind, err error) error {
	msg := "Cannot list <em>%s</em> objects from the system catalog"
	vars := []any{kind.String()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogQueryError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: catalog query for %s: %w",
			fn.Name(), kind, err),
	}
}

// ScanError is returned when catalog rows cannot be read.
func ScanError(kind maintenance.Kind, err error) error {
	msg := "Cannot read <em>%s</em> names from the system catalog"
	vars := []any{kind.String()}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CatalogScanError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: catalog rows for %s: %w",
			fn.Name(), kind, err),
	}
}

// UnknownKindError is returned for a kind without catalog query.
func UnknownKindError(kind maintenance.Kind) error {
	return &gn.Error{
		Code: errcode.CatalogUnknownKindError,
		Msg:  "Unknown object kind <em>%s</em>",
		Vars: []any{kind.String()},
		Err:  fmt.Errorf("no catalog query for %s", kind),
	}
}
