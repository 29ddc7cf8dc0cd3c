package iodb

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/errcode"
)

// ConnectionError is returned when the pool cannot be created or the
// database does not answer a ping. target must not contain a password.
func ConnectionError(target string, err error) error {
	msg := `Cannot connect to PostgreSQL at <em>%s</em>
Check that the server is running and the <em>database</em> setting is correct`
	vars := []any{target}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot connect to %s: %w",
			fn.Name(), target, err),
	}
}

// NotConnectedError is returned when an operation needs a pool but
// Connect was not called or failed.
func NotConnectedError() error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Database is not connected",
		Err:  fmt.Errorf("from %s: database pool is nil", fn.Name()),
	}
}

// DescribeError is returned when connection details cannot be queried.
func DescribeError(err error) error {
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBConnectionError,
		Msg:  "Cannot read connection details from the database",
		Err:  fmt.Errorf("from %s: describe connection: %w", fn.Name(), err),
	}
}
