package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/errcode"
)

// CreateDirError is returned when a pgkeeper directory cannot be made.
func CreateDirError(dir string, err error) error {
	return fsError(
		errcode.CreateDirError,
		"Cannot create directory <em>%s</em>",
		dir, "cannot create directory", err,
	)
}

// WriteConfigError is returned when the default config file cannot be
// written.
func WriteConfigError(path string, err error) error {
	return fsError(
		errcode.ConfigWriteError,
		"Cannot write default config to <em>%s</em>",
		path, "cannot write config file", err,
	)
}

func fsError(
	code gn.ErrorCode,
	msg, path, action string,
	err error,
) error {
	// skip fsError and the exported constructor
	pc, _, _, _ := runtime.Caller(2)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: code,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: %s: %w", fn.Name(), action, err),
	}
}
