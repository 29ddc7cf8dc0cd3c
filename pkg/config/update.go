package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/errcode"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only HomeDir. A nil ExcludedSchemas is skipped so the
// default list survives, an empty non-nil one is kept.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int
	s = c.Database
	if s != "" {
		res = append(res, OptDatabase(s))
	}
	if c.ExcludedSchemas != nil {
		res = append(res, OptExcludedSchemas(c.ExcludedSchemas))
	}
	s = c.LogDir
	if s != "" {
		res = append(res, OptLogDir(s))
	}

	res = append(res,
		OptVacuum(c.Vacuum),
		OptReindex(c.Reindex),
		OptRefreshMatviews(c.RefreshMatviews),
		OptFilterMatviews(c.FilterMatviews),
	)

	i = c.Pool.MaxConns
	if i > 0 {
		res = append(res, OptPoolMaxConns(i))
	}
	s = c.Pool.ApplicationName
	if s != "" {
		res = append(res, OptPoolApplicationName(s))
	}

	s = c.Log.Format
	if s != "" {
		res = append(res, OptLogFormat(s))
	}
	s = c.Log.Level
	if s != "" {
		res = append(res, OptLogLevel(s))
	}
	s = c.Log.Destination
	if s != "" {
		res = append(res, OptLogDestination(s))
	}
	i = c.Log.MaxSizeMB
	if i > 0 {
		res = append(res, OptLogMaxSizeMB(i))
	}
	res = append(res, OptLogTraceSQL(c.Log.TraceSQL))

	return res
}

// Validate reports required settings that are missing.
// Config built with New() and Update() is otherwise always valid.
func (c *Config) Validate() error {
	if c.Database == "" {
		return &gn.Error{
			Code: errcode.ConfigMissingFieldError,
			Msg:  "Required setting <em>%s</em> is missing",
			Vars: []any{"database"},
			Err: fmt.Errorf(
				"config: database connection URI is not set",
			),
		}
	}
	return nil
}

// EnabledOperations returns names of enabled maintenance operations in
// the order they run.
func (c *Config) EnabledOperations() []string {
	var res []string
	if c.Vacuum {
		res = append(res, "vacuum")
	}
	if c.Reindex {
		res = append(res, "reindex")
	}
	if c.RefreshMatviews {
		res = append(res, "refresh_matviews")
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
