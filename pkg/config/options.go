package config

import (
	"strings"

	"github.com/gnames/gn"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDatabase sets the PostgreSQL connection URI.
func OptDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database", s) {
			c.Database = s
		}
	}
}

// OptExcludedSchemas sets schemas that are skipped during enumeration.
// Blank names are dropped with a warning. An empty slice clears the
// list, so nothing is excluded.
func OptExcludedSchemas(ss []string) Option {
	res := make([]string, 0, len(ss))
	for _, s := range ss {
		s = strings.TrimSpace(s)
		if isValidString("Excluded Schema", s) {
			res = append(res, s)
		}
	}
	return func(c *Config) {
		c.ExcludedSchemas = res
	}
}

// OptLogDir sets the directory for daily log files.
func OptLogDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Log Directory", s) {
			c.LogDir = s
		}
	}
}

// OptVacuum enables or disables VACUUM ANALYZE of tables.
func OptVacuum(b bool) Option {
	return func(c *Config) {
		c.Vacuum = b
	}
}

// OptReindex enables or disables REINDEX of indexes.
func OptReindex(b bool) Option {
	return func(c *Config) {
		c.Reindex = b
	}
}

// OptRefreshMatviews enables or disables refreshing of materialized
// views.
func OptRefreshMatviews(b bool) Option {
	return func(c *Config) {
		c.RefreshMatviews = b
	}
}

// OptFilterMatviews makes materialized view enumeration honor
// ExcludedSchemas.
func OptFilterMatviews(b bool) Option {
	return func(c *Config) {
		c.FilterMatviews = b
	}
}

// MaxPoolConns is the largest accepted pool.max_conns.
const MaxPoolConns = 1000

// OptPoolMaxConns sets the maximum number of pooled connections.
// Values above MaxPoolConns are lowered to MaxPoolConns.
func OptPoolMaxConns(i int) Option {
	return func(c *Config) {
		if !isValidInt("Pool Max Connections", i) {
			return
		}
		if i > MaxPoolConns {
			gn.Warn("<em>Pool Max Connections</em> cannot exceed %d, using it instead of %d",
				MaxPoolConns, i)
			i = MaxPoolConns
		}
		c.Pool.MaxConns = i
	}
}

// OptPoolApplicationName sets application_name of database sessions.
func OptPoolApplicationName(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Pool Application Name", s) {
			c.Pool.ApplicationName = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptLogMaxSizeMB sets the size in megabytes after which a daily log
// file is rotated.
func OptLogMaxSizeMB(i int) Option {
	return func(c *Config) {
		if isValidInt("Log Max Size", i) {
			c.Log.MaxSizeMB = i
		}
	}
}

// OptLogTraceSQL enables logging of every SQL statement.
func OptLogTraceSQL(b bool) Option {
	return func(c *Config) {
		c.Log.TraceSQL = b
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
