package iodb

import (
	"fmt"
	"net/url"

	"github.com/jackc/pgx/v5/pgconn"
)

// RedactURI returns a printable form of a connection string with the
// password removed. URL-style strings keep their structure, key/value
// strings are reduced to user@host:port/database.
func RedactURI(uri string) string {
	if u, err := url.Parse(uri); err == nil && u.Scheme != "" {
		return u.Redacted()
	}

	cfg, err := pgconn.ParseConfig(uri)
	if err != nil {
		return "<unparsable connection string>"
	}
	return fmt.Sprintf("%s@%s:%d/%s",
		cfg.User, cfg.Host, cfg.Port, cfg.Database)
}
