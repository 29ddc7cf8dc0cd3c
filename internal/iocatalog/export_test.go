package iocatalog

import (
	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/gnames/pgkeeper/pkg/maintenance"
)

// Export internal symbols for testing.
// This file is only compiled during testing.

// ExportQuery returns the catalog query New would run for kind.
func ExportQuery(cfg *config.Config, kind maintenance.Kind) (string, error) {
	c := New(nil, cfg, nil).(*catalog)
	return c.query(kind)
}
