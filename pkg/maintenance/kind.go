// Package maintenance defines the target kinds, quoted object names and
// statement templates used by pgkeeper, together with the contracts of
// the components that enumerate and maintain database objects.
//
// This package has no I/O dependencies.
package maintenance

import (
	"fmt"
	"strings"
)

// Kind selects which catalog query and which maintenance statement
// are used for a group of database objects.
type Kind int

const (
	// Table is a base table, maintained with VACUUM ANALYZE.
	Table Kind = iota + 1
	// Index is an index, maintained with REINDEX INDEX.
	Index
	// MaterializedView is refreshed with REFRESH MATERIALIZED VIEW.
	MaterializedView
)

// Kinds lists all kinds in the order they are processed during a run.
var Kinds = []Kind{Table, Index, MaterializedView}

// String returns the short name of the kind used in flags and logs.
func (k Kind) String() string {
	switch k {
	case Table:
		return "table"
	case Index:
		return "index"
	case MaterializedView:
		return "matview"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Operation returns the name of the maintenance operation for the kind.
func (k Kind) Operation() string {
	switch k {
	case Table:
		return "VACUUM ANALYZE"
	case Index:
		return "REINDEX INDEX"
	case MaterializedView:
		return "REFRESH MATERIALIZED VIEW"
	default:
		return ""
	}
}

// ParseKind converts a flag value into a Kind. It accepts singular and
// plural forms, and "materialized_view" as a long form of "matview".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "tables":
		return Table, nil
	case "index", "indexes", "indices":
		return Index, nil
	case "matview", "matviews", "materialized_view", "materialized_views":
		return MaterializedView, nil
	}
	return 0, fmt.Errorf("unknown object kind %q", s)
}
