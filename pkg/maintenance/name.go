package maintenance

import (
	"github.com/jackc/pgx/v5"
)

// QualifiedName is a schema-qualified object name in the form
// "schema"."object", already quoted for direct use in SQL text.
// It is treated as an opaque SQL fragment.
type QualifiedName string

// NewQualifiedName quotes schema and object as SQL identifiers.
// Embedded double quotes are doubled and NUL bytes removed, so neither
// part can terminate its identifier.
func NewQualifiedName(schema, object string) QualifiedName {
	return QualifiedName(pgx.Identifier{schema, object}.Sanitize())
}

// String returns the quoted SQL fragment.
func (q QualifiedName) String() string {
	return string(q)
}
