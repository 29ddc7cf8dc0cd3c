package maintenance

import (
	"strings"
)

// Statement builds the maintenance statement for an object of the kind.
// The name is substituted verbatim, it must come from NewQualifiedName.
// VACUUM, REINDEX and REFRESH do not accept bound identifiers.
func (k Kind) Statement(name QualifiedName) string {
	op := k.Operation()
	if op == "" {
		return ""
	}
	return op + " " + string(name) + ";"
}

// QuoteLiteral returns s as a single-quoted SQL string literal.
func QuoteLiteral(s string) string {
	s = strings.ReplaceAll(s, "\x00", "")
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// LiteralList renders values as a comma-separated list of quoted
// literals suitable for a NOT IN (...) clause. An empty input gives an
// empty string.
func LiteralList(values []string) string {
	res := make([]string, len(values))
	for i, v := range values {
		res[i] = QuoteLiteral(v)
	}
	return strings.Join(res, ",")
}
