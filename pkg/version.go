// Package pgkeeper holds build information shared by the CLI.
package pgkeeper

var (
	// Version of pgkeeper, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
