// Package main provides the pgkeeper CLI application.
// pgkeeper runs scheduled maintenance of a PostgreSQL database.
package main

import "github.com/gnames/pgkeeper/cmd"

func main() {
	cmd.Execute()
}
