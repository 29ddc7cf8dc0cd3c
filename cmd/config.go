/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/internal/iodb"
	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// getConfigCmd returns the config command.
func getConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration pgkeeper would use, after the config file,
environment variables and defaults are merged. The database password is
redacted.

Examples:
  pgkeeper config
  PGKEEPER_LOG_LEVEL=debug pgkeeper config`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := printConfig(cmd.OutOrStdout(), cfg)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	return configCmd
}

func printConfig(w io.Writer, c *config.Config) error {
	out := *c
	out.Database = iodb.RedactURI(c.Database)
	out.LogDir = c.LogDirectory()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(out); err != nil {
		return err
	}
	return enc.Close()
}
