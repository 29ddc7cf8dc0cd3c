/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/internal/ioconfig"
	"github.com/gnames/pgkeeper/internal/iofs"
	"github.com/gnames/pgkeeper/internal/iologger"
	app "github.com/gnames/pgkeeper/pkg"
	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	homeDir   string
	cfgFile   string
	cfg       *config.Config
	logger    *slog.Logger
	logCloser io.Closer
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pgkeeper",
		Short:   "pgkeeper runs routine PostgreSQL maintenance",
		Long: `pgkeeper connects to a PostgreSQL database and maintains it:

  - VACUUM ANALYZE for every base table
  - REINDEX INDEX for every index
  - REFRESH MATERIALIZED VIEW for every materialized view

Objects in excluded schemas (pg_catalog, information_schema and pg_toast
by default) are skipped. A failure on one object is logged and the run
continues. pgkeeper is meant to be started by cron, a systemd timer or a
Kubernetes CronJob.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (PGKEEPER_*)
  3. Config file (--config, ./config.yml, ./config.yaml or
     ~/.config/pgkeeper/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (log.level → PGKEEPER_LOG_LEVEL).

    PGKEEPER_DATABASE             PostgreSQL connection URI
    PGKEEPER_EXCLUDED_SCHEMAS     Comma-separated schema names
    PGKEEPER_VACUUM               Enable VACUUM ANALYZE (true/false)
    PGKEEPER_REINDEX              Enable REINDEX (true/false)
    PGKEEPER_REFRESH_MATVIEWS     Enable REFRESH MATERIALIZED VIEW
    PGKEEPER_LOG_LEVEL            Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "pgkeeper version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for pgkeeper")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./config.yml, ./config.yaml or "+
			"~/.config/pgkeeper/config.yaml)")

	rootCmd.AddCommand(getRunCmd())
	rootCmd.AddCommand(getListCmd())
	rootCmd.AddCommand(getConfigCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfgFile == "" {
		var path string
		if path, err = iofs.EnsureConfigFile(homeDir, workDir); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if path != "" {
			gn.Info("Default configuration is written to <em>%s</em>", path)
		}
	}

	res, err := ioconfig.Load(cfgFile, workDir, homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	cfg = res.Config

	var l *slog.Logger
	l, logCloser, err = iologger.Init(cfg.LogDirectory(), cfg.Log)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	logger = l.With("run_id", uuid.NewString())
	slog.SetDefault(logger)

	source := res.SourcePath
	if source == "" {
		source = "defaults and environment"
	}
	logger.Info("Configuration loaded",
		"config_file", source,
		"command", cmd.Name(),
	)

	return nil
}

// Execute runs the root command. This is called by main.main().
// A non-zero exit status means configuration, logging, connection or
// catalog enumeration failed.
func Execute() {
	err := getRootCmd().Execute()
	if logCloser != nil {
		_ = logCloser.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}
