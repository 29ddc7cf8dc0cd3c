/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>
*/
package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/internal/ioapply"
	"github.com/gnames/pgkeeper/internal/iocatalog"
	"github.com/gnames/pgkeeper/internal/iodb"
	"github.com/gnames/pgkeeper/internal/iohousekeep"
	"github.com/gnames/pgkeeper/pkg/db"
	"github.com/spf13/cobra"
)

// getRunCmd returns the run command.
func getRunCmd() *cobra.Command {
	var progress bool

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run maintenance on every table, index and materialized view",
		Long: `Run maintenance on the configured database.

Phases run one after another, one object at a time:
  1. VACUUM ANALYZE of base tables (vacuum)
  2. REINDEX INDEX of indexes (reindex)
  3. REFRESH MATERIALIZED VIEW of materialized views (refresh_matviews)

A failed statement is logged and the run continues with the next object.
If objects of some kind could not be listed, the phase is skipped, the
remaining phases still run and pgkeeper exits with status 1.

Examples:
  # Run every enabled phase
  pgkeeper run

  # Only VACUUM ANALYZE, show progress
  pgkeeper run --reindex=false --refresh-matviews=false --progress

  # Use a specific config file
  pgkeeper run --config /etc/pgkeeper/nightly.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(operationOptions(cmd))
			err := runHousekeeping(cmd.Context(), progress)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addOperationFlags(runCmd)
	runCmd.Flags().BoolVarP(
		&progress, "progress", "p", false,
		"show progress bars",
	)

	return runCmd
}

func runHousekeeping(ctx context.Context, progress bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	op, err := connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	enum := iocatalog.New(op.Executor(), cfg, logger)
	apply := ioapply.New(op.Executor(), logger, ioapply.OptProgress(progress))
	hk := iohousekeep.New(cfg, enum, apply, logger)

	if err = hk.Run(ctx); err != nil {
		return err
	}

	gn.Info(`Housekeeping is complete.
Statements that failed, if any, are listed in the log.`)
	return nil
}

// connect opens the connection pool and reports where it is connected.
func connect(ctx context.Context) (db.Operator, error) {
	op := iodb.NewPgxOperator(logger)
	if err := op.Connect(ctx, cfg); err != nil {
		return nil, err
	}

	info, err := op.Describe(ctx)
	if err != nil {
		_ = op.Close()
		return nil, err
	}

	gn.Info("Connected to database: <em>%s@%s</em> (PostgreSQL %s)",
		info.User, info.Database, info.ServerVersion)
	logger.Info("Connected to database",
		"database", info.Database,
		"user", info.User,
		"server_version", info.ServerVersion,
	)
	return op, nil
}
