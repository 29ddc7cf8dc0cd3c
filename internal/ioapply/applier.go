// Package ioapply implements the maintenance.Applier interface. It runs
// VACUUM ANALYZE, REINDEX INDEX and REFRESH MATERIALIZED VIEW statements
// one object at a time.
package ioapply

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/pgkeeper/pkg/db"
	"github.com/gnames/pgkeeper/pkg/maintenance"
)

// applier implements the Applier interface.
type applier struct {
	exec     db.Executor
	logger   *slog.Logger
	progress bool
}

// Option configures the applier.
type Option func(*applier)

// OptProgress shows a progress bar on STDERR while statements run.
func OptProgress(b bool) Option {
	return func(a *applier) {
		a.progress = b
	}
}

// New creates an Applier that runs statements through exec and logs
// failures to logger.
func New(
	exec db.Executor,
	logger *slog.Logger,
	opts ...Option,
) maintenance.Applier {
	if logger == nil {
		logger = slog.Default()
	}
	res := &applier{exec: exec, logger: logger}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Apply runs the statement of kind for each name in order. Every
// statement is executed on its own, outside of a transaction. A failed
// statement is logged once at error level and the loop continues.
func (a *applier) Apply(
	ctx context.Context,
	kind maintenance.Kind,
	names []maintenance.QualifiedName,
) {
	var failed int
	timeStart := time.Now()
	bar := a.newProgress(kind, len(names))

	for _, name := range names {
		if err := a.applyOne(ctx, kind, name); err != nil {
			failed++
			a.logger.Error("Maintenance statement failed",
				"kind", kind.String(),
				"object", name.String(),
				"error", err,
			)
		}
		bar.increment()
	}
	bar.finish()

	a.logger.Info(kind.Operation()+" finished",
		"kind", kind.String(),
		"objects", humanize.Comma(int64(len(names))),
		"failed", humanize.Comma(int64(failed)),
		"duration", time.Since(timeStart).String(),
	)
}

func (a *applier) applyOne(
	ctx context.Context,
	kind maintenance.Kind,
	name maintenance.QualifiedName,
) error {
	stmt := kind.Statement(name)
	if stmt == "" {
		return fmt.Errorf("no maintenance statement for %s", kind)
	}

	timeStart := time.Now()
	if _, err := a.exec.Exec(ctx, stmt); err != nil {
		return err
	}

	a.logger.Debug("Maintenance statement done",
		"kind", kind.String(),
		"object", name.String(),
		"duration", time.Since(timeStart).String(),
	)
	return nil
}
