// Package iohousekeep implements the maintenance.Housekeeper interface.
// It sequences catalog enumeration and maintenance for every enabled
// object kind.
package iohousekeep

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/gnames/pgkeeper/pkg/maintenance"
)

// housekeeper implements the Housekeeper interface.
type housekeeper struct {
	cfg    *config.Config
	enum   maintenance.Enumerator
	apply  maintenance.Applier
	logger *slog.Logger
}

// New creates a Housekeeper. Enabled phases are read from cfg.
func New(
	cfg *config.Config,
	enum maintenance.Enumerator,
	apply maintenance.Applier,
	logger *slog.Logger,
) maintenance.Housekeeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &housekeeper{
		cfg:    cfg,
		enum:   enum,
		apply:  apply,
		logger: logger,
	}
}

// Run executes up to 3 sequential phases:
//  1. VACUUM ANALYZE base tables (vacuum)
//  2. REINDEX indexes (reindex)
//  3. REFRESH materialized views (refresh_matviews)
//
// A phase whose enumeration fails is skipped, later phases still run.
// Enumeration errors are returned joined after the last phase.
func (h *housekeeper) Run(ctx context.Context) error {
	kinds := Phases(h.cfg)
	if len(kinds) == 0 {
		gn.Warn("All maintenance operations are disabled, nothing to do")
		h.logger.Warn("No maintenance operations enabled")
		return nil
	}

	h.logger.Info("Starting housekeeping",
		"operations", h.cfg.EnabledOperations(),
		"excluded_schemas", h.cfg.ExcludedSchemas,
	)
	timeStart := time.Now()

	var errs []error
	for i, kind := range kinds {
		h.logger.Info("Phase started",
			"phase", i+1,
			"phases", len(kinds),
			"operation", kind.Operation(),
		)
		if err := h.runPhase(ctx, kind); err != nil {
			errs = append(errs, err)
			continue
		}
	}

	h.logger.Info("Housekeeping finished",
		"duration", time.Since(timeStart).String(),
		"failed_phases", len(errs),
	)
	return errors.Join(errs...)
}

func (h *housekeeper) runPhase(
	ctx context.Context,
	kind maintenance.Kind,
) error {
	names, err := h.enum.List(ctx, kind)
	if err != nil {
		h.logger.Error("Enumeration failed, skipping phase",
			"kind", kind.String(),
			"error", err,
		)
		return PhaseError(kind, err)
	}

	gn.Info("%s: <em>%s</em> objects",
		kind.Operation(), humanize.Comma(int64(len(names))))
	h.apply.Apply(ctx, kind, names)
	return nil
}

// Phases returns enabled kinds in the order they are processed.
func Phases(cfg *config.Config) []maintenance.Kind {
	var res []maintenance.Kind
	if cfg.Vacuum {
		res = append(res, maintenance.Table)
	}
	if cfg.Reindex {
		res = append(res, maintenance.Index)
	}
	if cfg.RefreshMatviews {
		res = append(res, maintenance.MaterializedView)
	}
	return res
}
