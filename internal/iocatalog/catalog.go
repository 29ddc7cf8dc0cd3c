// Package iocatalog implements the maintenance.Enumerator interface. It
// reads the PostgreSQL system catalog to find tables, indexes and
// materialized views that need housekeeping.
package iocatalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/gnames/pgkeeper/pkg/db"
	"github.com/gnames/pgkeeper/pkg/maintenance"
	"github.com/jackc/pgx/v5"
)

// catalog implements the Enumerator interface.
type catalog struct {
	exec           db.Executor
	excluded       string
	filterMatviews bool
	logger         *slog.Logger
}

// New creates an Enumerator that runs catalog queries through exec.
// Excluded schemas and the materialized view filter are taken from cfg.
func New(
	exec db.Executor,
	cfg *config.Config,
	logger *slog.Logger,
) maintenance.Enumerator {
	if logger == nil {
		logger = slog.Default()
	}
	return &catalog{
		exec:           exec,
		excluded:       cfg.ExcludedSchemasSQL(),
		filterMatviews: cfg.FilterMatviews,
		logger:         logger,
	}
}

// List returns quoted names of all objects of the kind, ordered by
// schema and object name. The catalog query returns schema and object
// separately, quoting happens in Go.
func (c *catalog) List(
	ctx context.Context,
	kind maintenance.Kind,
) ([]maintenance.QualifiedName, error) {
	q, err := c.query(kind)
	if err != nil {
		return nil, err
	}

	timeStart := time.Now()
	rows, err := c.exec.Query(ctx, q)
	if err != nil {
		return nil, QueryError(kind, err)
	}

	res, err := pgx.CollectRows(rows, scanName)
	if err != nil {
		return nil, ScanError(kind, err)
	}

	c.logger.Debug("Enumerated catalog objects",
		"kind", kind.String(),
		"count", len(res),
		"duration", time.Since(timeStart).String(),
	)
	return res, nil
}

func scanName(row pgx.CollectableRow) (maintenance.QualifiedName, error) {
	var schema, object string
	if err := row.Scan(&schema, &object); err != nil {
		return "", err
	}
	return maintenance.NewQualifiedName(schema, object), nil
}

// query builds the catalog query for the kind. Schema filtering uses
// the pre-rendered literal list, an empty list drops the condition.
func (c *catalog) query(kind maintenance.Kind) (string, error) {
	switch kind {
	case maintenance.Table:
		return fmt.Sprintf(tablesSQL,
			c.condition("AND", "table_schema")), nil
	case maintenance.Index:
		return fmt.Sprintf(indexesSQL,
			c.condition("WHERE", "schemaname")), nil
	case maintenance.MaterializedView:
		var cond string
		if c.filterMatviews {
			cond = c.condition("WHERE", "schemaname")
		}
		return fmt.Sprintf(matviewsSQL, cond), nil
	default:
		return "", UnknownKindError(kind)
	}
}

func (c *catalog) condition(keyword, column string) string {
	if c.excluded == "" {
		return ""
	}
	return fmt.Sprintf("\n  %s %s NOT IN (%s)", keyword, column, c.excluded)
}

const tablesSQL = `SELECT table_schema, table_name
FROM information_schema.tables
WHERE table_type = 'BASE TABLE'%s
ORDER BY table_schema, table_name`

const indexesSQL = `SELECT schemaname, indexname
FROM pg_indexes%s
ORDER BY schemaname, indexname`

const matviewsSQL = `SELECT schemaname, matviewname
FROM pg_matviews%s
ORDER BY schemaname, matviewname`
