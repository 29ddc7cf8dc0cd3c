// Package iodb implements database operations using pgxpool.
// This is an impure I/O package that implements contracts
// defined in pkg/.
package iodb

import (
	"context"
	"log/slog"

	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/gnames/pgkeeper/pkg/db"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
)

// pgxOperator implements db.Operator interface using
// pgxpool for connection pooling.
type pgxOperator struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewPgxOperator creates a new database operator
// (without connecting). The logger receives SQL traces when
// log.trace_sql is enabled.
func NewPgxOperator(logger *slog.Logger) db.Operator {
	if logger == nil {
		logger = slog.Default()
	}
	return &pgxOperator{logger: logger}
}

// Connect establishes a connection pool to PostgreSQL and verifies it
// with a ping.
func (p *pgxOperator) Connect(
	ctx context.Context,
	cfg *config.Config,
) error {
	target := RedactURI(cfg.Database)

	poolConfig, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return ConnectionError(target, err)
	}

	poolConfig.MaxConns = int32(cfg.Pool.MaxConns)
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = 0 // No lifetime limit
	poolConfig.MaxConnIdleTime = 0 // No idle timeout

	// application_name from the URI wins over the config value
	params := poolConfig.ConnConfig.RuntimeParams
	if _, ok := params["application_name"]; !ok && cfg.Pool.ApplicationName != "" {
		params["application_name"] = cfg.Pool.ApplicationName
	}

	if cfg.Log.TraceSQL {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   tracelog.LoggerFunc(traceLogger(p.logger)),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return ConnectionError(target, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return ConnectionError(target, err)
	}

	p.pool = pool
	return nil
}

// Close releases all database connections.
func (p *pgxOperator) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}

// Executor returns the connection pool.
func (p *pgxOperator) Executor() db.Executor {
	if p.pool == nil {
		return nil
	}
	return p.pool
}

// Describe reports which database and server the pool talks to.
func (p *pgxOperator) Describe(ctx context.Context) (db.Info, error) {
	var res db.Info
	if p.pool == nil {
		return res, NotConnectedError()
	}

	q := `SELECT current_database(), current_user,
		current_setting('server_version')`
	err := p.pool.QueryRow(ctx, q).Scan(
		&res.Database, &res.User, &res.ServerVersion,
	)
	if err != nil {
		return res, DescribeError(err)
	}
	return res, nil
}

// traceLogger bridges pgx tracelog records to slog. Every record is
// written at debug level, failed statements are reported by their callers.
func traceLogger(logger *slog.Logger) func(
	ctx context.Context,
	level tracelog.LogLevel,
	msg string,
	data map[string]any,
) {
	return func(
		ctx context.Context,
		level tracelog.LogLevel,
		msg string,
		data map[string]any,
	) {
		if msg == "Prepare" {
			return
		}
		attrs := make([]slog.Attr, 0, len(data)+1)
		attrs = append(attrs, slog.String("pgx_level", level.String()))
		for k, v := range data {
			attrs = append(attrs, slog.Any(k, v))
		}
		logger.LogAttrs(ctx, slog.LevelDebug, "pgx: "+msg, attrs...)
	}
}
