package db

import (
	"context"

	"github.com/gnames/pgkeeper/pkg/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Executor is the part of pgxpool.Pool used by the catalog enumerator
// and the maintenance applier. It is satisfied by *pgxpool.Pool and by
// pgxmock pools in tests.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Operator defines the interface for database connection management.
// It opens one pool per run and exposes it as an Executor for the
// components that enumerate and maintain database objects.
type Operator interface {
	// Connect establishes a connection pool to the database described
	// by cfg.Database and cfg.Pool.
	Connect(ctx context.Context, cfg *config.Config) error

	// Close closes the database connection pool.
	Close() error

	// Executor returns the connected pool, or nil before Connect.
	Executor() Executor

	// Describe returns the connected database name, user and server
	// version for user-facing messages.
	Describe(ctx context.Context) (Info, error)
}

// Info describes the database a pool is connected to.
type Info struct {
	Database      string
	User          string
	ServerVersion string
}
