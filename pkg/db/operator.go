// Package db defines the contracts for the optional PostgreSQL store.
// Implementations live in internal/iodb.
package db

import (
	"context"

	"github.com/gridstats/pbpkit/pkg/config"
	"github.com/gridstats/pbpkit/pkg/pbp"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management
// operations: connection lifecycle and a handle to the pool for
// components that need performance-critical features (CopyFrom for
// bulk inserts). Schema creation is the SchemaManager's concern.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for components that
	// execute specialized SQL operations.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public
	// schema. Used to decide whether schema creation should prompt
	// for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema. Used during
	// schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}

// PlayStore persists enriched plays.
type PlayStore interface {
	// InsertPlays bulk-inserts enriched plays and reports how many
	// rows were written.
	InsertPlays(ctx context.Context, plays []pbp.Play) (int, error)
}
