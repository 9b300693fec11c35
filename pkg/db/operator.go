package db

import (
	"context"

	"github.com/83years/oadb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for high-level components (SchemaManager, Orchestrator, CopyWriter) to
// execute their specialized SQL operations internally.
//
// Design rationale:
// - Keeps interface minimal to avoid bloat with mixed semantics
// - Pool() enables components to use performance-critical features
//   (CopyFrom for bulk inserts)
// - Schema creation is handled by SchemaManager, which runs CREATE TABLE
//   statements generated from the pkg/schema models over the pool
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool for high-level components
	// to execute specialized SQL operations. Components use this for
	// bulk inserts (CopyFrom) and custom queries.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	// Used to determine if schema creation should prompt for confirmation.
	HasTables(ctx context.Context) (bool, error)

	// IsEmpty reports whether all target tables contain zero rows.
	// A fresh load (start) requires an empty database.
	IsEmpty(ctx context.Context, tables []string) (bool, error)

	// DropAllTables drops all tables in the public schema.
	// Used during schema initialization when overwriting existing data.
	DropAllTables(ctx context.Context) error
}
