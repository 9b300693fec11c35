// Package oadb defines the contracts between the CLI and the
// ingestion subsystems. Implementations live in internal/io*.
package oadb

import (
	"context"
	"time"
)

// SchemaManager creates and drops the constraint-free load schema.
// Primary keys, indexes and foreign keys are applied by an external
// step after the load finishes.
type SchemaManager interface {
	// Create creates all target tables. Existing tables are left
	// untouched.
	Create(ctx context.Context) error

	// Drop removes all tables in the public schema.
	Drop(ctx context.Context) error
}

// Orchestrator drives the entity parsers over the snapshot in
// dependency phases and owns the persistent progress state.
type Orchestrator interface {
	// Run executes all configured parsers. With resume true it honours
	// the persisted state and processes only remaining files; otherwise
	// it starts from scratch and requires a clean state.
	Run(ctx context.Context, resume bool) (RunSummary, error)

	// Status renders a human-readable snapshot of per-parser state.
	Status() (string, error)

	// Reset deletes the persisted state document. The database is not
	// touched.
	Reset() error
}

// RunSummary aggregates the outcome of one orchestrator run.
type RunSummary struct {
	Succeeded int
	Failed    int
	Records   int64
	Errors    int64
	Duration  time.Duration
}
