// Package ioschema implements the SchemaManager contract. It creates
// the constraint-free load schema from the pkg/schema models; keys and
// indexes are applied by an external step after the load.
package ioschema

import (
	"context"
	"log/slog"
	"strings"

	"github.com/83years/oadb/pkg/config"
	"github.com/83years/oadb/pkg/db"
	"github.com/83years/oadb/pkg/oadb"
	"github.com/83years/oadb/pkg/schema"
)

// manager implements the oadb.SchemaManager interface.
type manager struct {
	cfg      *config.Config
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(cfg *config.Config, op db.Operator) oadb.SchemaManager {
	return &manager{cfg: cfg, operator: op}
}

// Create creates every target table from the schema models. With
// use_unlogged_tables set the tables are created UNLOGGED to skip WAL
// during bulk load; the operator converts them after constraints are
// applied.
func (m *manager) Create(ctx context.Context) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	for _, model := range schema.AllModels() {
		ddl := schema.TableDDL(model)
		if m.cfg.Import.UseUnloggedTables {
			ddl = strings.Replace(
				ddl, "CREATE TABLE", "CREATE UNLOGGED TABLE", 1)
		}

		if _, err := pool.Exec(ctx, ddl); err != nil {
			return CreateTableError(model.TableName(), err)
		}

		slog.Info("Created table",
			"table", model.TableName(),
			"unlogged", m.cfg.Import.UseUnloggedTables)
	}

	return nil
}

// Drop removes all tables of the public schema.
func (m *manager) Drop(ctx context.Context) error {
	if m.operator.Pool() == nil {
		return NotConnectedError()
	}
	return m.operator.DropAllTables(ctx)
}
