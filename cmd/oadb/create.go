package main

import (
	"context"

	"github.com/83years/oadb/internal/iodb"
	"github.com/83years/oadb/internal/ioschema"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getCreateCmd() *cobra.Command {
	var drop bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates the constraint-free load schema",
		Long: `Creates every target table of the snapshot load. The tables carry
no primary keys, indexes or foreign keys: constraints are applied by an
external step after the load, which keeps COPY throughput high.

With --drop all existing tables of the database are removed first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			op := iodb.NewPgxOperator()
			if err := op.Connect(ctx, &cfg.Database); err != nil {
				gn.PrintErrorMessage(err)
				return &exitError{code: exitInternal, err: err}
			}
			defer op.Close()

			mgr := ioschema.NewManager(cfg, op)

			if drop {
				hasTables, err := op.HasTables(ctx)
				if err != nil {
					gn.PrintErrorMessage(err)
					return &exitError{code: exitInternal, err: err}
				}
				if hasTables {
					ok, err := confirm(
						"Drop ALL tables of the database? [y/N]: ")
					if err != nil {
						return &exitError{code: exitInternal, err: err}
					}
					if !ok {
						gn.Message("Keeping existing tables")
						return nil
					}
					if err = mgr.Drop(ctx); err != nil {
						gn.PrintErrorMessage(err)
						return &exitError{code: exitInternal, err: err}
					}
				}
			}

			if err := mgr.Create(ctx); err != nil {
				gn.PrintErrorMessage(err)
				return &exitError{code: exitInternal, err: err}
			}

			gn.Message("Load schema is ready")
			return nil
		},
	}

	cmd.Flags().BoolVar(&drop, "drop", false,
		"drop all existing tables first")

	return cmd
}
