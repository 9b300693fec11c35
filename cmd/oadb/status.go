package main

import (
	"fmt"

	"github.com/83years/oadb/internal/iodb"
	"github.com/83years/oadb/internal/ioorch"
	"github.com/83years/oadb/internal/iostate"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Prints per-parser ingestion state",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := iostate.Load(cfg.ResolvedStateFile())
			if err != nil {
				gn.PrintErrorMessage(err)
				return &exitError{code: exitInternal, err: err}
			}

			// status is read-only; no database connection needed
			orch := ioorch.New(cfg, iodb.NewPgxOperator(), store)
			out, err := orch.Status()
			if err != nil {
				gn.PrintErrorMessage(err)
				return &exitError{code: exitInternal, err: err}
			}

			fmt.Print(out)
			return nil
		},
	}
}
