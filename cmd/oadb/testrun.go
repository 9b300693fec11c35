package main

import (
	"github.com/spf13/cobra"
)

func getTestCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Runs a capped load for pipeline verification",
		Long: `Runs a fresh load with a per-file record cap. A capped load
exercises every parser and table against the real snapshot layout
without committing to the full volume.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(false, limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 1000,
		"records to read per input file")

	return cmd
}
