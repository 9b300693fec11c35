package main

import (
	"github.com/spf13/cobra"
)

func getResumeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Continues an interrupted snapshot load",
		Long: `Continues a load using the persisted progress state. Parsers that
already completed are skipped; interrupted parsers restart at their
first unprocessed file. No mid-file resume is attempted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runIngest(true, 0)
		},
	}
}
