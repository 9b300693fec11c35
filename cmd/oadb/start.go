package main

import (
	"github.com/spf13/cobra"
)

func getStartCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Begins a fresh snapshot load",
		Long: `Begins a fresh load of the snapshot into an empty database,
ignoring any existing progress state. Refuses to run when a state file
from a previous load exists; pass --force to discard it first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if force {
				if err := resetState(); err != nil {
					return err
				}
			}
			return runIngest(false, 0)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false,
		"discard an existing state file before starting")

	return cmd
}
