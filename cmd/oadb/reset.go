package main

import (
	"fmt"
	"strings"

	"github.com/83years/oadb/internal/iostate"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

func getResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Deletes the ingestion state file",
		Long: `Deletes the persisted progress state. The database is not touched;
a subsequent 'oadb start' begins a fresh load.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := confirm(fmt.Sprintf(
					"Delete state file %s? [y/N]: ",
					cfg.ResolvedStateFile()))
				if err != nil {
					return &exitError{code: exitInternal, err: err}
				}
				if !ok {
					gn.Message("Keeping state file")
					return nil
				}
			}
			return resetState()
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false,
		"skip the confirmation prompt")

	return cmd
}

func resetState() error {
	store, err := iostate.Load(cfg.ResolvedStateFile())
	if err != nil {
		gn.PrintErrorMessage(err)
		return &exitError{code: exitInternal, err: err}
	}
	if err = store.Reset(); err != nil {
		gn.PrintErrorMessage(err)
		return &exitError{code: exitInternal, err: err}
	}

	gn.Message("State file removed")
	return nil
}

// confirm displays a message and reads user input from stdin.
// Defaults to "no" - the user must explicitly type "y" or "yes".
func confirm(message string) (bool, error) {
	fmt.Print(message)

	var response string
	// Scanln returns error on empty input, but empty means the
	// default "no"
	_, err := fmt.Scanln(&response)
	if err != nil && err.Error() != "unexpected newline" {
		return false, err
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}
