package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openfga/lists/internal/build"
)

// NewVersionCommand returns the command to get the lists version
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Return the lists version",
		Long:  "Return the lists version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}

	return cmd
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "lists version %s date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return err
}
