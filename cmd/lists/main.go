package main

import (
	"os"

	"github.com/openfga/lists/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	rootCmd.AddCommand(cmd.NewTraceCommand())
	rootCmd.AddCommand(cmd.NewTeardownCommand())
	rootCmd.AddCommand(cmd.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
