// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with LISTS, or config.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("LISTS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/lists", "$HOME/.lists", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	root := &cobra.Command{
		Use:   "lists",
		Short: "Exercise singly linked stack lists",
		Long: `Exercise singly linked stack lists.

The trace command replays push, pop and peek operations against a list and prints every result.
The teardown command builds a long list and releases it node by node.`,
		SilenceUsage: true,
	}
	bindLogFlags(root)

	return root
}
