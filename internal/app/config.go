package app

import (
	"github.com/spf13/cobra"

	"github.com/readeck/bitone/pkg/config"
)

func init() {
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		return config.WriteConfig(c.OutOrStdout())
	},
}
