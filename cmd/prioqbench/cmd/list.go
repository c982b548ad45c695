package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vhornak/prioq/factory"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available priority-queue variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, variant := range factory.All {
			fmt.Fprintln(cmd.OutOrStdout(), variant)
		}
		return nil
	},
}
