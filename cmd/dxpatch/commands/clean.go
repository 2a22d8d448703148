package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove every file written by previous installs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Clean(cmd.Context(), options(cmd))
			if result != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d removed\n", result.Removed)
			}
			return err
		},
	}
}
