package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download and extract the configured packs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := c.app.Fetch(cmd.Context(), options(cmd))
			if err != nil {
				return err
			}
			for _, dir := range result.Sources {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), dir)
			}
			return nil
		},
	}
}
