package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newBoardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "boards",
		Short: "Write a board descriptor for every device header",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.OutDir, _ = cmd.Flags().GetString("out")

			result, err := c.app.Boards(cmd.Context(), opts)
			if err != nil {
				return err
			}
			for _, path := range result.BoardPaths {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringP("out", "o", "", "Directory the boards/ descriptors are written under (default: boards-dir)")
	return cmd
}
