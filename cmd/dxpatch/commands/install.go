package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the pack files into the toolchain and write the board descriptors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := options(cmd)
			opts.Progress, _ = cmd.Flags().GetBool("progress")
			opts.NoProvision, _ = cmd.Flags().GetBool("no-provision")

			result, err := c.app.Install(cmd.Context(), opts)
			if result != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d copied, %d unchanged, %s\n",
					result.Copied, result.Unchanged, plural(len(result.BoardPaths), "board"))
			}
			return err
		},
	}
	cmd.Flags().BoolP("progress", "p", false, "Show a live progress view")
	cmd.Flags().Bool("no-provision", false, "Fail instead of installing a missing toolchain")
	return cmd
}
