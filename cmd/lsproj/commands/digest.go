package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <files...>",
		Short: "Print the digests of tracked files",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			digests, err := c.app.Digests(cmd.Context(), args)
			if err != nil {
				return err
			}
			return renderDigests(cmd.OutOrStdout(), digests)
		},
	}
}
