package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "check [root]",
		Short: "Report tracked files changed since the previous check",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := filepath.Abs(pathArg(args))
			if err != nil {
				return err
			}
			changes, err := c.app.Check(cmd.Context(), root)
			if err != nil {
				return err
			}
			return renderChanges(cmd.OutOrStdout(), root, changes, all)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "Also list unchanged files")
	return cmd
}
