package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCratesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "crates [path]",
		Short: "List the crates of the project governing path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pc, err := c.app.Crates(cmd.Context(), pathArg(args))
			if err != nil {
				return err
			}
			if asJSON {
				return renderCratesJSON(cmd.OutOrStdout(), pc)
			}
			return renderCrates(cmd.OutOrStdout(), pc)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the crates as JSON")
	return cmd
}
