package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/lsproj/internal/app"
	"golang.org/x/term"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [path]",
		Short: "Print the crates of a project every time they change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			redraw := isTerminal(out)
			reports := 0
			var renderErr error
			err := c.app.Watch(cmd.Context(), pathArg(args), func(pc app.ProjectCrates) {
				if renderErr != nil {
					return
				}
				if redraw && reports > 0 {
					_, _ = io.WriteString(out, clearScreen)
				}
				reports++
				renderErr = renderCrates(out, pc)
			})
			if err != nil {
				return err
			}
			return renderErr
		},
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}
