// Package commands implements the CLI commands for lsproj.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/lsproj/internal/app"
	"go.trai.ch/lsproj/internal/build"
	"go.trai.ch/lsproj/internal/core/domain"
	"go.trai.ch/lsproj/internal/core/ports"
)

// evaluationStats is implemented by telemetry that counts engine evaluations.
type evaluationStats interface {
	Stats() (computed, cached int64)
}

// CLI represents the command line interface for lsproj.
type CLI struct {
	app       *app.App
	telemetry ports.Telemetry
	rootCmd   *cobra.Command
}

// New creates a new CLI instance with the given app. telemetry may be nil.
func New(a *app.App, telemetry ports.Telemetry) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lsproj",
		Short:         "Inspect cairo_project.toml projects the way the language server sees them",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", domain.SettingsFileName, "Path to the settings file")
	rootCmd.PersistentFlags().Bool("stats", false, "Print engine evaluation counts to stderr")

	c := &CLI{
		app:       a,
		telemetry: telemetry,
		rootCmd:   rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		configPath, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}
		return c.app.LoadSettings(configPath)
	}
	rootCmd.PersistentPostRunE = func(cmd *cobra.Command, _ []string) error {
		show, err := cmd.Flags().GetBool("stats")
		if err != nil || !show {
			return err
		}
		return c.printStats(cmd.ErrOrStderr())
	}

	rootCmd.AddCommand(c.newCratesCmd())
	rootCmd.AddCommand(c.newDigestCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOut redirects command output. Used for testing.
func (c *CLI) SetOut(w io.Writer) {
	c.rootCmd.SetOut(w)
}

// SetErr redirects diagnostic output. Used for testing.
func (c *CLI) SetErr(w io.Writer) {
	c.rootCmd.SetErr(w)
}

func (c *CLI) printStats(w io.Writer) error {
	stats, ok := c.telemetry.(evaluationStats)
	if !ok {
		_, err := fmt.Fprintln(w, "engine: evaluation counts unavailable")
		return err
	}
	computed, cached := stats.Stats()
	_, err := fmt.Fprintf(w, "engine: %d computed, %d cached\n", computed, cached)
	return err
}

func pathArg(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
