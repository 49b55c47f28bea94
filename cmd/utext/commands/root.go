// Package commands implements the CLI commands for utext.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/utext/internal/adapters/cas"
	"go.trai.ch/utext/internal/app"
	"go.trai.ch/utext/internal/build"
	"go.trai.ch/utext/internal/engine/runner"
)

// CLI represents the command line interface for utext.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "utext",
		Short:         "Work with immutable 16-bit code unit text",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("locale", "l", runner.InvariantLocale, "Locale for the current culture comparison modes")
	rootCmd.PersistentFlags().StringP("state", "s", cas.DefaultPath, "Path of the golden hash store")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON lines")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.PersistentPreRunE = c.applyGlobalFlags

	rootCmd.AddCommand(c.newDecodeCmd())
	rootCmd.AddCommand(c.newCompareCmd())
	rootCmd.AddCommand(c.newHashCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) applyGlobalFlags(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	if flags.Changed("locale") {
		locale, err := flags.GetString("locale")
		if err != nil {
			return err
		}
		c.app.WithLocale(locale)
	}
	if flags.Changed("log-json") {
		enable, err := flags.GetBool("log-json")
		if err != nil {
			return err
		}
		c.app.WithJSONLogs(enable)
	}
	if flags.Changed("state") {
		path, err := flags.GetString("state")
		if err != nil {
			return err
		}
		store, err := cas.NewStore(path)
		if err != nil {
			return err
		}
		c.app.WithStore(store)
	}
	return nil
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
