// Package commands implements the CLI commands for gradlemodel.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/gradlemodel/internal/app"
	"go.trai.ch/gradlemodel/internal/build"
)

// CLI represents the command line interface for gradlemodel.
type CLI struct {
	components *app.Components
	out        io.Writer
	rootCmd    *cobra.Command
}

// New creates a new CLI instance writing command output to out.
func New(components *app.Components, out io.Writer) *CLI {
	rootCmd := &cobra.Command{
		Use:           "gradlemodel",
		Short:         "Load and cache gradle build models",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the settings file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		components: components,
		out:        out,
		rootCmd:    rootCmd,
	}
	rootCmd.PersistentPreRunE = c.configure

	rootCmd.AddCommand(c.newFetchCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) configure(cmd *cobra.Command, _ []string) error {
	if logJSON, _ := cmd.Flags().GetBool("log-json"); logJSON {
		c.components.Output.SetJSON(true)
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		c.components.App.SetVerbose(true)
	}
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return c.components.App.UseSettingsFile(path)
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
