package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gradlemodel/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(c.out, "gradlemodel version %s (%s, %s)\n", build.Version, build.Commit, build.Date)
		},
	}
}
