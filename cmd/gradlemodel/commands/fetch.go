package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gradlemodel/internal/app"
	"go.trai.ch/gradlemodel/internal/core/domain"
)

func (c *CLI) newFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch [dirs...]",
		Short: "Load the build model of gradle projects",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			noCache, _ := cmd.Flags().GetBool("no-cache")
			asJSON, _ := cmd.Flags().GetBool("json")

			models, err := c.components.App.Fetch(cmd.Context(), args, !noCache)
			if err != nil {
				return err
			}
			if asJSON {
				return c.writeJSON(models)
			}
			for i, m := range models {
				if i > 0 {
					fmt.Fprintln(c.out)
				}
				if err := app.RenderTree(c.out, m); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolP("no-cache", "n", false, "Bypass the model cache and snapshots")
	cmd.Flags().Bool("json", false, "Print models as JSON")
	return cmd
}

func (c *CLI) writeJSON(models []*domain.Model) error {
	views := make([]app.ProjectView, len(models))
	for i, m := range models {
		views[i] = app.View(m)
	}
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}
