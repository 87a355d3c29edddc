package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/gradlemodel/internal/app"
	"go.trai.ch/gradlemodel/internal/core/domain"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Load a project and reload it whenever the settings change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			asJSON, _ := cmd.Flags().GetBool("json")
			enc := json.NewEncoder(c.out)

			return c.components.App.Watch(cmd.Context(), dir, func(m *domain.Model) {
				if asJSON {
					_ = enc.Encode(app.View(m))
					return
				}
				fmt.Fprintf(c.out, "loaded %s (%d projects)\n", m.ProjectDir(), countProjects(m))
			})
		},
	}
	cmd.Flags().Bool("json", false, "Print every loaded model as a JSON line")
	return cmd
}

func countProjects(m *domain.Model) int {
	n := 0
	for range m.ProjectInfo().Walk() {
		n++
	}
	return n
}
