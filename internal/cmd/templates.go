package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sproutkit/cli/internal/output"
	"github.com/sproutkit/cli/internal/templates"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List available project templates",
		Run: func(cmd *cobra.Command, args []string) {
			styles := output.GetStyles()

			cmd.Println("Available templates:")
			cmd.Println()
			for _, t := range templates.List() {
				name := styles.Noun.Render(t.Name)
				if t.Default {
					name += styles.Muted.Render(" (default)")
				}
				cmd.Println(fmt.Sprintf("  %s", name))
				cmd.Println(fmt.Sprintf("    %s", t.Description))
				cmd.Println(styles.Muted.Render(fmt.Sprintf("    Use for: %s", t.UseCase)))
				cmd.Println()
			}
		},
	}
}
