package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sproutkit/cli/internal/config"
	oerrors "github.com/sproutkit/cli/internal/errors"
	"github.com/sproutkit/cli/internal/output"
)

// defaultConfigContent is the commented starter config written by
// `sprout config init`.
const defaultConfigContent = `# sprout configuration
# Values here pre-fill the wizard prompts for new projects.

author:
  name: Your Name
  email: your.email@example.com

# GitHub username used in project URLs.
github: yourusername

# Python interpreter used to create virtual environments.
python: python3
`

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage sprout configuration",
	}

	configCmd.AddCommand(newConfigInitCmd())
	configCmd.AddCommand(newConfigPathCmd())

	return configCmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return fmt.Errorf("resolving config file path: %w", err)
			}

			if _, err := os.Stat(path); err == nil && !force {
				return oerrors.NewPreconditionError(
					fmt.Sprintf("config file already exists at %s", path),
					path,
					"Use --force to overwrite it",
				)
			}

			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := os.WriteFile(path, []byte(defaultConfigContent), 0o644); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}

			cmd.Println(output.FormatCheckmark(fmt.Sprintf("Wrote %s", path)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return fmt.Errorf("resolving config file path: %w", err)
			}
			cmd.Println(path)
			return nil
		},
	}
}
