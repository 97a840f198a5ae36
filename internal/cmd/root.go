package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sproutkit/cli/internal/config"
	"github.com/sproutkit/cli/internal/output"
	"github.com/sproutkit/cli/internal/version"
)

var (
	configFlag  string
	verboseFlag bool

	appConfig *config.Config
)

// NewRootCmd creates the root command for the sprout CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sprout",
		Short: "Initialize projects from templates",
		Long: `sprout materializes a new project from a template tree.

It collects project metadata interactively, copies a template into a target
directory, resolves the {{...}} placeholder tokens in file names and contents,
and optionally bootstraps a Python virtual environment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			output.SetupLogging(verboseFlag)

			cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
			if err != nil {
				output.Warn("failed to load config, using defaults", "error", err)
				cfg = config.DefaultConfig()
			}
			appConfig = cfg

			output.Debug("sprout starting", "version", version.Get().Version)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default ~/.sprout/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// GetConfig returns the loaded configuration. Commands executed outside the
// root command (tests) fall back to the defaults.
func GetConfig() *config.Config {
	if appConfig == nil {
		return config.DefaultConfig()
	}
	return appConfig
}
