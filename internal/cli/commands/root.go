package commands

import (
	"uts2ctrf/internal/cli"
	"uts2ctrf/internal/config"

	"github.com/spf13/cobra"
)

// NewRoot builds the root command with every subcommand registered
func NewRoot(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Short: "Convert minunit test logs to CTRF JSON",
		Long: `Convert the plain-text log of a minunit test run into a Common Test Report Format (CTRF) JSON report.

A log file named "view" or "publish" must be given with a path, e.g. ./view.`,
		Version:       version,
		SilenceErrors: true,
	}

	cfg := config.New()
	var flags cli.Flags
	NewCommands(cfg).Register(rootCmd, &flags, cfg)
	return rootCmd
}
