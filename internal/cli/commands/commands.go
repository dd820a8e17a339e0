package commands

import (
	"uts2ctrf/internal/cli"
	"uts2ctrf/internal/config"
	"uts2ctrf/internal/discovery"
	"uts2ctrf/internal/publish"
	"uts2ctrf/internal/storage"
	"uts2ctrf/internal/ui"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Convert *ConvertCommand
	View    *ViewCommand
	Publish *PublishCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	logReader := storage.NewLogReader()
	jsonStorage := storage.NewJSONStorage(cfg)
	filter := discovery.NewFilter()
	formatter := ui.NewFormatter()
	viewer := ui.NewFailureViewer()
	publisher := publish.NewMySQLPublisher(publish.NewDatabaseManager(cfg))

	return &Commands{
		Convert: NewConvertCommand(cfg, logReader, jsonStorage, formatter),
		View:    NewViewCommand(cfg, jsonStorage, filter, formatter, viewer),
		Publish: NewPublishCommand(cfg, jsonStorage, filter, publisher),
	}
}

// Register wires the commands into the root command. The root command itself converts a log.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	loadConfig := func(cmd *cobra.Command, args []string) error {
		flags.EnvFileSet = cmd.Flags().Changed("env-file")
		return cfg.Apply(flags.ToConfigFlags())
	}

	rootCmd.PersistentFlags().StringVar(&flags.EnvFile, "env-file", config.DefaultEnvFile, "Env file with configuration overrides (the default file is optional)")

	// Log files may be named like a subcommand, so the help and completion
	// commands are disabled; --help still works.
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Convert (root)
	rootCmd.Use = "uts2ctrf <log_file> <output_file>"
	rootCmd.Args = cobra.ExactArgs(2)
	rootCmd.RunE = c.Convert.Execute
	rootCmd.PreRunE = loadConfig
	rootCmd.SilenceUsage = true
	rootCmd.Flags().StringVar(&flags.ReportName, "report-name", "", "Summary name written into the report (default \""+config.DefaultReportName+"\")")
	rootCmd.Flags().StringVar(&flags.ToolName, "tool-name", "", "Tool name written into the report (default \""+config.DefaultToolName+"\")")
	rootCmd.Flags().BoolVarP(&flags.Summary, "summary", "s", false, "Print a summary table and failure tree after converting")
	rootCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Warn about failure announcements that could not be recorded")
	rootCmd.Flags().BoolVar(&flags.Progress, "progress", false, "Show a progress bar while reading the log")

	// View command
	viewCmd := &cobra.Command{
		Use:     "view <report.json>",
		Short:   "View test failures interactively",
		Long:    "Display the failed tests of a CTRF report in an interactive viewer",
		Args:    cobra.ExactArgs(1),
		RunE:    c.View.Execute,
		PreRunE: loadConfig,
	}
	viewCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g. 'MATH_*' or '*Div*')")
	rootCmd.AddCommand(viewCmd)

	// Publish command
	publishCmd := &cobra.Command{
		Use:     "publish <report.json>",
		Short:   "Store a CTRF report in MySQL",
		Long:    "Insert a CTRF report into the database configured by DB_HOST, DB_PORT, DB_USERNAME, DB_PASSWORD and DB_DATABASE",
		Args:    cobra.ExactArgs(1),
		RunE:    c.Publish.Execute,
		PreRunE: loadConfig,
	}
	publishCmd.Flags().StringVarP(&flags.Filter, "filter", "f", "", "Only publish tests matching the name pattern")
	rootCmd.AddCommand(publishCmd)
}
