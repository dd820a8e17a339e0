package commands

import (
	"uts2ctrf/internal/config"
	"uts2ctrf/internal/discovery"
	"uts2ctrf/internal/storage"
	"uts2ctrf/internal/ui"

	"github.com/spf13/cobra"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config    *config.Config
	storage   storage.Storage
	filter    *discovery.Filter
	formatter *ui.Formatter
	viewer    *ui.FailureViewer

	// isTerminal decides between the TUI and the plain failure list
	isTerminal func() bool
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, filter *discovery.Filter, formatter *ui.Formatter, viewer *ui.FailureViewer) *ViewCommand {
	return &ViewCommand{
		config:     cfg,
		storage:    st,
		filter:     filter,
		formatter:  formatter,
		viewer:     viewer,
		isTerminal: ui.IsTerminal,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	report, err := vc.storage.Load(args[0])
	if err != nil {
		return err
	}

	failures := vc.filter.FilterByName(report.Failures(), vc.config.Flags.Filter)
	if len(failures) == 0 {
		vc.formatter.PrintNoFailures()
		return nil
	}

	// Without a terminal there is nothing to drive the TUI
	if !vc.isTerminal() {
		vc.formatter.PrintFailureList(failures)
		return nil
	}
	return vc.viewer.View(report.Results.Summary.Name, failures)
}
