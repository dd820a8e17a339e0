package commands

import (
	"context"
	"fmt"

	"uts2ctrf/internal/config"
	"uts2ctrf/internal/discovery"
	"uts2ctrf/internal/domain"
	"uts2ctrf/internal/publish"
	"uts2ctrf/internal/storage"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// PublishCommand handles the publish command
type PublishCommand struct {
	config    *config.Config
	storage   storage.Storage
	filter    *discovery.Filter
	publisher publish.Publisher
}

// NewPublishCommand creates a new PublishCommand
func NewPublishCommand(cfg *config.Config, st storage.Storage, filter *discovery.Filter, publisher publish.Publisher) *PublishCommand {
	return &PublishCommand{
		config:    cfg,
		storage:   st,
		filter:    filter,
		publisher: publisher,
	}
}

// Execute runs the command
func (pc *PublishCommand) Execute(cmd *cobra.Command, args []string) error {
	source := args[0]
	report, err := pc.storage.Load(source)
	if err != nil {
		return err
	}

	if pc.config.Flags.Filter != "" {
		report = filterReport(report, pc.filter, pc.config.Flags.Filter)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runID, err := pc.publisher.Publish(ctx, source, report)
	if err != nil {
		return fmt.Errorf("publish failed: %w", err)
	}

	color.Green("✓ Published %d test(s) from %s as run %d", report.Results.Summary.Tests, source, runID)
	return nil
}

// filterReport rebuilds the report from the tests matching pattern so the summary stays consistent
func filterReport(report *domain.Report, filter *discovery.Filter, pattern string) *domain.Report {
	filtered := domain.NewReport(report.Results.Summary.Name, report.Results.Tool.Name)
	filtered.SpecVersion = report.SpecVersion
	for _, tc := range filter.FilterByName(report.Results.Tests, pattern) {
		filtered.Add(tc)
	}
	return filtered
}
