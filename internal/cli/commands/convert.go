package commands

import (
	"uts2ctrf/internal/config"
	"uts2ctrf/internal/parser"
	"uts2ctrf/internal/storage"
	"uts2ctrf/internal/ui"

	"github.com/spf13/cobra"
)

// ConvertCommand converts a minunit log into a CTRF report
type ConvertCommand struct {
	config    *config.Config
	reader    *storage.LogReader
	storage   storage.Storage
	formatter *ui.Formatter
}

// NewConvertCommand creates a new ConvertCommand
func NewConvertCommand(cfg *config.Config, reader *storage.LogReader, st storage.Storage, formatter *ui.Formatter) *ConvertCommand {
	return &ConvertCommand{
		config:    cfg,
		reader:    reader,
		storage:   st,
		formatter: formatter,
	}
}

// Execute runs the command. args are the log file and the output file.
func (cc *ConvertCommand) Execute(cmd *cobra.Command, args []string) error {
	logPath, outputPath := args[0], args[1]

	if cc.config.Flags.Progress {
		cc.reader.Observe(ui.NewReadProgress)
	} else {
		cc.reader.Observe(nil)
	}

	data, err := cc.reader.Read(logPath)
	if err != nil {
		return err
	}

	p := parser.NewMinUnitParser(cc.config.ReportName, cc.config.ToolName)
	report, diags := p.ParseWithDiagnostics(parser.SplitLines(data))
	if cc.config.Flags.Verbose {
		cc.formatter.PrintDiagnostics(logPath, diags)
	}

	if err := cc.storage.Save(outputPath, report); err != nil {
		return err
	}

	cc.formatter.PrintConfirmation(outputPath)
	if cc.config.Flags.Summary {
		cc.formatter.PrintSummary(report)
	}
	return nil
}
