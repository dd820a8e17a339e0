package cli

import "uts2ctrf/internal/config"

// Flags holds command-line flags
type Flags struct {
	ReportName string
	ToolName   string
	EnvFile    string
	EnvFileSet bool
	Filter     string
	Summary    bool
	Verbose    bool
	Progress   bool
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ReportName: f.ReportName,
		ToolName:   f.ToolName,
		EnvFile:    f.EnvFile,
		EnvFileSet: f.EnvFileSet,
		Filter:     f.Filter,
		Summary:    f.Summary,
		Verbose:    f.Verbose,
		Progress:   f.Progress,
	}
}
