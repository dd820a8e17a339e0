package parser

import (
	"uts2ctrf/internal/domain"
)

const (
	rawPassed = "Passed"
	rawFailed = "failed"
)

// Diagnostic describes a failure announcement that was dropped
type Diagnostic struct {
	Line   int // 1-based line of the FATAL header
	Name   string
	Reason string
}

// MinUnitParser turns a minunit test log into a CTRF report
type MinUnitParser struct {
	reportName string
	toolName   string
}

// NewMinUnitParser creates a new MinUnitParser
func NewMinUnitParser(reportName, toolName string) *MinUnitParser {
	return &MinUnitParser{
		reportName: reportName,
		toolName:   toolName,
	}
}

// Parse builds a report from log lines. Unrecognized lines are skipped.
func (p *MinUnitParser) Parse(lines []string) *domain.Report {
	report, _ := p.ParseWithDiagnostics(lines)
	return report
}

// ParseWithDiagnostics is Parse that also reports every failure header it dropped.
//
// A header followed by a malformed detail line still consumes that line.
func (p *MinUnitParser) ParseWithDiagnostics(lines []string) (*domain.Report, []Diagnostic) {
	report := domain.NewReport(p.reportName, p.toolName)
	var diags []Diagnostic

	i := 0
	for i < len(lines) {
		m := MatchLine(lines[i])
		switch m.Kind {
		case Passed:
			report.Add(newPassed(m.Name))
		case FailedHeader:
			if i+1 >= len(lines) {
				diags = append(diags, Diagnostic{Line: i + 1, Name: m.Name, Reason: "no detail line follows"})
				break
			}
			if detail, ok := MatchDetail(lines[i+1]); ok {
				report.Add(newFailed(m.Name, detail))
			} else {
				diags = append(diags, Diagnostic{Line: i + 1, Name: m.Name, Reason: "detail line is not file:line: message"})
			}
			i++
		}
		i++
	}

	return report, diags
}

func newPassed(name string) domain.TestCase {
	class := Classname(name)
	return domain.TestCase{
		Name:      name,
		Classname: class,
		Status:    domain.StatusPassed,
		RawStatus: rawPassed,
		Suite:     class,
	}
}

func newFailed(name string, d Detail) domain.TestCase {
	class := Classname(name)
	return domain.TestCase{
		Name:      name,
		Classname: class,
		Status:    domain.StatusFailed,
		RawStatus: rawFailed,
		Suite:     class,
		FailureDetail: &domain.FailureDetail{
			Message:  d.Message,
			Trace:    d.Raw,
			FilePath: d.File,
			Line:     d.Line,
		},
	}
}
