package domain

const (
	// ReportFormat is the fixed CTRF format identifier
	ReportFormat = "CTRF"
	// SpecVersion is the CTRF spec version written into every report
	SpecVersion = "0.0.0"
)

// Summary aggregates counters over all test cases
type Summary struct {
	Name    string         `json:"name"`
	Tests   int            `json:"tests"`
	Failed  int            `json:"failed"`
	Passed  int            `json:"passed"`
	Skipped int            `json:"skipped"`
	Suites  map[string]int `json:"suites"`
}

// Tool names the test framework that produced the log
type Tool struct {
	Name string `json:"name"`
}

// Results is the body of a CTRF report
type Results struct {
	Summary Summary    `json:"summary"`
	Tool    Tool       `json:"tool"`
	Tests   []TestCase `json:"tests"`
}

// Report is the top-level CTRF document
type Report struct {
	ReportFormat string  `json:"reportFormat"`
	SpecVersion  string  `json:"specVersion"`
	Results      Results `json:"results"`
}

// NewReport returns an empty report with the fixed envelope fields set
func NewReport(name, tool string) *Report {
	return &Report{
		ReportFormat: ReportFormat,
		SpecVersion:  SpecVersion,
		Results: Results{
			Summary: Summary{
				Name:   name,
				Suites: make(map[string]int),
			},
			Tool:  Tool{Name: tool},
			Tests: []TestCase{},
		},
	}
}

// Add appends a test case and updates the summary counters
func (r *Report) Add(tc TestCase) {
	s := &r.Results.Summary
	r.Results.Tests = append(r.Results.Tests, tc)
	s.Tests++
	if tc.Failed() {
		s.Failed++
	} else {
		s.Passed++
	}
	s.Suites[tc.Classname]++
}

// Failures returns the failed test cases in log order
func (r *Report) Failures() []TestCase {
	var failed []TestCase
	for _, tc := range r.Results.Tests {
		if tc.Failed() {
			failed = append(failed, tc)
		}
	}
	return failed
}
