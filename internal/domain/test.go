package domain

// Status is the outcome of a single test case
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// FailureDetail holds the fields only failed test cases carry.
// It is embedded by pointer so passed cases omit them from JSON entirely.
type FailureDetail struct {
	Message  string `json:"message"`
	Trace    string `json:"trace"`
	FilePath string `json:"filePath"`
	Line     int    `json:"line"`
}

// TestCase represents one observed test outcome
type TestCase struct {
	Name      string `json:"name"`
	Classname string `json:"classname"`
	Status    Status `json:"status"`
	RawStatus string `json:"rawStatus"`
	Duration  int    `json:"duration"`
	Retries   int    `json:"retries"`
	Suite     string `json:"suite"`
	*FailureDetail
}

// Failed reports whether the test case failed
func (tc TestCase) Failed() bool {
	return tc.Status == StatusFailed
}

// Detail returns the failure fields, or zero values when the case carries none
func (tc TestCase) Detail() FailureDetail {
	if tc.FailureDetail == nil {
		return FailureDetail{}
	}
	return *tc.FailureDetail
}
