package models

//=======================================
// Models
//=======================================

// Status ...
type Status string

// Test statuses reported by Jest.
const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusPending Status = "pending"
)

// TestRun is the aggregated result of a Jest run (`jest --json`).
type TestRun struct {
	NumFailedTestSuites  int   `json:"numFailedTestSuites"`
	NumFailedTests       int   `json:"numFailedTests"`
	NumPassedTestSuites  int   `json:"numPassedTestSuites"`
	NumPassedTests       int   `json:"numPassedTests"`
	NumPendingTestSuites int   `json:"numPendingTestSuites"`
	NumPendingTests      int   `json:"numPendingTests"`
	NumTotalTestSuites   int   `json:"numTotalTestSuites"`
	NumTotalTests        int   `json:"numTotalTests"`
	StartTime            int64 `json:"startTime"`
	Success              bool  `json:"success"`

	TestResults []SuiteResult `json:"testResults"`
}

// Failed reports whether the run counters or the success flag indicate a failure.
func (r TestRun) Failed() bool {
	return !r.Success || r.NumFailedTests > 0 || r.NumFailedTestSuites > 0
}

// PerfStats ...
type PerfStats struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// ElapsedSeconds ...
func (p PerfStats) ElapsedSeconds() float64 {
	return float64(p.End-p.Start) / 1000
}

// SuiteResult is one executed test file.
type SuiteResult struct {
	TestFilePath   string       `json:"testFilePath"`
	FailureMessage string       `json:"failureMessage"`
	PerfStats      PerfStats    `json:"perfStats"`
	TestResults    []TestResult `json:"testResults"`
}

// HasFailureMessage reports whether the suite failed as a whole (load or parse error).
func (s SuiteResult) HasFailureMessage() bool {
	return len(s.FailureMessage) > 0
}

// TestResult is one test case.
type TestResult struct {
	Title           string   `json:"title"`
	FullName        string   `json:"fullName"`
	AncestorTitles  []string `json:"ancestorTitles"`
	Status          Status   `json:"status"`
	Duration        float64  `json:"duration"`
	FailureMessages []string `json:"failureMessages"`
}

// EffectiveStatus returns the status, defaulting to failed when Jest did not report one.
func (t TestResult) EffectiveStatus() Status {
	if t.Status == "" {
		return StatusFailed
	}
	return t.Status
}
