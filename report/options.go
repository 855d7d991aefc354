package report

import "github.com/bitrise-steplib/steps-jest-html-report/sorting"

// Defaults ...
const (
	DefaultPageTitle                     = "Test Report"
	DefaultDateFormat                    = "2006-01-02 15:04:05"
	DefaultExecutionTimeWarningThreshold = 5.0
)

// Options controls what the rendered document contains.
type Options struct {
	PageTitle string
	Logo      string
	// DateFormat is a Go time layout, applied to the run start time in UTC.
	DateFormat string
	Sort       sorting.Strategy

	IncludeSuiteErrors     bool
	IncludeFailureMessages bool

	// ExecutionTimeWarningThreshold is in seconds; suites running strictly longer are tagged.
	ExecutionTimeWarningThreshold float64
}

func (o Options) dateFormat() string {
	if o.DateFormat == "" {
		return DefaultDateFormat
	}
	return o.DateFormat
}

func (o Options) warningThreshold() float64 {
	if o.ExecutionTimeWarningThreshold <= 0 {
		return DefaultExecutionTimeWarningThreshold
	}
	return o.ExecutionTimeWarningThreshold
}
