package report

import (
	"github.com/bitrise-steplib/steps-jest-html-report/models"
	"golang.org/x/net/html"
)

// renderSuite appends the info block and the table of suite to body.
// Suites without tests are skipped unless they carry a suite-level failure that should be shown.
func renderSuite(body *html.Node, suite models.SuiteResult, opts Options) {
	// A suite that failed to load runs no tests, so its failure is reported once as its own row.
	suiteError := opts.IncludeSuiteErrors && suite.HasFailureMessage()
	if !suiteError && len(suite.TestResults) == 0 {
		return
	}

	suiteInfo := appendElement(body, "div", class("suite-info"))
	appendTextElement(suiteInfo, "div", suite.TestFilePath, class("suite-path"))

	executionTime := suite.PerfStats.ElapsedSeconds()
	timeClass := "suite-time"
	if executionTime > opts.warningThreshold() {
		timeClass += " warn"
	}
	appendTextElement(suiteInfo, "div", formatSeconds(executionTime)+"s", class(timeClass))

	suiteTable := appendElement(body, "table", class("suite-table"), attr("cellspacing", "0"), attr("cellpadding", "0"))

	if suiteError {
		renderRow(suiteTable, suiteErrorItem{suite: suite}, opts)
	}
	for _, test := range suite.TestResults {
		renderRow(suiteTable, testCaseItem{test: test}, opts)
	}
}
