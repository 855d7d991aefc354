package report

import (
	"fmt"
	"strings"

	"github.com/bitrise-steplib/steps-jest-html-report/models"
	"golang.org/x/net/html"
)

const suiteTitleSeparator = " > "

// rowFields is everything a table row shows, independent of what the row reports.
type rowFields struct {
	title           string
	suiteTitle      string
	status          models.Status
	durationMillis  float64
	messages        []string
	includeMessages bool
}

// rowItem is either a suite that failed as a whole or a single test case.
type rowItem interface {
	rowFields(opts Options) rowFields
}

type suiteErrorItem struct {
	suite models.SuiteResult
}

func (i suiteErrorItem) rowFields(opts Options) rowFields {
	return rowFields{
		title:           i.suite.TestFilePath,
		suiteTitle:      i.suite.TestFilePath,
		status:          models.StatusFailed,
		messages:        []string{i.suite.FailureMessage},
		includeMessages: opts.IncludeSuiteErrors,
	}
}

type testCaseItem struct {
	test models.TestResult
}

func (i testCaseItem) rowFields(opts Options) rowFields {
	suiteTitle := i.test.Title
	if i.test.AncestorTitles != nil {
		suiteTitle = strings.Join(i.test.AncestorTitles, suiteTitleSeparator)
	}

	return rowFields{
		title:           i.test.Title,
		suiteTitle:      suiteTitle,
		status:          i.test.EffectiveStatus(),
		durationMillis:  i.test.Duration,
		messages:        i.test.FailureMessages,
		includeMessages: opts.IncludeFailureMessages,
	}
}

// renderRow appends one <tr> for item to table.
func renderRow(table *html.Node, item rowItem, opts Options) {
	fields := item.rowFields(opts)

	tr := appendElement(table, "tr", class(string(fields.status)))
	appendTextElement(tr, "td", fields.suiteTitle, class("suite"))
	testTd := appendTextElement(tr, "td", fields.title, class("test"))

	if len(fields.messages) > 0 && fields.includeMessages {
		failureMessages := appendElement(testTd, "div", class("failureMessages"))
		for _, msg := range fields.messages {
			appendTextElement(failureMessages, "pre", sanitize(msg), class("failureMsg"))
		}
	}

	appendTextElement(tr, "td", resultText(fields), class("result"))
}

func resultText(fields rowFields) string {
	if fields.status != models.StatusPassed {
		return string(fields.status)
	}
	return fmt.Sprintf("%s in %ss", fields.status, formatSeconds(fields.durationMillis/1000))
}
