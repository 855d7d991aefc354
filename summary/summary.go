// Package summary prints a console overview of a test run.
package summary

import (
	"bytes"
	"strconv"

	"github.com/bitrise-steplib/steps-jest-html-report/models"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Formatter ...
type Formatter struct {
	title   string
	colored bool
}

// NewFormatter returns a Formatter; colored picks a table style matching the run outcome.
func NewFormatter(title string, colored bool) Formatter {
	return Formatter{title: title, colored: colored}
}

// Format renders one row per suite of run and a footer with the run counters.
func (f Formatter) Format(run models.TestRun) string {
	var buf bytes.Buffer

	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	if f.title != "" {
		t.SetTitle(f.title)
	}

	t.AppendHeader(table.Row{"Suite", "Time", "Tests", "Passed", "Failed", "Pending", "Status"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Suite", WidthMax: 80, WidthMaxEnforcer: text.WrapSoft},
		{Name: "Time", Align: text.AlignRight},
		{Name: "Tests", Align: text.AlignRight},
		{Name: "Passed", Align: text.AlignRight},
		{Name: "Failed", Align: text.AlignRight},
		{Name: "Pending", Align: text.AlignRight},
	})

	var elapsed float64
	for _, suite := range run.TestResults {
		c := countSuite(suite)
		elapsed += suite.PerfStats.ElapsedSeconds()

		t.AppendRow(table.Row{
			suite.TestFilePath,
			formatSeconds(suite.PerfStats.ElapsedSeconds()),
			len(suite.TestResults),
			c.passed,
			c.failed,
			c.pending,
			suiteStatus(suite, c),
		})
	}

	t.AppendFooter(table.Row{
		"Total",
		formatSeconds(elapsed),
		run.NumTotalTests,
		run.NumPassedTests,
		run.NumFailedTests,
		run.NumPendingTests,
		runStatus(run),
	})

	t.SetStyle(f.style(run))
	t.Render()

	return buf.String()
}

func (f Formatter) style(run models.TestRun) table.Style {
	if !f.colored {
		return table.StyleDefault
	}
	switch {
	case run.Failed():
		return table.StyleColoredBlackOnRedWhite
	case run.NumPendingTests > 0:
		return table.StyleColoredBlackOnYellowWhite
	default:
		return table.StyleColoredBlackOnGreenWhite
	}
}

type counts struct {
	passed, failed, pending int
}

func countSuite(suite models.SuiteResult) counts {
	var c counts
	for _, test := range suite.TestResults {
		switch test.EffectiveStatus() {
		case models.StatusPassed:
			c.passed++
		case models.StatusPending:
			c.pending++
		default:
			c.failed++
		}
	}
	return c
}

func suiteStatus(suite models.SuiteResult, c counts) models.Status {
	switch {
	case c.failed > 0 || suite.HasFailureMessage():
		return models.StatusFailed
	case c.passed == 0 && c.pending > 0:
		return models.StatusPending
	default:
		return models.StatusPassed
	}
}

func runStatus(run models.TestRun) models.Status {
	if run.Failed() {
		return models.StatusFailed
	}
	return models.StatusPassed
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64) + "s"
}
