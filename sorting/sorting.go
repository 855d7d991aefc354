// Package sorting orders the suites of a test run before they are rendered.
package sorting

import (
	"fmt"
	"sort"

	"github.com/bitrise-steplib/steps-jest-html-report/models"
)

// Strategy ...
type Strategy string

// Sort strategies ...
const (
	Default       Strategy = "default"
	Status        Strategy = "status"
	ExecutionDesc Strategy = "executiondesc"
	ExecutionAsc  Strategy = "executionasc"
	TitleDesc     Strategy = "titledesc"
	TitleAsc      Strategy = "titleasc"
)

type strategyFunc func(suites []models.SuiteResult) []models.SuiteResult

var strategies = map[Strategy]strategyFunc{
	Default:       func(suites []models.SuiteResult) []models.SuiteResult { return suites },
	Status:        byStatus,
	ExecutionDesc: byExecution(true),
	ExecutionAsc:  byExecution(false),
	TitleDesc:     byTitle(true),
	TitleAsc:      byTitle(false),
}

// Strategies lists the accepted strategy names in documentation order.
func Strategies() []Strategy {
	return []Strategy{Default, Status, ExecutionDesc, ExecutionAsc, TitleDesc, TitleAsc}
}

// ParseStrategy ...
func ParseStrategy(s string) (Strategy, error) {
	if s == "" {
		return Default, nil
	}
	strategy := Strategy(s)
	if _, ok := strategies[strategy]; !ok {
		return "", fmt.Errorf("unknown sort strategy (%s), available: %v", s, Strategies())
	}
	return strategy, nil
}

// Sort returns the suites in the order of the given strategy.
// The input slice and its suites are left untouched; unknown strategies keep the input order.
func Sort(suites []models.SuiteResult, strategy Strategy) []models.SuiteResult {
	sortFn, ok := strategies[strategy]
	if !ok {
		sortFn = strategies[Default]
	}
	return sortFn(copySuites(suites))
}

// byStatus splits every suite into its pending, failed and passed parts and
// lists all pending parts first, then the failed ones, then the passed ones.
// A suite-level failure message only travels with the failed part.
func byStatus(suites []models.SuiteResult) []models.SuiteResult {
	var pendingSuites, failedSuites, passedSuites []models.SuiteResult

	for _, suite := range suites {
		var pending, failed, passed []models.TestResult
		for _, test := range suite.TestResults {
			switch test.EffectiveStatus() {
			case models.StatusPending:
				pending = append(pending, test)
			case models.StatusFailed:
				failed = append(failed, test)
			default:
				passed = append(passed, test)
			}
		}

		if len(failed) > 0 || suite.HasFailureMessage() {
			failedSuites = append(failedSuites, withTests(suite, failed))
		}
		suite.FailureMessage = ""
		if len(pending) > 0 {
			pendingSuites = append(pendingSuites, withTests(suite, pending))
		}
		if len(passed) > 0 {
			passedSuites = append(passedSuites, withTests(suite, passed))
		}
	}

	sorted := make([]models.SuiteResult, 0, len(pendingSuites)+len(failedSuites)+len(passedSuites))
	sorted = append(sorted, pendingSuites...)
	sorted = append(sorted, failedSuites...)
	return append(sorted, passedSuites...)
}

func byExecution(desc bool) strategyFunc {
	return func(suites []models.SuiteResult) []models.SuiteResult {
		sort.SliceStable(suites, func(i, j int) bool {
			a, b := elapsed(suites[i]), elapsed(suites[j])
			if desc {
				return a > b
			}
			return a < b
		})
		return suites
	}
}

func byTitle(desc bool) strategyFunc {
	return func(suites []models.SuiteResult) []models.SuiteResult {
		sort.SliceStable(suites, func(i, j int) bool {
			return less(suites[i].TestFilePath, suites[j].TestFilePath, desc)
		})
		for i := range suites {
			tests := suites[i].TestResults
			sort.SliceStable(tests, func(a, b int) bool {
				return less(tests[a].Title, tests[b].Title, desc)
			})
		}
		return suites
	}
}

func less(a, b string, desc bool) bool {
	if desc {
		return a > b
	}
	return a < b
}

func elapsed(suite models.SuiteResult) int64 {
	return suite.PerfStats.End - suite.PerfStats.Start
}

func withTests(suite models.SuiteResult, tests []models.TestResult) models.SuiteResult {
	suite.TestResults = tests
	return suite
}

// copySuites copies the suite slice and each suite's test slice, so strategies may sort in place.
func copySuites(suites []models.SuiteResult) []models.SuiteResult {
	if suites == nil {
		return nil
	}
	copied := make([]models.SuiteResult, len(suites))
	for i, suite := range suites {
		if suite.TestResults != nil {
			tests := make([]models.TestResult, len(suite.TestResults))
			copy(tests, suite.TestResults)
			suite.TestResults = tests
		}
		copied[i] = suite
	}
	return copied
}
