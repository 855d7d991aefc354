package main

import (
	"fmt"
	"strings"

	"github.com/bitrise-steplib/steps-jest-html-report/sorting"
	"github.com/bitrise-steplib/steps-jest-html-report/step"
	"github.com/bitrise-steplib/steps-jest-html-report/stylesheet"
	"github.com/urfave/cli/v2"
)

const envVarPrefix = "JEST_HTML_REPORT"

func prefixEnvVar(name string) []string {
	return []string{envVarPrefix + "_" + name}
}

var (
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		EnvVars: prefixEnvVar("CONFIG"),
		Usage:   "YAML or JSON file holding the report inputs; flags override its values",
	}
	TestResults = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		EnvVars: prefixEnvVar("INPUT"),
		Usage:   "Jest --json output file, '-' reads the standard input",
	}
	Output = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		EnvVars: prefixEnvVar("OUTPUT"),
		Usage:   "Report destination (default: ./test-report.html)",
	}
	Theme = &cli.StringFlag{
		Name:    "theme",
		EnvVars: prefixEnvVar("THEME"),
		Usage:   fmt.Sprintf("Embedded stylesheet, one of: %s", joinThemes()),
	}
	StyleOverride = &cli.StringFlag{
		Name:    "style-override",
		EnvVars: prefixEnvVar("STYLE_OVERRIDE"),
		Usage:   "Stylesheet file used instead of the theme",
	}
	PageTitle = &cli.StringFlag{
		Name:    "title",
		EnvVars: prefixEnvVar("TITLE"),
		Usage:   "Page title and heading (default: Test Report)",
	}
	Logo = &cli.StringFlag{
		Name:    "logo",
		EnvVars: prefixEnvVar("LOGO"),
		Usage:   "Logo image URL or path shown in the header",
	}
	DateFormat = &cli.StringFlag{
		Name:    "date-format",
		EnvVars: prefixEnvVar("DATE_FORMAT"),
		Usage:   "Go time layout of the start timestamp (default: 2006-01-02 15:04:05)",
	}
	Sort = &cli.StringFlag{
		Name:    "sort",
		EnvVars: prefixEnvVar("SORT"),
		Usage:   fmt.Sprintf("Suite order, one of: %s", joinStrategies()),
	}
	IncludeSuiteErrors = &cli.BoolFlag{
		Name:    "include-suite-errors",
		EnvVars: prefixEnvVar("INCLUDE_SUITE_ERRORS"),
		Usage:   "Render suites that failed to run as a failed row",
	}
	IncludeFailureMessages = &cli.BoolFlag{
		Name:    "include-failure-msg",
		EnvVars: prefixEnvVar("INCLUDE_FAILURE_MSG"),
		Usage:   "Render the failure messages of failed tests",
	}
	WarningThreshold = &cli.Float64Flag{
		Name:    "execution-time-warning-threshold",
		EnvVars: prefixEnvVar("EXECUTION_TIME_WARNING_THRESHOLD"),
		Usage:   "Seconds above which a suite is tagged slow (default: 5)",
	}
	Summary = &cli.BoolFlag{
		Name:    "summary",
		EnvVars: prefixEnvVar("SUMMARY"),
		Usage:   "Print a summary table of the suites",
	}
	Quiet = &cli.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		EnvVars: prefixEnvVar("QUIET"),
		Usage:   "Do not log the progress and the outcome",
	}
	Verbose = &cli.BoolFlag{
		Name:    "verbose",
		EnvVars: prefixEnvVar("VERBOSE"),
		Usage:   "Enable debug logs and the summary table",
	}
)

// Flags ...
var Flags = []cli.Flag{
	ConfigFile,
	TestResults,
	Output,
	Theme,
	StyleOverride,
	PageTitle,
	Logo,
	DateFormat,
	Sort,
	IncludeSuiteErrors,
	IncludeFailureMessages,
	WarningThreshold,
	Summary,
	Quiet,
	Verbose,
}

// applyFlags overrides the fields of input with the flags given on the command line.
func applyFlags(c *cli.Context, input *step.Input) {
	stringFlags := map[*cli.StringFlag]*string{
		TestResults:   &input.TestResultsPath,
		Output:        &input.OutputPath,
		Theme:         &input.Theme,
		StyleOverride: &input.StyleOverridePath,
		PageTitle:     &input.PageTitle,
		Logo:          &input.Logo,
		DateFormat:    &input.DateFormat,
		Sort:          &input.Sort,
	}
	for flag, field := range stringFlags {
		if c.IsSet(flag.Name) {
			*field = c.String(flag.Name)
		}
	}

	boolFlags := map[*cli.BoolFlag]*bool{
		IncludeSuiteErrors:     &input.IncludeSuiteErrors,
		IncludeFailureMessages: &input.IncludeFailureMessages,
		Verbose:                &input.Verbose,
	}
	for flag, field := range boolFlags {
		if c.IsSet(flag.Name) {
			*field = c.Bool(flag.Name)
		}
	}

	if c.IsSet(WarningThreshold.Name) {
		input.ExecutionTimeWarningThreshold = c.Float64(WarningThreshold.Name)
	}
}

func joinThemes() string {
	var names []string
	for _, theme := range stylesheet.Themes() {
		names = append(names, string(theme))
	}
	return strings.Join(names, ", ")
}

func joinStrategies() string {
	var names []string
	for _, strategy := range sorting.Strategies() {
		names = append(names, string(strategy))
	}
	return strings.Join(names, ", ")
}
