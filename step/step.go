package step

import (
	"errors"
	"fmt"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-jest-html-report/fileremover"
	"github.com/bitrise-steplib/steps-jest-html-report/output"
	"github.com/bitrise-steplib/steps-jest-html-report/report"
	"github.com/bitrise-steplib/steps-jest-html-report/sorting"
	"github.com/bitrise-steplib/steps-jest-html-report/stylesheet"
	"github.com/bitrise-steplib/steps-jest-html-report/summary"
	"github.com/bitrise-steplib/steps-jest-html-report/testresult"
)

const defaultOutputPath = "./test-report.html"

// Input ...
type Input struct {
	TestResultsPath string `env:"test_results_path,required" yaml:"test_results_path"`
	OutputPath      string `env:"output_path" yaml:"output_path"`

	// Look and feel
	Theme             string `env:"theme,opt[defaultTheme,lightTheme,darkTheme]" yaml:"theme"`
	StyleOverridePath string `env:"style_override_path" yaml:"style_override_path"`
	PageTitle         string `env:"page_title" yaml:"page_title"`
	Logo              string `env:"logo" yaml:"logo"`
	DateFormat        string `env:"date_format" yaml:"date_format"`

	// Content
	Sort                          string  `env:"sort,opt[default,status,executiondesc,executionasc,titledesc,titleasc]" yaml:"sort"`
	IncludeSuiteErrors            bool    `env:"include_suite_errors,opt[yes,no]" yaml:"include_suite_errors"`
	IncludeFailureMessages        bool    `env:"include_failure_msg,opt[yes,no]" yaml:"include_failure_msg"`
	ExecutionTimeWarningThreshold float64 `env:"execution_time_warning_threshold,range[0..]" yaml:"execution_time_warning_threshold"`

	// Debug
	Verbose bool `env:"verbose,opt[yes,no]" yaml:"verbose"`

	// Output export
	DeployDir string `env:"BITRISE_DEPLOY_DIR" yaml:"deploy_dir"`
}

// Config ...
type Config struct {
	TestResultsPath string
	OutputPath      string

	Theme             stylesheet.Theme
	StyleOverridePath string

	Options report.Options

	Verbose       bool
	PrintSummary  bool
	IgnoreConsole bool

	DeployDir string
}

// ConfigParser ...
type ConfigParser struct {
	inputParser  stepconf.InputParser
	logger       log.Logger
	pathModifier pathutil.PathModifier
}

// NewConfigParser ...
func NewConfigParser(inputParser stepconf.InputParser, logger log.Logger, pathModifier pathutil.PathModifier) ConfigParser {
	return ConfigParser{
		inputParser:  inputParser,
		logger:       logger,
		pathModifier: pathModifier,
	}
}

// ProcessConfig parses the step inputs from the environment and validates them.
func (p ConfigParser) ProcessConfig() (Config, error) {
	var input Input
	if err := p.inputParser.Parse(&input); err != nil {
		return Config{}, err
	}

	stepconf.Print(input)
	p.logger.Println()

	p.logger.EnableDebugLog(input.Verbose)

	return p.ProcessInput(input)
}

// ProcessInput validates input and fills in the defaults.
func (p ConfigParser) ProcessInput(input Input) (Config, error) {
	if input.TestResultsPath == "" {
		return Config{}, errors.New("test results path (test_results_path) not provided")
	}

	testResultsPath := input.TestResultsPath
	if testResultsPath != testresult.StdinPath {
		var err error
		if testResultsPath, err = p.pathModifier.AbsPath(testResultsPath); err != nil {
			return Config{}, fmt.Errorf("failed to get absolute test results path: %w", err)
		}
	}

	outputPath := input.OutputPath
	if outputPath == "" {
		outputPath = defaultOutputPath
	}
	outputPath, err := p.pathModifier.AbsPath(outputPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to get absolute output path: %w", err)
	}

	theme, err := parseTheme(input.Theme)
	if err != nil {
		return Config{}, err
	}

	var styleOverridePath string
	if input.StyleOverridePath != "" {
		if styleOverridePath, err = p.pathModifier.AbsPath(input.StyleOverridePath); err != nil {
			return Config{}, fmt.Errorf("failed to get absolute stylesheet path: %w", err)
		}
		p.logger.Debugf("Stylesheet override (%s) replaces the %s theme", styleOverridePath, theme)
	}

	strategy, err := sorting.ParseStrategy(input.Sort)
	if err != nil {
		return Config{}, err
	}

	// Env inputs are range checked by stepconf; config files and flags are not.
	threshold := input.ExecutionTimeWarningThreshold
	if threshold < 0 {
		return Config{}, fmt.Errorf("invalid execution time warning threshold (%v), should not be negative", threshold)
	}
	if threshold == 0 {
		threshold = report.DefaultExecutionTimeWarningThreshold
	}

	pageTitle := input.PageTitle
	if pageTitle == "" {
		pageTitle = report.DefaultPageTitle
	}

	dateFormat := input.DateFormat
	if dateFormat == "" {
		dateFormat = report.DefaultDateFormat
	}

	return Config{
		TestResultsPath:   testResultsPath,
		OutputPath:        outputPath,
		Theme:             theme,
		StyleOverridePath: styleOverridePath,
		Options: report.Options{
			PageTitle:                     pageTitle,
			Logo:                          input.Logo,
			DateFormat:                    dateFormat,
			Sort:                          strategy,
			IncludeSuiteErrors:            input.IncludeSuiteErrors,
			IncludeFailureMessages:        input.IncludeFailureMessages,
			ExecutionTimeWarningThreshold: threshold,
		},
		Verbose:      input.Verbose,
		PrintSummary: input.Verbose,
		DeployDir:    input.DeployDir,
	}, nil
}

func parseTheme(s string) (stylesheet.Theme, error) {
	if s == "" {
		return stylesheet.DefaultTheme, nil
	}
	for _, theme := range stylesheet.Themes() {
		if string(theme) == s {
			return theme, nil
		}
	}
	return "", fmt.Errorf("unknown theme (%s), available: %v", s, stylesheet.Themes())
}

// Result ...
type Result struct {
	ReportPath      string
	TestResultsPath string
	DeployDir       string
	BundleName      string
	TestsFailed     bool
}

// ReportStep ...
type ReportStep struct {
	logger           log.Logger
	testResultReader testresult.Reader
	fileManager      fileutil.FileManager
	pathChecker      pathutil.PathChecker
	outputExporter   output.Exporter
}

// NewReportStep ...
func NewReportStep(logger log.Logger, testResultReader testresult.Reader, fileManager fileutil.FileManager, pathChecker pathutil.PathChecker, outputExporter output.Exporter) ReportStep {
	return ReportStep{
		logger:           logger,
		testResultReader: testResultReader,
		fileManager:      fileManager,
		pathChecker:      pathChecker,
		outputExporter:   outputExporter,
	}
}

// Run reads the test results and generates the report.
// A failed run still returns a Result, so its test outcome can be exported.
func (s ReportStep) Run(cfg Config) (Result, error) {
	result := Result{
		TestResultsPath: cfg.TestResultsPath,
		DeployDir:       cfg.DeployDir,
		BundleName:      cfg.Options.PageTitle,
		TestsFailed:     true,
	}

	logProgress := !cfg.IgnoreConsole

	if logProgress {
		s.logger.Infof("Reading test results")
	}
	run, err := s.testResultReader.Read(cfg.TestResultsPath)
	if err != nil {
		return result, fmt.Errorf("failed to read test results: %w", err)
	}
	if run != nil {
		result.TestsFailed = run.Failed()
	}

	if logProgress && run != nil {
		s.logger.Printf("- test suites: %d (%d failed)", run.NumTotalTestSuites, run.NumFailedTestSuites)
		s.logger.Printf("- tests: %d (%d failed, %d pending)", run.NumTotalTests, run.NumFailedTests, run.NumPendingTests)
	}

	if cfg.PrintSummary && run != nil {
		s.logger.Println()
		s.logger.Printf("%s", summary.NewFormatter(cfg.Options.PageTitle, true).Format(*run))
	}

	if logProgress {
		s.logger.Println()
		s.logger.Infof("Generating report")
	}
	generator := report.NewGenerator(
		s.logger,
		stylesheet.NewLoader(cfg.Theme, cfg.StyleOverridePath),
		s.fileManager,
		fileremover.NewFileRemover(s.pathChecker, s.fileManager),
		cfg.OutputPath,
		cfg.Options,
	)

	pth, err := generator.Generate(run, cfg.IgnoreConsole)
	if err != nil {
		return result, err
	}
	result.ReportPath = pth

	return result, nil
}

// Export exposes the outcome of Run to subsequent steps.
func (s ReportStep) Export(result Result) error {
	s.logger.Println()
	s.logger.Infof("Export outputs")

	s.outputExporter.ExportTestRunResult(result.TestsFailed)

	if result.ReportPath == "" {
		return nil
	}

	if err := s.outputExporter.ExportReport(result.DeployDir, result.ReportPath); err != nil {
		return err
	}

	sourcePaths := []string{result.ReportPath}
	if result.TestResultsPath != testresult.StdinPath {
		sourcePaths = append(sourcePaths, result.TestResultsPath)
	}
	s.outputExporter.ExportTestResults(result.BundleName, sourcePaths)

	return nil
}

// Reported tells whether err comes from the report generator, which logs its own outcome.
func Reported(err error) bool {
	var reportErr *report.Error
	return errors.As(err, &reportErr)
}
