package step

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-jest-html-report/models"
	"github.com/bitrise-steplib/steps-jest-html-report/report"
	"github.com/bitrise-steplib/steps-jest-html-report/sorting"
	"github.com/bitrise-steplib/steps-jest-html-report/step/mocks"
	"github.com/bitrise-steplib/steps-jest-html-report/stylesheet"
	"github.com/bitrise-steplib/steps-jest-html-report/testresult"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type configParserMocks struct {
	pathModifier *mocks.PathModifier
}

type stepMocks struct {
	testResultReader *mocks.Reader
	outputExporter   *mocks.Exporter
}

func Test_GivenDefaultInputs_WhenParsesConfig_ThenFillsDefaults(t *testing.T) {
	// Given
	configParser, mocks := createConfigParser(t, defaultEnvValues())
	mocks.pathModifier.On("AbsPath", "./jest-results.json").Return("/src/jest-results.json", nil).Once()
	mocks.pathModifier.On("AbsPath", "./test-report.html").Return("/src/test-report.html", nil).Once()

	// When
	actualConfig, err := configParser.ProcessConfig()

	// Then
	require.NoError(t, err)

	expectedConfig := Config{
		TestResultsPath: "/src/jest-results.json",
		OutputPath:      "/src/test-report.html",
		Theme:           stylesheet.DefaultTheme,
		Options: report.Options{
			PageTitle:                     report.DefaultPageTitle,
			DateFormat:                    report.DefaultDateFormat,
			Sort:                          sorting.Default,
			ExecutionTimeWarningThreshold: 5,
		},
		DeployDir: "/deploy",
	}
	require.Equal(t, expectedConfig, actualConfig)
}

func Test_GivenCustomInputs_WhenParsesConfig_ThenUsesThem(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["output_path"] = "reports/jest.html"
	envValues["theme"] = "darkTheme"
	envValues["style_override_path"] = "custom.css"
	envValues["page_title"] = "Unit tests"
	envValues["logo"] = "https://example.com/logo.png"
	envValues["date_format"] = "Jan 2, 2006 at 3:04pm (MST)"
	envValues["sort"] = "status"
	envValues["include_suite_errors"] = "yes"
	envValues["include_failure_msg"] = "yes"
	envValues["execution_time_warning_threshold"] = "2.5"
	envValues["verbose"] = "yes"

	configParser, mocks := createConfigParser(t, envValues)
	mocks.pathModifier.On("AbsPath", "./jest-results.json").Return("/src/jest-results.json", nil).Once()
	mocks.pathModifier.On("AbsPath", "reports/jest.html").Return("/src/reports/jest.html", nil).Once()
	mocks.pathModifier.On("AbsPath", "custom.css").Return("/src/custom.css", nil).Once()

	// When
	actualConfig, err := configParser.ProcessConfig()

	// Then
	require.NoError(t, err)

	expectedConfig := Config{
		TestResultsPath:   "/src/jest-results.json",
		OutputPath:        "/src/reports/jest.html",
		Theme:             stylesheet.DarkTheme,
		StyleOverridePath: "/src/custom.css",
		Options: report.Options{
			PageTitle:                     "Unit tests",
			Logo:                          "https://example.com/logo.png",
			DateFormat:                    "Jan 2, 2006 at 3:04pm (MST)",
			Sort:                          sorting.Status,
			IncludeSuiteErrors:            true,
			IncludeFailureMessages:        true,
			ExecutionTimeWarningThreshold: 2.5,
		},
		Verbose:      true,
		PrintSummary: true,
		DeployDir:    "/deploy",
	}
	require.Equal(t, expectedConfig, actualConfig)
}

func Test_GivenMissingTestResultsPath_WhenParsesConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["test_results_path"] = ""

	configParser, _ := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.Error(t, err)
}

func Test_GivenInvalidSortInput_WhenParsesConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["sort"] = "random"

	configParser, _ := createConfigParser(t, envValues)

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.Error(t, err)
}

func Test_GivenNegativeThresholdInput_WhenParsesConfig_ThenFails(t *testing.T) {
	// Given
	envValues := defaultEnvValues()
	envValues["execution_time_warning_threshold"] = "-1"

	configParser, mocks := createConfigParser(t, envValues)
	mocks.pathModifier.On("AbsPath", mock.Anything).Return("/abs", nil).Maybe()

	// When
	_, err := configParser.ProcessConfig()

	// Then
	require.Error(t, err)
}

func Test_GivenInvalidInput_WhenProcessingInput_ThenFails(t *testing.T) {
	tests := []struct {
		name    string
		input   Input
		wantErr string
	}{
		{
			name:    "missing test results",
			input:   Input{},
			wantErr: "test results path (test_results_path) not provided",
		},
		{
			name:    "unknown theme",
			input:   Input{TestResultsPath: "jest.json", Theme: "neon"},
			wantErr: "unknown theme (neon), available: [defaultTheme lightTheme darkTheme]",
		},
		{
			name:    "unknown sort",
			input:   Input{TestResultsPath: "jest.json", Sort: "random"},
			wantErr: "unknown sort strategy (random), available: [default status executiondesc executionasc titledesc titleasc]",
		},
		{
			name:    "negative threshold",
			input:   Input{TestResultsPath: "jest.json", ExecutionTimeWarningThreshold: -1},
			wantErr: "invalid execution time warning threshold (-1), should not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configParser, mocks := createConfigParser(t, nil)
			mocks.pathModifier.On("AbsPath", mock.Anything).Return("/abs", nil).Maybe()

			_, err := configParser.ProcessInput(tt.input)

			require.EqualError(t, err, tt.wantErr)
		})
	}
}

func Test_GivenStdinTestResults_WhenProcessingInput_ThenKeepsPath(t *testing.T) {
	// Given
	configParser, mocks := createConfigParser(t, nil)
	mocks.pathModifier.On("AbsPath", "./test-report.html").Return("/src/test-report.html", nil).Once()

	// When
	config, err := configParser.ProcessInput(Input{TestResultsPath: testresult.StdinPath})

	// Then
	require.NoError(t, err)
	assert.Equal(t, testresult.StdinPath, config.TestResultsPath)
	assert.Equal(t, "/src/test-report.html", config.OutputPath)
}

func Test_GivenTestResults_WhenRuns_ThenGeneratesReport(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	config := defaultConfig(t)

	run := &models.TestRun{
		NumTotalTests:  1,
		NumFailedTests: 1,
		TestResults: []models.SuiteResult{{
			TestFilePath: "a.test.js",
			TestResults:  []models.TestResult{{Title: "breaks", Status: models.StatusFailed}},
		}},
	}
	mocks.testResultReader.On("Read", config.TestResultsPath).Return(run, nil).Once()

	// When
	result, err := step.Run(config)

	// Then
	require.NoError(t, err)
	assert.Equal(t, Result{
		ReportPath:      config.OutputPath,
		TestResultsPath: config.TestResultsPath,
		DeployDir:       config.DeployDir,
		BundleName:      report.DefaultPageTitle,
		TestsFailed:     true,
	}, result)

	content, err := os.ReadFile(config.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), `<tr class="failed"><td class="suite">breaks</td><td class="test">breaks</td><td class="result">failed</td></tr>`)
}

func Test_GivenPassingRunWithSummary_WhenRuns_ThenReportsSuccess(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	config := defaultConfig(t)
	config.PrintSummary = true

	run := &models.TestRun{Success: true, NumTotalTests: 1, NumPassedTests: 1}
	mocks.testResultReader.On("Read", config.TestResultsPath).Return(run, nil).Once()

	// When
	result, err := step.Run(config)

	// Then
	require.NoError(t, err)
	assert.False(t, result.TestsFailed)
	assert.FileExists(t, config.OutputPath)
}

func Test_GivenUnreadableTestResults_WhenRuns_ThenFailsWithoutReport(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	config := defaultConfig(t)

	mocks.testResultReader.On("Read", config.TestResultsPath).Return(nil, &testresult.ParseError{File: config.TestResultsPath, Message: "file is empty"}).Once()

	// When
	result, err := step.Run(config)

	// Then
	require.Error(t, err)
	assert.False(t, Reported(err))
	assert.True(t, result.TestsFailed)
	assert.Empty(t, result.ReportPath)
	assert.NoFileExists(t, config.OutputPath)
}

func Test_GivenNullTestResults_WhenRuns_ThenFailsWithMissingTestData(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	config := defaultConfig(t)
	config.PrintSummary = true

	mocks.testResultReader.On("Read", config.TestResultsPath).Return(nil, nil).Once()

	// When
	result, err := step.Run(config)

	// Then
	require.Error(t, err)
	assert.True(t, errors.Is(err, report.ErrMissingTestData))
	assert.True(t, Reported(err))
	assert.True(t, result.TestsFailed)
	assert.Empty(t, result.ReportPath)
	assert.NoFileExists(t, config.OutputPath)
}

func Test_GivenNullJestDocument_WhenRuns_ThenWritesNoReport(t *testing.T) {
	// Given
	resultsPath := filepath.Join(t.TempDir(), "jest.json")
	require.NoError(t, fileutil.NewFileManager().Write(resultsPath, "null", 0644))

	config := defaultConfig(t)
	config.TestResultsPath = resultsPath

	step := NewReportStep(log.NewLogger(), testresult.NewReader(), fileutil.NewFileManager(), pathutil.NewPathChecker(), mocks.NewExporter(t))

	// When
	_, err := step.Run(config)

	// Then
	assert.True(t, errors.Is(err, report.ErrMissingTestData))
	assert.NoFileExists(t, config.OutputPath)
}

func Test_GivenMissingStyleOverride_WhenRuns_ThenFailsWithStylesheetError(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	config := defaultConfig(t)
	config.StyleOverridePath = filepath.Join(t.TempDir(), "missing.css")

	mocks.testResultReader.On("Read", config.TestResultsPath).Return(&models.TestRun{}, nil).Once()

	// When
	result, err := step.Run(config)

	// Then
	require.Error(t, err)
	assert.True(t, errors.Is(err, report.ErrStylesheetNotFound))
	assert.True(t, Reported(err))
	assert.Empty(t, result.ReportPath)
	assert.NoFileExists(t, config.OutputPath)
}

func Test_GivenStep_WhenExportsTestResult_ThenSetsCorrectly(t *testing.T) {
	tests := []struct {
		name       string
		testFailed bool
	}{
		{
			name:       "Exports success status",
			testFailed: false,
		},
		{
			name:       "Exports failure status",
			testFailed: true,
		},
	}

	for _, test := range tests {
		t.Log(test.name)

		runExportTest(t, test.testFailed)
	}
}

func runExportTest(t *testing.T, testFailed bool) {
	// Given
	step, mocks := createStepAndMocks(t)

	mocks.outputExporter.On("ExportTestRunResult", testFailed).Once()

	// When
	err := step.Export(Result{TestsFailed: testFailed})

	// Then
	assert.NoError(t, err)

	mocks.outputExporter.AssertCalled(t, "ExportTestRunResult", testFailed)
	mocks.outputExporter.AssertNotCalled(t, "ExportReport", mock.Anything, mock.Anything)
}

func Test_GivenStep_WhenExport_ThenExportsReportAndTestResults(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	result := defaultResult()

	mocks.outputExporter.On("ExportTestRunResult", false).Once()
	mocks.outputExporter.On("ExportReport", result.DeployDir, result.ReportPath).Return(nil).Once()
	mocks.outputExporter.On("ExportTestResults", result.BundleName, []string{result.ReportPath, result.TestResultsPath}).Once()

	// When
	err := step.Export(result)

	// Then
	assert.NoError(t, err)
}

func Test_GivenStdinTestResults_WhenExport_ThenExportsOnlyTheReport(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	result := defaultResult()
	result.TestResultsPath = testresult.StdinPath

	mocks.outputExporter.On("ExportTestRunResult", false).Once()
	mocks.outputExporter.On("ExportReport", result.DeployDir, result.ReportPath).Return(nil).Once()
	mocks.outputExporter.On("ExportTestResults", result.BundleName, []string{result.ReportPath}).Once()

	// When
	err := step.Export(result)

	// Then
	assert.NoError(t, err)
}

func Test_GivenReportExportFailure_WhenExport_ThenFails(t *testing.T) {
	// Given
	step, mocks := createStepAndMocks(t)
	result := defaultResult()

	mocks.outputExporter.On("ExportTestRunResult", false).Once()
	mocks.outputExporter.On("ExportReport", result.DeployDir, result.ReportPath).Return(errors.New("copy failed")).Once()

	// When
	err := step.Export(result)

	// Then
	assert.EqualError(t, err, "copy failed")
	mocks.outputExporter.AssertNotCalled(t, "ExportTestResults", mock.Anything, mock.Anything)
}

// Helpers

func createConfigParser(t *testing.T, envValues map[string]string) (ConfigParser, configParserMocks) {
	envRepository := mocks.NewRepository(t)

	if envValues != nil {
		call := envRepository.On("Get", mock.Anything)
		call.RunFn = func(arguments mock.Arguments) {
			key := arguments[0].(string)
			value := envValues[key]
			call.ReturnArguments = mock.Arguments{value}
		}
	}

	logger := log.NewLogger()
	inputParser := stepconf.NewInputParser(envRepository)
	pathModifier := mocks.NewPathModifier(t)

	configParser := NewConfigParser(inputParser, logger, pathModifier)

	return configParser, configParserMocks{pathModifier: pathModifier}
}

func createStepAndMocks(t *testing.T) (ReportStep, stepMocks) {
	logger := log.NewLogger()
	testResultReader := mocks.NewReader(t)
	outputExporter := mocks.NewExporter(t)

	step := NewReportStep(logger, testResultReader, fileutil.NewFileManager(), pathutil.NewPathChecker(), outputExporter)

	return step, stepMocks{
		testResultReader: testResultReader,
		outputExporter:   outputExporter,
	}
}

func defaultEnvValues() map[string]string {
	return map[string]string{
		"test_results_path":                "./jest-results.json",
		"output_path":                      "",
		"theme":                            "defaultTheme",
		"style_override_path":              "",
		"page_title":                       "",
		"logo":                             "",
		"date_format":                      "",
		"sort":                             "default",
		"include_suite_errors":             "no",
		"include_failure_msg":              "no",
		"execution_time_warning_threshold": "5",
		"verbose":                          "no",
		"BITRISE_DEPLOY_DIR":               "/deploy",
	}
}

func defaultConfig(t *testing.T) Config {
	return Config{
		TestResultsPath: "/src/jest-results.json",
		OutputPath:      filepath.Join(t.TempDir(), "out", "test-report.html"),
		Theme:           stylesheet.DefaultTheme,
		Options: report.Options{
			PageTitle:  report.DefaultPageTitle,
			DateFormat: report.DefaultDateFormat,
		},
		DeployDir: "/deploy",
	}
}

func defaultResult() Result {
	return Result{
		ReportPath:      "/src/test-report.html",
		TestResultsPath: "/src/jest-results.json",
		DeployDir:       "/deploy",
		BundleName:      "Test Report",
		TestsFailed:     false,
	}
}
