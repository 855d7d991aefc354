package output

import (
	"fmt"
	"path/filepath"

	"github.com/bitrise-io/bitrise/configs"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-steplib/steps-jest-html-report/testaddon"
)

// Exported step outputs.
const (
	ReportPathEnvKey    = "BITRISE_HTML_TEST_REPORT_PATH"
	TestRunResultEnvKey = "BITRISE_HTML_TEST_REPORT_TEST_RESULT"
)

// OutputExporter copies a file and exposes its path to subsequent steps.
type OutputExporter interface {
	ExportOutputFile(key, sourcePath, destinationPath string) error
}

// Exporter ...
type Exporter interface {
	ExportTestRunResult(failed bool)
	ExportReport(deployDir, reportPath string) error
	ExportTestResults(bundleName string, sourcePaths []string)
}

type exporter struct {
	envRepository     env.Repository
	logger            log.Logger
	outputExporter    OutputExporter
	testAddonExporter testaddon.Exporter
}

// NewExporter ...
func NewExporter(envRepository env.Repository, logger log.Logger, outputExporter OutputExporter, testAddonExporter testaddon.Exporter) Exporter {
	return &exporter{
		envRepository:     envRepository,
		logger:            logger,
		outputExporter:    outputExporter,
		testAddonExporter: testAddonExporter,
	}
}

func (e exporter) ExportTestRunResult(failed bool) {
	status := "succeeded"
	if failed {
		status = "failed"
	}
	if err := e.envRepository.Set(TestRunResultEnvKey, status); err != nil {
		e.logger.Warnf("Failed to export: %s: %s", TestRunResultEnvKey, err)
	}
}

// ExportReport exposes the report path; with a deploy dir the report is copied there
// and the copy is exposed instead.
func (e exporter) ExportReport(deployDir, reportPath string) error {
	if deployDir == "" {
		if err := e.envRepository.Set(ReportPathEnvKey, reportPath); err != nil {
			return fmt.Errorf("failed to export %s: %w", ReportPathEnvKey, err)
		}
		return nil
	}

	deployPth := filepath.Join(deployDir, filepath.Base(reportPath))
	if err := e.outputExporter.ExportOutputFile(ReportPathEnvKey, reportPath, deployPth); err != nil {
		return fmt.Errorf("failed to copy report from (%s) to (%s): %w", reportPath, deployPth, err)
	}

	return nil
}

func (e exporter) ExportTestResults(bundleName string, sourcePaths []string) {
	addonResultPath := e.envRepository.Get(configs.BitrisePerStepTestResultDirEnvKey)
	if len(addonResultPath) == 0 {
		e.logger.Debugf("Test addon result dir (%s) not set, skipping test result export", configs.BitrisePerStepTestResultDirEnvKey)
		return
	}

	e.logger.Println()
	e.logger.Infof("Exporting test results")

	if err := e.testAddonExporter.CopyAndSaveMetadata(testaddon.AddonCopy{
		SourcePaths:           sourcePaths,
		TargetAddonPath:       addonResultPath,
		TargetAddonBundleName: bundleName,
	}); err != nil {
		e.logger.Warnf("Failed to export test results: %s", err)
	}
}
