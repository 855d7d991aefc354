package main

import (
	"os"

	"github.com/bitrise-io/go-steputils/v2/export"
	"github.com/bitrise-io/go-steputils/v2/stepconf"
	"github.com/bitrise-io/go-steputils/v2/stepenv"
	"github.com/bitrise-io/go-utils/v2/command"
	"github.com/bitrise-io/go-utils/v2/env"
	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-jest-html-report/output"
	"github.com/bitrise-steplib/steps-jest-html-report/step"
	"github.com/bitrise-steplib/steps-jest-html-report/testaddon"
	"github.com/bitrise-steplib/steps-jest-html-report/testresult"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.NewLogger()
	envRepository := env.NewRepository()

	configParser := step.NewConfigParser(stepconf.NewInputParser(envRepository), logger, pathutil.NewPathModifier())
	config, err := configParser.ProcessConfig()
	if err != nil {
		logger.Errorf("Process config: %s", err)
		return 1
	}

	reportStep := createReportStep(logger, envRepository)

	result, runErr := reportStep.Run(config)
	if runErr != nil && !step.Reported(runErr) {
		logger.Errorf("Run: %s", runErr)
	}

	if err := reportStep.Export(result); err != nil {
		logger.Errorf("Export outputs: %s", err)
		return 1
	}

	if runErr != nil {
		return 1
	}
	return 0
}

func createReportStep(logger log.Logger, envRepository env.Repository) step.ReportStep {
	outputExporter := export.NewExporter(command.NewFactory(envRepository))
	exporter := output.NewExporter(
		stepenv.NewRepository(envRepository),
		logger,
		&outputExporter,
		testaddon.NewExporter(testaddon.NewTestAddon(logger)),
	)

	return step.NewReportStep(logger, testresult.NewReader(), fileutil.NewFileManager(), pathutil.NewPathChecker(), exporter)
}
