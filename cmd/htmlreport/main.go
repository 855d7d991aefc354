package main

import (
	"os"

	"github.com/bitrise-io/go-utils/v2/fileutil"
	"github.com/bitrise-io/go-utils/v2/log"
	"github.com/bitrise-io/go-utils/v2/pathutil"
	"github.com/bitrise-steplib/steps-jest-html-report/step"
	"github.com/bitrise-steplib/steps-jest-html-report/testresult"
	"github.com/urfave/cli/v2"
)

// Version ...
var Version = "dev"

func main() {
	logger := log.NewLogger()

	if err := newApp(logger).Run(os.Args); err != nil {
		if !step.Reported(err) {
			logger.Errorf("%s", err)
		}
		os.Exit(1)
	}
}

func newApp(logger log.Logger) *cli.App {
	app := cli.NewApp()
	app.Name = "htmlreport"
	app.Version = Version
	app.Usage = "Jest HTML test report generator"
	app.Description = "htmlreport renders the JSON results of a Jest run as a single static HTML page"
	app.Flags = Flags
	app.Action = func(c *cli.Context) error {
		return generate(c, logger)
	}
	return app
}

func generate(c *cli.Context, logger log.Logger) error {
	var input step.Input
	if pth := c.String(ConfigFile.Name); pth != "" {
		var err error
		if input, err = step.LoadInputFile(pth); err != nil {
			return err
		}
	}
	applyFlags(c, &input)

	logger.EnableDebugLog(input.Verbose)

	configParser := step.NewConfigParser(nil, logger, pathutil.NewPathModifier())
	config, err := configParser.ProcessInput(input)
	if err != nil {
		return err
	}
	config.IgnoreConsole = c.Bool(Quiet.Name)
	config.PrintSummary = config.PrintSummary || c.Bool(Summary.Name)

	reportStep := step.NewReportStep(logger, testresult.NewReader(), fileutil.NewFileManager(), pathutil.NewPathChecker(), nil)
	_, err = reportStep.Run(config)
	return err
}
