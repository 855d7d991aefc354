package report

import (
	"fmt"
	"os"

	"github.com/bitrise-steplib/steps-jest-html-report/fileremover"
	"github.com/bitrise-steplib/steps-jest-html-report/models"
	"github.com/bitrise-steplib/steps-jest-html-report/stylesheet"
)

// Logger is the part of the step logger the generator reports its outcome with.
type Logger interface {
	Donef(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// FileWriter ...
type FileWriter interface {
	Write(path string, value string, perm os.FileMode) error
}

// Generator renders a test run and writes it as a single HTML document.
type Generator struct {
	logger           Logger
	stylesheetLoader stylesheet.Loader
	fileWriter       FileWriter
	fileRemover      fileremover.FileRemover
	outputPath       string
	options          Options
}

// NewGenerator ...
func NewGenerator(logger Logger, stylesheetLoader stylesheet.Loader, fileWriter FileWriter, fileRemover fileremover.FileRemover, outputPath string, options Options) Generator {
	return Generator{
		logger:           logger,
		stylesheetLoader: stylesheetLoader,
		fileWriter:       fileWriter,
		fileRemover:      fileRemover,
		outputPath:       outputPath,
		options:          options,
	}
}

// Generate writes the report of run to the output path and returns that path.
// The outcome is logged exactly once (unless ignoreConsole is set): a success line
// naming the path, or the error that stopped the generation. Nothing is left at the
// output path when the generation fails.
func (g Generator) Generate(run *models.TestRun, ignoreConsole bool) (string, error) {
	if err := g.generate(run); err != nil {
		if !ignoreConsole {
			g.logger.Errorf("%s", err)
		}
		return "", err
	}

	if !ignoreConsole {
		g.logger.Donef("Report generated (%s)", g.outputPath)
	}
	return g.outputPath, nil
}

func (g Generator) generate(run *models.TestRun) error {
	css, err := g.stylesheetLoader.Load()
	if err != nil {
		return &Error{Kind: StylesheetNotFound, Err: err}
	}

	content, err := g.Render(run, css)
	if err != nil {
		return err
	}

	return g.write(content)
}

// Render assembles and serializes the report of run without touching the file system.
func (g Generator) Render(run *models.TestRun, css string) (string, error) {
	doc, err := BuildDocument(run, css, g.options)
	if err != nil {
		return "", err
	}
	return Render(doc)
}

func (g Generator) write(content string) error {
	if err := g.fileWriter.Write(g.outputPath, content, 0644); err != nil {
		if removeErr := g.fileRemover.Remove(g.outputPath); removeErr != nil {
			err = fmt.Errorf("%w (removing partial output also failed: %s)", err, removeErr)
		}
		return &Error{Kind: WriteFailure, Err: fmt.Errorf("failed to write report to %s: %w", g.outputPath, err)}
	}
	return nil
}
