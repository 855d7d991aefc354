// Package testresult decodes the aggregated result file Jest writes with `--json --outputFile`.
package testresult

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/bitrise-steplib/steps-jest-html-report/models"
)

// Reader ...
type Reader interface {
	Read(pth string) (*models.TestRun, error)
}

// StdinPath makes Read decode the standard input.
const StdinPath = "-"

type reader struct {
	stdin io.Reader
}

// NewReader ...
func NewReader() Reader {
	return reader{stdin: os.Stdin}
}

func (r reader) Read(pth string) (*models.TestRun, error) {
	if pth == StdinPath {
		return Decode("stdin", r.stdin)
	}

	f, err := os.Open(pth)
	if err != nil {
		return nil, &ParseError{
			File:    pth,
			Message: fmt.Sprintf("failed to open file: %v", err),
			Action:  "Ensure Jest ran with --json and --outputFile pointing to this path.",
		}
	}
	defer func() {
		_ = f.Close()
	}()

	return Decode(pth, f)
}

// Decode reads a Jest result document from r; name is only used in error messages.
// The run is nil when the document is the JSON literal null.
func Decode(name string, r io.Reader) (*models.TestRun, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{
			File:    name,
			Message: fmt.Sprintf("failed to read: %v", err),
			Action:  "Ensure the test result file is readable.",
		}
	}

	if len(data) == 0 {
		return nil, &ParseError{
			File:    name,
			Message: "file is empty",
			Action:  "Ensure Jest completed. The JSON output should not be empty.",
		}
	}

	var run *models.TestRun
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, &ParseError{
			File:    name,
			Message: fmt.Sprintf("invalid JSON: %v", err),
			Action:  "Ensure Jest produced valid JSON output. The file may be corrupted or incomplete.",
		}
	}

	// A `null` document leaves run nil; the report generator rejects it as missing test data.
	return run, nil
}

// ParseError provides actionable information about an unusable test result file.
type ParseError struct {
	File    string
	Message string
	Action  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s. %s", e.File, e.Message, e.Action)
}
