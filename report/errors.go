package report

import "errors"

// ErrorKind ...
type ErrorKind string

// Error kinds of a report generation.
const (
	StylesheetNotFound ErrorKind = "StylesheetNotFound"
	MissingTestData    ErrorKind = "MissingTestData"
	WriteFailure       ErrorKind = "WriteFailure"
)

// Sentinels for errors.Is.
var (
	ErrStylesheetNotFound = &Error{Kind: StylesheetNotFound}
	ErrMissingTestData    = &Error{Kind: MissingTestData}
	ErrWriteFailure       = &Error{Kind: WriteFailure}
)

var errMissingTestData = errors.New("test data missing or malformed")

// Error is returned by every stage of the report generation.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
