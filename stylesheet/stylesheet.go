package stylesheet

import (
	"embed"
	"fmt"
	"os"
)

//go:embed themes/*.css
var themes embed.FS

// Theme ...
type Theme string

// Embedded themes ...
const (
	DefaultTheme Theme = "defaultTheme"
	LightTheme   Theme = "lightTheme"
	DarkTheme    Theme = "darkTheme"
)

// Themes ...
func Themes() []Theme {
	return []Theme{DefaultTheme, LightTheme, DarkTheme}
}

// Loader ...
type Loader interface {
	Load() (string, error)
}

type loader struct {
	theme        Theme
	overridePath string
}

// NewLoader returns a Loader reading overridePath when it is set, the embedded theme otherwise.
func NewLoader(theme Theme, overridePath string) Loader {
	if theme == "" {
		theme = DefaultTheme
	}
	return loader{theme: theme, overridePath: overridePath}
}

func (l loader) Load() (string, error) {
	if l.overridePath != "" {
		content, err := os.ReadFile(l.overridePath)
		if err != nil {
			return "", &NotFoundError{Path: l.overridePath, Err: err}
		}
		return string(content), nil
	}

	pth := "themes/" + string(l.theme) + ".css"
	content, err := themes.ReadFile(pth)
	if err != nil {
		return "", &NotFoundError{Path: pth, Err: err}
	}
	return string(content), nil
}

// NotFoundError ...
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("could not locate the stylesheet: '%s': %s", e.Path, e.Err)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}
