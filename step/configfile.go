package step

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadInputFile reads step inputs from a YAML (or JSON) file.
func LoadInputFile(pth string) (Input, error) {
	data, err := os.ReadFile(pth)
	if err != nil {
		return Input{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var input Input
	if err := yaml.Unmarshal(data, &input); err != nil {
		return Input{}, fmt.Errorf("failed to parse config file (%s): %w", pth, err)
	}

	return input, nil
}
