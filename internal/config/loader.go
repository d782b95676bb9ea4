package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	uierrors "github.com/its-just-ui/justui-go/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads a preset file from disk, validates it, and returns the model.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, uierrors.NewParseError(path, 0, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, uierrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return &file, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
