package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	pubspecFileNameConstant          = "pubspec.yaml"
	pubspecReadErrorTemplateConstant = "unable to read %s: %w"
	pubspecParseErrorTemplate        = "unable to parse %s: %w"
)

// Pubspec models the subset of the package manifest inspected by pubready.
type Pubspec struct {
	Name        string            `yaml:"name"`
	Description string            `yaml:"description"`
	Version     string            `yaml:"version"`
	Environment map[string]string `yaml:"environment"`
}

// FileName returns the canonical manifest file name.
func FileName() string {
	return pubspecFileNameConstant
}

// Load reads the pubspec manifest directly under packageDirectory.
// A missing manifest is not an error; the second return value reports presence.
func Load(packageDirectory string) (Pubspec, bool, error) {
	manifestPath := filepath.Join(packageDirectory, pubspecFileNameConstant)

	manifestData, readError := os.ReadFile(manifestPath)
	if readError != nil {
		if errors.Is(readError, os.ErrNotExist) {
			return Pubspec{}, false, nil
		}
		return Pubspec{}, false, fmt.Errorf(pubspecReadErrorTemplateConstant, manifestPath, readError)
	}

	var parsedManifest Pubspec
	if unmarshalError := yaml.Unmarshal(manifestData, &parsedManifest); unmarshalError != nil {
		return Pubspec{}, true, fmt.Errorf(pubspecParseErrorTemplate, manifestPath, unmarshalError)
	}

	return parsedManifest, true, nil
}
