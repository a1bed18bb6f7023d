package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pubready/pubready/internal/readiness"
)

const (
	readmeFileNameConstant           = "README.md"
	yamlFenceStartConstant           = "```yaml"
	yamlFenceEndConstant             = "```"
	configHeaderMarkerConstant       = "# config.yaml"
	parentDirectoryReferenceConstant = ".."
	missingHeaderMessageConstant     = "README example missing config header marker"
	missingStartFenceMessageConstant = "README example missing yaml fence start"
	missingEndFenceMessageConstant   = "README example missing yaml fence end"
)

type readmeApplicationConfiguration struct {
	Common readmeCommonConfiguration `yaml:"common"`
	Tools  readmeToolsConfiguration  `yaml:"tools"`
}

type readmeCommonConfiguration struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type readmeToolsConfiguration struct {
	Readiness readmeReadinessConfiguration `yaml:"readiness"`
}

type readmeReadinessConfiguration struct {
	RequiredDocumentation []string `yaml:"required_documentation"`
	Platforms             []string `yaml:"platforms"`
	DescriptionThreshold  int      `yaml:"description_threshold"`
	HelperPackage         string   `yaml:"helper_package"`
}

func TestReadmeConfigurationExampleMatchesDefaults(testInstance *testing.T) {
	readmePath := filepath.Join(parentDirectoryReferenceConstant, readmeFileNameConstant)
	readmeBytes, readError := os.ReadFile(readmePath)
	require.NoError(testInstance, readError)
	readmeContent := string(readmeBytes)

	headerIndex := strings.Index(readmeContent, configHeaderMarkerConstant)
	require.GreaterOrEqual(testInstance, headerIndex, 0, missingHeaderMessageConstant)

	fenceStartIndex := strings.LastIndex(readmeContent[:headerIndex], yamlFenceStartConstant)
	require.GreaterOrEqual(testInstance, fenceStartIndex, 0, missingStartFenceMessageConstant)

	snippetStart := fenceStartIndex + len(yamlFenceStartConstant)
	fenceEndOffset := strings.Index(readmeContent[snippetStart:], yamlFenceEndConstant)
	require.GreaterOrEqual(testInstance, fenceEndOffset, 0, missingEndFenceMessageConstant)

	configurationSnippet := readmeContent[snippetStart : snippetStart+fenceEndOffset]

	var documentedConfiguration readmeApplicationConfiguration
	require.NoError(testInstance, yaml.Unmarshal([]byte(configurationSnippet), &documentedConfiguration))

	defaults := readiness.DefaultReportConfiguration()
	require.Equal(testInstance, defaults.RequiredDocumentationFiles, documentedConfiguration.Tools.Readiness.RequiredDocumentation)
	require.Equal(testInstance, defaults.Platforms, documentedConfiguration.Tools.Readiness.Platforms)
	require.Equal(testInstance, defaults.DescriptionLengthThreshold, documentedConfiguration.Tools.Readiness.DescriptionThreshold)
	require.Equal(testInstance, defaults.HelperPackageName, documentedConfiguration.Tools.Readiness.HelperPackage)
	require.Equal(testInstance, "info", documentedConfiguration.Common.LogLevel)
	require.Equal(testInstance, "structured", documentedConfiguration.Common.LogFormat)
}
