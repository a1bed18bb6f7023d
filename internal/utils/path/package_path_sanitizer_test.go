package pathutils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/pubready/pubready/internal/utils/path"
)

const (
	testCaseTildeRelativePathConstant = "Projects/example"
	testCaseTrailingSlashCaseName     = "trailing_separator"
	testCaseTildeCaseName             = "tilde_expansion"
	testCaseWhitespaceCaseName        = "surrounding_whitespace"
	testCaseEmptyCaseName             = "empty_input"
)

func TestPackagePathSanitizerNormalizesInputs(testInstance *testing.T) {
	homeDirectory, homeDirectoryError := os.UserHomeDir()
	require.NoError(testInstance, homeDirectoryError)

	temporaryDirectory := testInstance.TempDir()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     testCaseWhitespaceCaseName,
			input:    "  " + temporaryDirectory + "\t",
			expected: temporaryDirectory,
		},
		{
			name:     testCaseTrailingSlashCaseName,
			input:    temporaryDirectory + string(os.PathSeparator),
			expected: temporaryDirectory,
		},
		{
			name:     testCaseTildeCaseName,
			input:    filepath.Join("~", testCaseTildeRelativePathConstant),
			expected: filepath.Join(homeDirectory, testCaseTildeRelativePathConstant),
		},
		{
			name:     testCaseEmptyCaseName,
			input:    "   ",
			expected: "",
		},
	}

	sanitizer := pathutils.NewPackagePathSanitizer()

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expected, sanitizer.Sanitize(testCase.input))
		})
	}
}
