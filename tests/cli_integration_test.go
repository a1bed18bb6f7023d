package tests

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	integrationCommandTimeout             = 60 * time.Second
	integrationUsageMessageConstant       = "usage: pubready <package-directory>"
	integrationVersionOutputConstant      = "pubready version: 0.1.0"
	integrationStartedBannerConstant      = "===== PACKAGE PUBLISHING ANALYSIS STARTED ====="
	integrationCompletedBannerConstant    = "===== PACKAGE PUBLISHING ANALYSIS COMPLETED ====="
	integrationPathEnvironmentKeyConstant = "PATH"
	integrationStubScriptPermissions      = 0o755
	integrationManifestFileName           = "pubspec.yaml"

	integrationFlutterStubScriptConstant = `#!/bin/sh
case "$1" in
  analyze)
    echo "No issues found!"
    ;;
  pub)
    case "$2" in
      outdated)
        echo "All dependencies are current."
        ;;
      add)
        echo "Changed 1 dependency!"
        ;;
    esac
    ;;
esac
exit 0
`
	integrationDartStubScriptConstant = `#!/bin/sh
case "$1" in
  run)
    echo "0 packages doesn't support $3"
    ;;
esac
exit 0
`
	integrationManifestContentConstant = `name: demo_package
description: A sufficiently descriptive summary of the demo package that easily clears the threshold.
version: 1.0.0
environment:
  sdk: ">=3.0.0 <4.0.0"
`
)

func repositoryRoot(testInstance *testing.T) string {
	testInstance.Helper()
	currentWorkingDirectory, workingDirectoryError := os.Getwd()
	require.NoError(testInstance, workingDirectoryError)
	return filepath.Dir(currentWorkingDirectory)
}

func runCLI(testInstance *testing.T, environment []string, arguments ...string) (string, error) {
	testInstance.Helper()

	executionContext, cancelFunction := context.WithTimeout(context.Background(), integrationCommandTimeout)
	defer cancelFunction()

	commandArguments := append([]string{"run", "."}, arguments...)
	command := exec.CommandContext(executionContext, "go", commandArguments...)
	command.Dir = repositoryRoot(testInstance)
	command.Env = environment

	outputBytes, runError := command.CombinedOutput()
	return string(outputBytes), runError
}

func writeToolchainStubs(testInstance *testing.T) []string {
	testInstance.Helper()

	stubDirectory := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(stubDirectory, "flutter"), []byte(integrationFlutterStubScriptConstant), integrationStubScriptPermissions))
	require.NoError(testInstance, os.WriteFile(filepath.Join(stubDirectory, "dart"), []byte(integrationDartStubScriptConstant), integrationStubScriptPermissions))

	environment := append([]string{}, os.Environ()...)
	environment = append(environment, integrationPathEnvironmentKeyConstant+"="+stubDirectory+string(os.PathListSeparator)+os.Getenv(integrationPathEnvironmentKeyConstant))
	return environment
}

func writePackageFixture(testInstance *testing.T) string {
	testInstance.Helper()

	packageDirectory := testInstance.TempDir()
	for _, documentationFileName := range []string{"README.md", "LICENSE.md", "CONTRIBUTING.md"} {
		require.NoError(testInstance, os.WriteFile(filepath.Join(packageDirectory, documentationFileName), []byte(documentationFileName), 0o644))
	}
	require.NoError(testInstance, os.WriteFile(filepath.Join(packageDirectory, integrationManifestFileName), []byte(integrationManifestContentConstant), 0o644))
	return packageDirectory
}

func TestCLIIntegrationRejectsMissingArgument(testInstance *testing.T) {
	outputText, runError := runCLI(testInstance, os.Environ())

	require.Error(testInstance, runError)
	require.Contains(testInstance, outputText, integrationUsageMessageConstant)
}

func TestCLIIntegrationPrintsVersion(testInstance *testing.T) {
	outputText, runError := runCLI(testInstance, os.Environ(), "--version")

	require.NoError(testInstance, runError, outputText)
	require.Contains(testInstance, outputText, integrationVersionOutputConstant)
}

func TestCLIIntegrationReportsCleanPackage(testInstance *testing.T) {
	environment := writeToolchainStubs(testInstance)
	packageDirectory := writePackageFixture(testInstance)

	outputText, runError := runCLI(testInstance, environment, packageDirectory)
	require.NoError(testInstance, runError, outputText)

	expectedReportLines := []string{
		integrationStartedBannerConstant,
		"1. Checking documentation files...",
		"Found 3 documentation file(s): README.md, LICENSE.md, CONTRIBUTING.md",
		"Package description is sufficient.",
		"2. Checking analyzer and formatter findings...",
		"No issues found!",
		"No analysis issues found.",
		"No files needed formatting.",
		"3. Checking dependency freshness...",
		"All dependencies are up to date.",
		"4. Checking platform support...",
		"android: all packages supported",
		"ios: all packages supported",
		"web: all packages supported",
		integrationCompletedBannerConstant,
	}
	for _, expectedReportLine := range expectedReportLines {
		require.Contains(testInstance, outputText, expectedReportLine)
	}
}
