package readiness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pubready/pubready/internal/readiness"
)

func TestCountAnalysisIssues(testInstance *testing.T) {
	testCases := []struct {
		name           string
		analysisOutput string
		expectedCount  int
	}{
		{
			name:           "no_matches",
			analysisOutput: "Analyzing example...\nNo issues found!",
			expectedCount:  0,
		},
		{
			name:           "single_match",
			analysisOutput: "Analyzing example...\n\n  error - Undefined name 'foo' - lib/main.dart:3:1\n\n1 issue found. (ran in 2.3s)",
			expectedCount:  1,
		},
		{
			name:           "plural_match",
			analysisOutput: "4 issues found. (ran in 2.3s)",
			expectedCount:  4,
		},
		{
			name:           "multiple_matches_are_summed",
			analysisOutput: "2 issues found in lib\n3 issues found in test\n",
			expectedCount:  5,
		},
		{
			name:           "empty_text",
			analysisOutput: "",
			expectedCount:  0,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedCount, readiness.CountAnalysisIssues(testCase.analysisOutput))
		})
	}
}

func TestCountFormatChanges(testInstance *testing.T) {
	testCases := []struct {
		name          string
		formatOutput  string
		expectedCount int
	}{
		{
			name:          "no_changes",
			formatOutput:  "Formatted 12 files (0 changed) in 0.8 seconds.",
			expectedCount: 0,
		},
		{
			name:          "two_changed_files",
			formatOutput:  "Changed lib/main.dart\nChanged test/widget_test.dart\nFormatted 12 files (2 changed) in 0.9 seconds.",
			expectedCount: 2,
		},
		{
			name:          "keyword_match_is_case_insensitive",
			formatOutput:  "changed lib/src/util.dart\nCHANGED lib/src/other.dart",
			expectedCount: 2,
		},
		{
			name:          "non_dart_paths_are_ignored",
			formatOutput:  "Changed build/config.json",
			expectedCount: 0,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedCount, readiness.CountFormatChanges(testCase.formatOutput))
		})
	}
}

func TestCountOutdatedPackages(testInstance *testing.T) {
	testCases := []struct {
		name           string
		outdatedOutput string
		expectedCount  int
	}{
		{
			name:           "all_up_to_date",
			outdatedOutput: "Package Name  Current  Upgradable  Resolvable  Latest\nFound no outdated packages",
			expectedCount:  0,
		},
		{
			name:           "marker_rows_are_counted",
			outdatedOutput: "Package Name  Current  Upgradable  Resolvable  Latest\n\nhttp          *0.13.6  1.1.0       1.1.0       1.1.0\npath          *1.8.3   1.9.0       1.9.0       1.9.0\n",
			expectedCount:  2,
		},
		{
			name:           "whitespace_only_lines_are_skipped",
			outdatedOutput: "   \n\t\nhttp *0.13.6 1.1.0 1.1.0 1.1.0\n",
			expectedCount:  1,
		},
		{
			name:           "empty_text",
			outdatedOutput: "",
			expectedCount:  0,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedCount, readiness.CountOutdatedPackages(testCase.outdatedOutput))
		})
	}
}

func TestExtractUnsupportedCount(testInstance *testing.T) {
	testCases := []struct {
		name           string
		platformOutput string
		expectedCount  int
	}{
		{
			name:           "count_present",
			platformOutput: "Checking platform support...\n3 packages doesn't support web\n",
			expectedCount:  3,
		},
		{
			name:           "first_match_wins",
			platformOutput: "2 packages doesn't support ios\n5 packages doesn't support web\n",
			expectedCount:  2,
		},
		{
			name:           "absent_pattern",
			platformOutput: "All packages support android",
			expectedCount:  0,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			require.Equal(testInstance, testCase.expectedCount, readiness.ExtractUnsupportedCount(testCase.platformOutput))
		})
	}
}

func TestClassifyUpgradeSeverity(testInstance *testing.T) {
	testCases := []struct {
		name               string
		currentVersion     string
		latestVersion      string
		expectedSeverity   readiness.UpgradeSeverity
		expectedClassified bool
	}{
		{
			name:               "major_upgrade",
			currentVersion:     "*0.13.6",
			latestVersion:      "1.1.0",
			expectedSeverity:   readiness.UpgradeSeverityMajor,
			expectedClassified: true,
		},
		{
			name:               "minor_upgrade",
			currentVersion:     "1.8.3",
			latestVersion:      "1.9.0",
			expectedSeverity:   readiness.UpgradeSeverityMinor,
			expectedClassified: true,
		},
		{
			name:               "patch_upgrade",
			currentVersion:     "2.0.0",
			latestVersion:      "2.0.4",
			expectedSeverity:   readiness.UpgradeSeverityPatch,
			expectedClassified: true,
		},
		{
			name:               "no_upgrade",
			currentVersion:     "1.0.0",
			latestVersion:      "1.0.0",
			expectedClassified: false,
		},
		{
			name:               "unparsable_version",
			currentVersion:     "latest",
			latestVersion:      "1.0.0",
			expectedClassified: false,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			severity, classified := readiness.ClassifyUpgradeSeverity(testCase.currentVersion, testCase.latestVersion)
			require.Equal(testInstance, testCase.expectedClassified, classified)
			if testCase.expectedClassified {
				require.Equal(testInstance, testCase.expectedSeverity, severity)
			}
		})
	}
}

func TestSummarizeUpgradeSeverities(testInstance *testing.T) {
	outdatedOutput := "Package Name  Current  Upgradable  Resolvable  Latest\n" +
		"http          *0.13.6  1.1.0       1.1.0       1.1.0\n" +
		"path          *1.8.3   1.9.0       1.9.0       1.9.0\n" +
		"collection    *1.17.0  1.17.1      1.17.1      1.17.1\n"

	severityCounts := readiness.SummarizeUpgradeSeverities(outdatedOutput)

	require.Equal(testInstance, 1, severityCounts[readiness.UpgradeSeverityMajor])
	require.Equal(testInstance, 1, severityCounts[readiness.UpgradeSeverityMinor])
	require.Equal(testInstance, 1, severityCounts[readiness.UpgradeSeverityPatch])
}
