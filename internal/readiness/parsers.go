package readiness

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

const (
	outdatedRowMarkerConstant          = "*"
	versionMarkerPrefixConstant        = "*"
	lineSeparatorConstant              = "\n"
	minimumOutdatedRowFieldsConstant   = 3
	unsupportedCountSubmatchesExpected = 2
)

var (
	analysisIssueCountPattern = regexp.MustCompile(`(\d+)\s+issues?\s+found`)
	formatChangedFilePattern  = regexp.MustCompile(`(?i)changed\s+\S+\.dart`)
	unsupportedCountPattern   = regexp.MustCompile(`(\d+)\s+packages doesn't support`)
)

// CountAnalysisIssues sums every issue count reported in static analysis output.
// Text without a recognizable issue summary yields zero.
func CountAnalysisIssues(analysisOutput string) int {
	totalIssues := 0
	for _, submatches := range analysisIssueCountPattern.FindAllStringSubmatch(analysisOutput, -1) {
		issueCount, conversionError := strconv.Atoi(submatches[1])
		if conversionError != nil {
			continue
		}
		totalIssues += issueCount
	}
	return totalIssues
}

// CountFormatChanges counts the files the formatter reported as changed during a dry run.
func CountFormatChanges(formatOutput string) int {
	return len(formatChangedFilePattern.FindAllString(formatOutput, -1))
}

// CountOutdatedPackages counts the upgradable rows of the pub outdated table.
// A row is upgradable when its trimmed line is non-empty and carries the table marker.
func CountOutdatedPackages(outdatedOutput string) int {
	upgradableCount := 0
	for _, rawLine := range strings.Split(outdatedOutput, lineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(rawLine)
		if len(trimmedLine) == 0 {
			continue
		}
		if !strings.Contains(trimmedLine, outdatedRowMarkerConstant) {
			continue
		}
		upgradableCount++
	}
	return upgradableCount
}

// ExtractUnsupportedCount returns the first unsupported-package count in platform checker output, or zero when absent.
func ExtractUnsupportedCount(platformOutput string) int {
	submatches := unsupportedCountPattern.FindStringSubmatch(platformOutput)
	if len(submatches) < unsupportedCountSubmatchesExpected {
		return 0
	}
	unsupportedCount, conversionError := strconv.Atoi(submatches[1])
	if conversionError != nil {
		return 0
	}
	return unsupportedCount
}

// ClassifyUpgradeSeverity compares two versions and reports how far the current one lags behind.
// The second return value is false when either version does not parse as semver or no upgrade exists.
func ClassifyUpgradeSeverity(currentVersion string, latestVersion string) (UpgradeSeverity, bool) {
	currentSemver, currentParseError := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(currentVersion), versionMarkerPrefixConstant))
	if currentParseError != nil {
		return "", false
	}
	latestSemver, latestParseError := semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(latestVersion), versionMarkerPrefixConstant))
	if latestParseError != nil {
		return "", false
	}

	if !latestSemver.GreaterThan(currentSemver) {
		return "", false
	}

	switch {
	case latestSemver.Major() != currentSemver.Major():
		return UpgradeSeverityMajor, true
	case latestSemver.Minor() != currentSemver.Minor():
		return UpgradeSeverityMinor, true
	default:
		return UpgradeSeverityPatch, true
	}
}

// SummarizeUpgradeSeverities tallies upgrade severities across the parsable rows of the pub outdated table.
// Rows whose version columns do not parse are skipped.
func SummarizeUpgradeSeverities(outdatedOutput string) map[UpgradeSeverity]int {
	severityCounts := map[UpgradeSeverity]int{}
	for _, rawLine := range strings.Split(outdatedOutput, lineSeparatorConstant) {
		trimmedLine := strings.TrimSpace(rawLine)
		if len(trimmedLine) == 0 {
			continue
		}
		if !strings.Contains(trimmedLine, outdatedRowMarkerConstant) {
			continue
		}

		rowFields := strings.Fields(trimmedLine)
		if len(rowFields) < minimumOutdatedRowFieldsConstant {
			continue
		}

		currentVersion := rowFields[1]
		latestVersion := rowFields[len(rowFields)-1]
		severity, classified := ClassifyUpgradeSeverity(currentVersion, latestVersion)
		if !classified {
			continue
		}
		severityCounts[severity]++
	}
	return severityCounts
}
