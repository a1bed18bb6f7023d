package readiness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pubready/pubready/internal/execshell"
	"github.com/pubready/pubready/internal/manifest"
)

const (
	analysisStartedBannerConstant   = "===== PACKAGE PUBLISHING ANALYSIS STARTED ====="
	analysisCompletedBannerConstant = "===== PACKAGE PUBLISHING ANALYSIS COMPLETED ====="

	documentationSectionHeadingConstant = "1. Checking documentation files..."
	analysisSectionHeadingConstant      = "2. Checking analyzer and formatter findings..."
	freshnessSectionHeadingConstant     = "3. Checking dependency freshness..."
	platformSectionHeadingConstant      = "4. Checking platform support..."

	documentationFoundTemplateConstant        = "Found %d documentation file(s): %s"
	documentationNoneFoundMessageConstant     = "Found 0 documentation files"
	documentationMissingTemplateConstant      = "Missing documentation file(s): %s"
	descriptionSufficientMessageConstant      = "Package description is sufficient."
	descriptionInsufficientTemplateConstant   = "Package description is insufficient; aim for more than %d characters."
	manifestLoadFailureTemplateConstant       = "Could not read package manifest: %v"
	documentationFileListSeparatorConstant    = ", "
	analysisSpawnFailureMessageConstant       = "Static analysis could not be started."
	analysisNoOutputMessageConstant           = "Static analysis produced no output."
	analysisIssuesFoundTemplateConstant       = "Static analysis found %d issue(s). Run the analyzer locally and address the findings."
	analysisNoIssuesMessageConstant           = "No analysis issues found."
	formatChangesTemplateConstant             = "%d file(s) need formatting. Run the formatter to fix them."
	formatNoChangesMessageConstant            = "No files needed formatting."
	outdatedPackagesTemplateConstant          = "%d package(s) can be upgraded."
	outdatedSeveritySuffixTemplateConstant    = " Upgrades by severity: %s."
	outdatedSeverityEntryTemplateConstant     = "%s %d"
	outdatedSeverityEntrySeparatorConstant    = ", "
	dependenciesUpToDateMessageConstant       = "All dependencies are up to date."
	platformSupportedTemplateConstant         = "%s: all packages supported"
	platformUnsupportedTemplateConstant       = "%s: %d package(s) unsupported"
	helperAddSuccessPhraseConstant            = "Changed 1 dependency!"
	helperAddAlreadyPresentPhraseConstant     = "is already in"
	pubSubcommandArgumentConstant             = "pub"
	pubOutdatedArgumentConstant               = "outdated"
	pubAddArgumentConstant                    = "add"
	analyzeArgumentConstant                   = "analyze"
	formatArgumentConstant                    = "format"
	formatOutputNoneArgumentConstant          = "--output=none"
	currentDirectoryArgumentConstant          = "."
	runArgumentConstant                       = "run"
)

// Service drives the four readiness checks for a package directory and prints the report.
type Service struct {
	executor      ToolchainExecutor
	configuration ReportConfiguration
	outputWriter  io.Writer
	errorWriter   io.Writer
}

// NewService constructs a Service using the provided dependencies.
func NewService(executor ToolchainExecutor, configuration ReportConfiguration, outputWriter io.Writer, errorWriter io.Writer) *Service {
	return &Service{
		executor:      executor,
		configuration: configuration,
		outputWriter:  outputWriter,
		errorWriter:   errorWriter,
	}
}

// Run executes the checks sequentially and always reaches the completion banner.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	service.printLine(analysisStartedBannerConstant)

	service.runDocumentationCheck(options.PackageDirectory)
	service.runAnalysisCheck(executionContext, options.PackageDirectory)
	service.runFreshnessCheck(executionContext, options.PackageDirectory)
	service.runPlatformCheck(executionContext, options.PackageDirectory)

	service.printLine(analysisCompletedBannerConstant)
	return nil
}

func (service *Service) runDocumentationCheck(packageDirectory string) {
	service.printLine(documentationSectionHeadingConstant)

	requiredFiles := service.configuration.RequiredDocumentationFiles
	presentFiles := CollectDocumentationFiles(packageDirectory, requiredFiles)
	missingFiles := MissingDocumentationFiles(requiredFiles, presentFiles)

	if len(presentFiles) == 0 {
		service.printLine(documentationNoneFoundMessageConstant)
	} else {
		service.printLine(fmt.Sprintf(documentationFoundTemplateConstant, len(presentFiles), strings.Join(presentFiles, documentationFileListSeparatorConstant)))
	}

	if len(missingFiles) > 0 {
		service.printLine(fmt.Sprintf(documentationMissingTemplateConstant, strings.Join(missingFiles, documentationFileListSeparatorConstant)))
	}

	packageManifest, manifestPresent, manifestError := manifest.Load(packageDirectory)
	if manifestError != nil {
		fmt.Fprintf(service.errorWriter, manifestLoadFailureTemplateConstant+"\n", manifestError)
		return
	}
	if !manifestPresent {
		return
	}

	if len(packageManifest.Description) > service.configuration.DescriptionLengthThreshold {
		service.printLine(descriptionSufficientMessageConstant)
	} else {
		service.printLine(fmt.Sprintf(descriptionInsufficientTemplateConstant, service.configuration.DescriptionLengthThreshold))
	}
}

func (service *Service) runAnalysisCheck(executionContext context.Context, packageDirectory string) {
	service.printLine(analysisSectionHeadingConstant)

	analysisText, analysisSpawned := service.capturedText(service.executor.ExecuteFlutter(executionContext, execshell.CommandDetails{
		Arguments:        []string{analyzeArgumentConstant},
		WorkingDirectory: packageDirectory,
	}))

	switch {
	case !analysisSpawned:
		service.printLine(analysisSpawnFailureMessageConstant)
	case len(strings.TrimSpace(analysisText)) == 0:
		service.printLine(analysisNoOutputMessageConstant)
	default:
		issueCount := CountAnalysisIssues(analysisText)
		if issueCount > 0 {
			service.printLine(fmt.Sprintf(analysisIssuesFoundTemplateConstant, issueCount))
		} else {
			service.printLine(analysisText)
			service.printLine(analysisNoIssuesMessageConstant)
		}
	}

	formatText, _ := service.capturedText(service.executor.ExecuteDart(executionContext, execshell.CommandDetails{
		Arguments:        []string{formatArgumentConstant, formatOutputNoneArgumentConstant, currentDirectoryArgumentConstant},
		WorkingDirectory: packageDirectory,
	}))

	changedFileCount := CountFormatChanges(formatText)
	if changedFileCount > 0 {
		service.printLine(fmt.Sprintf(formatChangesTemplateConstant, changedFileCount))
	} else {
		service.printLine(formatNoChangesMessageConstant)
	}
}

func (service *Service) runFreshnessCheck(executionContext context.Context, packageDirectory string) {
	service.printLine(freshnessSectionHeadingConstant)

	outdatedText, _ := service.capturedText(service.executor.ExecuteFlutter(executionContext, execshell.CommandDetails{
		Arguments:        []string{pubSubcommandArgumentConstant, pubOutdatedArgumentConstant},
		WorkingDirectory: packageDirectory,
	}))

	upgradableCount := CountOutdatedPackages(outdatedText)
	if upgradableCount == 0 {
		service.printLine(dependenciesUpToDateMessageConstant)
		return
	}

	reportLine := fmt.Sprintf(outdatedPackagesTemplateConstant, upgradableCount)
	severitySummary := formatSeveritySummary(SummarizeUpgradeSeverities(outdatedText))
	if len(severitySummary) > 0 {
		reportLine += fmt.Sprintf(outdatedSeveritySuffixTemplateConstant, severitySummary)
	}
	service.printLine(reportLine)
}

func (service *Service) runPlatformCheck(executionContext context.Context, packageDirectory string) {
	service.printLine(platformSectionHeadingConstant)

	addText, _ := service.capturedText(service.executor.ExecuteFlutter(executionContext, execshell.CommandDetails{
		Arguments:        []string{pubSubcommandArgumentConstant, pubAddArgumentConstant, service.configuration.HelperPackageName},
		WorkingDirectory: packageDirectory,
	}))

	helperAvailable := strings.Contains(addText, helperAddSuccessPhraseConstant) || strings.Contains(addText, helperAddAlreadyPresentPhraseConstant)
	if !helperAvailable {
		service.printLine(addText)
		return
	}

	for _, platformName := range service.configuration.Platforms {
		platformText, _ := service.capturedText(service.executor.ExecuteDart(executionContext, execshell.CommandDetails{
			Arguments:        []string{runArgumentConstant, service.configuration.HelperPackageName, platformName},
			WorkingDirectory: packageDirectory,
		}))

		unsupportedCount := ExtractUnsupportedCount(platformText)
		if unsupportedCount == 0 {
			service.printLine(fmt.Sprintf(platformSupportedTemplateConstant, platformName))
		} else {
			service.printLine(fmt.Sprintf(platformUnsupportedTemplateConstant, platformName, unsupportedCount))
		}
	}
}

// capturedText reduces an execution outcome to the text a check inspects: standard
// output on success, standard error on a non-zero exit. The second return value is
// false when the command could not be started at all.
func (service *Service) capturedText(result execshell.ExecutionResult, executionError error) (string, bool) {
	if executionError == nil {
		return result.StandardOutput, true
	}

	commandFailure := execshell.CommandFailedError{}
	if errors.As(executionError, &commandFailure) {
		return commandFailure.Result.StandardError, true
	}

	return "", false
}

func (service *Service) printLine(reportLine string) {
	fmt.Fprintln(service.outputWriter, reportLine)
}

func formatSeveritySummary(severityCounts map[UpgradeSeverity]int) string {
	orderedSeverities := []UpgradeSeverity{UpgradeSeverityMajor, UpgradeSeverityMinor, UpgradeSeverityPatch}
	summaryEntries := make([]string, 0, len(orderedSeverities))
	for _, severity := range orderedSeverities {
		severityCount := severityCounts[severity]
		if severityCount == 0 {
			continue
		}
		summaryEntries = append(summaryEntries, fmt.Sprintf(outdatedSeverityEntryTemplateConstant, severity, severityCount))
	}
	return strings.Join(summaryEntries, outdatedSeverityEntrySeparatorConstant)
}
