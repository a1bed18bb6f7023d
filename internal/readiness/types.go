package readiness

const (
	readmeFileNameConstant       = "README.md"
	licenseFileNameConstant      = "LICENSE.md"
	contributingFileNameConstant = "CONTRIBUTING.md"

	platformAndroidNameConstant = "android"
	platformIOSNameConstant     = "ios"
	platformWebNameConstant     = "web"

	defaultDescriptionLengthThresholdConstant = 60
	defaultHelperPackageNameConstant          = "pubspec_checker"
)

// UpgradeSeverity classifies how far an outdated dependency lags behind its latest release.
type UpgradeSeverity string

// Supported upgrade severities.
const (
	UpgradeSeverityMajor UpgradeSeverity = "major"
	UpgradeSeverityMinor UpgradeSeverity = "minor"
	UpgradeSeverityPatch UpgradeSeverity = "patch"
)

// ReportConfiguration carries the immutable parameters of a readiness report run.
type ReportConfiguration struct {
	RequiredDocumentationFiles []string
	Platforms                  []string
	DescriptionLengthThreshold int
	HelperPackageName          string
}

// DefaultReportConfiguration returns the baseline report parameters.
func DefaultReportConfiguration() ReportConfiguration {
	return ReportConfiguration{
		RequiredDocumentationFiles: []string{readmeFileNameConstant, licenseFileNameConstant, contributingFileNameConstant},
		Platforms:                  []string{platformAndroidNameConstant, platformIOSNameConstant, platformWebNameConstant},
		DescriptionLengthThreshold: defaultDescriptionLengthThresholdConstant,
		HelperPackageName:          defaultHelperPackageNameConstant,
	}
}

// CommandOptions captures the configurable parameters for a report run.
type CommandOptions struct {
	PackageDirectory string
}
