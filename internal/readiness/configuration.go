package readiness

import "strings"

const (
	requiredDocumentationConfigKeyConstant = ".required_documentation"
	platformsConfigKeyConstant             = ".platforms"
	descriptionThresholdConfigKeyConstant  = ".description_threshold"
	helperPackageConfigKeyConstant         = ".helper_package"
)

// CommandConfiguration captures persistent settings for the readiness command.
type CommandConfiguration struct {
	RequiredDocumentation []string `mapstructure:"required_documentation"`
	Platforms             []string `mapstructure:"platforms"`
	DescriptionThreshold  int      `mapstructure:"description_threshold"`
	HelperPackage         string   `mapstructure:"helper_package"`
}

// DefaultConfigurationValues returns viper defaults for the readiness command keyed under configurationKeyPrefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultReportConfiguration()
	return map[string]any{
		configurationKeyPrefix + requiredDocumentationConfigKeyConstant: defaults.RequiredDocumentationFiles,
		configurationKeyPrefix + platformsConfigKeyConstant:             defaults.Platforms,
		configurationKeyPrefix + descriptionThresholdConfigKeyConstant:  defaults.DescriptionLengthThreshold,
		configurationKeyPrefix + helperPackageConfigKeyConstant:         defaults.HelperPackageName,
	}
}

// ReportConfiguration converts the persisted settings into run parameters, applying defaults for unset values.
func (configuration CommandConfiguration) ReportConfiguration() ReportConfiguration {
	resolved := DefaultReportConfiguration()

	sanitizedDocumentation := sanitizeValues(configuration.RequiredDocumentation)
	if len(sanitizedDocumentation) > 0 {
		resolved.RequiredDocumentationFiles = sanitizedDocumentation
	}

	sanitizedPlatforms := sanitizeValues(configuration.Platforms)
	if len(sanitizedPlatforms) > 0 {
		resolved.Platforms = sanitizedPlatforms
	}

	if configuration.DescriptionThreshold > 0 {
		resolved.DescriptionLengthThreshold = configuration.DescriptionThreshold
	}

	trimmedHelperPackage := strings.TrimSpace(configuration.HelperPackage)
	if len(trimmedHelperPackage) > 0 {
		resolved.HelperPackageName = trimmedHelperPackage
	}

	return resolved
}

func sanitizeValues(raw []string) []string {
	sanitized := make([]string, 0, len(raw))
	for index := range raw {
		trimmed := strings.TrimSpace(raw[index])
		if len(trimmed) == 0 {
			continue
		}
		sanitized = append(sanitized, trimmed)
	}
	return sanitized
}
