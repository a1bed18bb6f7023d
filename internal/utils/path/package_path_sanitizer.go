package pathutils

import (
	"path/filepath"
	"strings"
)

// PackagePathSanitizer normalizes the target package directory supplied on the command line.
type PackagePathSanitizer struct {
	homeExpander *HomeExpander
}

// NewPackagePathSanitizer constructs a PackagePathSanitizer with the operating system home lookup.
func NewPackagePathSanitizer() *PackagePathSanitizer {
	return NewPackagePathSanitizerWithExpander(nil)
}

// NewPackagePathSanitizerWithExpander constructs a PackagePathSanitizer using the provided expander.
func NewPackagePathSanitizerWithExpander(homeExpander *HomeExpander) *PackagePathSanitizer {
	resolvedExpander := homeExpander
	if resolvedExpander == nil {
		resolvedExpander = NewHomeExpander()
	}
	return &PackagePathSanitizer{homeExpander: resolvedExpander}
}

// Sanitize trims whitespace, expands the user's home directory, and cleans the candidate path.
// An empty or whitespace-only candidate yields an empty string.
func (sanitizer *PackagePathSanitizer) Sanitize(candidatePath string) string {
	trimmedCandidate := strings.TrimSpace(candidatePath)
	if len(trimmedCandidate) == 0 {
		return ""
	}

	expander := sanitizer.resolveExpander()
	expandedPath := expander.Expand(trimmedCandidate)
	if len(expandedPath) == 0 {
		return ""
	}

	return filepath.Clean(expandedPath)
}

func (sanitizer *PackagePathSanitizer) resolveExpander() *HomeExpander {
	if sanitizer == nil || sanitizer.homeExpander == nil {
		return NewHomeExpander()
	}
	return sanitizer.homeExpander
}
