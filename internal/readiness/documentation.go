package readiness

import (
	"os"
	"path/filepath"
)

// CollectDocumentationFiles returns the required documentation files present directly under packageDirectory,
// preserving the order of requiredFiles.
func CollectDocumentationFiles(packageDirectory string, requiredFiles []string) []string {
	presentFiles := make([]string, 0, len(requiredFiles))
	for _, requiredFileName := range requiredFiles {
		candidatePath := filepath.Join(packageDirectory, requiredFileName)
		fileInformation, statError := os.Stat(candidatePath)
		if statError != nil {
			continue
		}
		if fileInformation.IsDir() {
			continue
		}
		presentFiles = append(presentFiles, requiredFileName)
	}
	return presentFiles
}

// MissingDocumentationFiles computes the set difference between requiredFiles and presentFiles,
// preserving the order of requiredFiles.
func MissingDocumentationFiles(requiredFiles []string, presentFiles []string) []string {
	presentSet := make(map[string]struct{}, len(presentFiles))
	for _, presentFileName := range presentFiles {
		presentSet[presentFileName] = struct{}{}
	}

	missingFiles := make([]string, 0, len(requiredFiles))
	for _, requiredFileName := range requiredFiles {
		if _, filePresent := presentSet[requiredFileName]; filePresent {
			continue
		}
		missingFiles = append(missingFiles, requiredFileName)
	}
	return missingFiles
}
