package ux

import (
	"fmt"
	"os"
)

// planCandidates are checked in order when no plan path is given
var planCandidates = []string{"plan.yaml", "plan.yml", "plan.json"}

// toolCandidates are checked in order when no tool specs path is given
var toolCandidates = []string{"tools.yaml", "tools.yml", "tools.json"}

// DiscoverPlanFile returns the plan document in the current directory,
// preferring YAML over JSON
func DiscoverPlanFile() (string, error) {
	return firstExisting(planCandidates, "plan")
}

// DiscoverToolsFile returns the tool specs document in the current
// directory
func DiscoverToolsFile() (string, error) {
	return firstExisting(toolCandidates, "tool specs")
}

func firstExisting(candidates []string, kind string) (string, error) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no %s file found (looked for %v); pass a path explicitly", kind, candidates)
}

// ValidateRequiredFile checks if a required file exists and provides a
// helpful error
func ValidateRequiredFile(path string, fileType string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%s not found at: %s", fileType, path)
	} else if err != nil {
		return fmt.Errorf("error accessing %s: %w", fileType, err)
	}
	return nil
}
