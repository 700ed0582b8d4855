package curriculum

import (
	"fmt"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
func validateSkills(skills []Skill) error {
	var errs []string

	known := make(map[Section]bool)
	for _, s := range AllSections() {
		known[s] = true
	}

	idSet := make(map[string]bool, len(skills))
	sectionSet := make(map[Section]bool)

	for _, s := range skills {
		if s.ID == "" {
			errs = append(errs, fmt.Sprintf("skill %q has empty ID", s.Name))
		}
		if s.Name == "" {
			errs = append(errs, fmt.Sprintf("skill %q has empty name", s.ID))
		}
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true

		if !known[s.Section] {
			errs = append(errs, fmt.Sprintf("skill %q references unknown section %q", s.ID, s.Section))
		}
		sectionSet[s.Section] = true
	}

	// Check all declared sections are populated.
	for _, section := range AllSections() {
		if !sectionSet[section] {
			errs = append(errs, fmt.Sprintf("section %q has no skills", section))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
