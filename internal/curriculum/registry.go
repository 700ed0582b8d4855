package curriculum

import (
	"fmt"
	"slices"
)

// registry holds the skill set with precomputed indices.
type registry struct {
	skills    []Skill
	byID      map[string]*Skill
	bySection map[Section][]Skill
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

// buildRegistry constructs the registry from a slice of skills.
func buildRegistry(skills []Skill) *registry {
	r := &registry{
		skills:    skills,
		byID:      make(map[string]*Skill, len(skills)),
		bySection: make(map[Section][]Skill),
	}
	for i := range r.skills {
		s := &r.skills[i]
		r.byID[s.ID] = s
		r.bySection[s.Section] = append(r.bySection[s.Section], *s)
	}
	return r
}

// GetSkill returns a skill by ID, or error if not found.
func GetSkill(id string) (Skill, error) {
	s, ok := reg.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// IsKnown reports whether id refers to a registered skill.
func IsKnown(id string) bool {
	_, ok := reg.byID[id]
	return ok
}

// SectionOf returns the section a skill belongs to.
// Returns an error for unknown skill IDs.
func SectionOf(id string) (Section, error) {
	s, ok := reg.byID[id]
	if !ok {
		return "", fmt.Errorf("skill not found: %q", id)
	}
	return s.Section, nil
}

// AllSkills returns all skills in seed order.
func AllSkills() []Skill {
	return slices.Clone(reg.skills)
}

// SkillIDs returns the IDs of all skills in seed order.
func SkillIDs() []string {
	ids := make([]string, len(reg.skills))
	for i, s := range reg.skills {
		ids[i] = s.ID
	}
	return ids
}

// BySection returns all skills in a given section, in seed order.
func BySection(section Section) []Skill {
	return slices.Clone(reg.bySection[section])
}

// Validate checks the registry for structural issues.
// It delegates to validateSkills with the registry's skill set.
func Validate() error {
	return validateSkills(reg.skills)
}
