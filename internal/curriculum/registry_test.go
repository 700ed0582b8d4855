package curriculum

import (
	"testing"
)

func TestGetSkill_Exists(t *testing.T) {
	s, err := GetSkill("gr-articles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Name != "Articles" {
		t.Errorf("got name %q, want %q", s.Name, "Articles")
	}
	if s.Section != SectionGrammar {
		t.Errorf("got section %q, want %q", s.Section, SectionGrammar)
	}
}

func TestGetSkill_NotFound(t *testing.T) {
	_, err := GetSkill("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent skill, got nil")
	}
}

func TestAllSkills_Count(t *testing.T) {
	all := AllSkills()
	if len(all) != 14 {
		t.Errorf("got %d skills, want 14", len(all))
	}
}

func TestBySection(t *testing.T) {
	tests := []struct {
		section Section
		want    int
	}{
		{SectionGrammar, 5},
		{SectionVocabulary, 4},
		{SectionReading, 3},
		{SectionListening, 2},
	}
	for _, tt := range tests {
		skills := BySection(tt.section)
		if len(skills) != tt.want {
			t.Errorf("BySection(%q): got %d skills, want %d", tt.section, len(skills), tt.want)
		}
		for _, s := range skills {
			if s.Section != tt.section {
				t.Errorf("BySection(%q) returned skill %q from section %q", tt.section, s.ID, s.Section)
			}
		}
	}
}

func TestSkillIDs_MatchesAllSkills(t *testing.T) {
	ids := SkillIDs()
	all := AllSkills()
	if len(ids) != len(all) {
		t.Fatalf("SkillIDs count %d != AllSkills count %d", len(ids), len(all))
	}
	for i, s := range all {
		if ids[i] != s.ID {
			t.Errorf("SkillIDs[%d] = %q, want %q", i, ids[i], s.ID)
		}
	}
}

func TestSectionOf(t *testing.T) {
	sec, err := SectionOf("li-gist")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec != SectionListening {
		t.Errorf("got %q, want %q", sec, SectionListening)
	}

	if _, err := SectionOf("bogus"); err == nil {
		t.Error("expected error for unknown skill")
	}
}

func TestValidate_SeedIsValid(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("seed curriculum should validate: %v", err)
	}
}

func TestValidateSkills_Errors(t *testing.T) {
	tests := []struct {
		name   string
		skills []Skill
	}{
		{
			name: "duplicate IDs",
			skills: append(seedSkills(), Skill{
				ID: "gr-articles", Name: "Dup", Section: SectionGrammar,
			}),
		},
		{
			name: "unknown section",
			skills: append(seedSkills(), Skill{
				ID: "xx-new", Name: "New", Section: Section("speaking"),
			}),
		},
		{
			name:   "empty section",
			skills: seedSkills()[:5], // grammar only
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSkills(tt.skills); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
