package curriculum

// Section represents a top-level assessment section.
type Section string

const (
	SectionGrammar    Section = "grammar"
	SectionVocabulary Section = "vocabulary"
	SectionReading    Section = "reading"
	SectionListening  Section = "listening"
)

// AllSections returns all sections in display order.
func AllSections() []Section {
	return []Section{
		SectionGrammar,
		SectionVocabulary,
		SectionReading,
		SectionListening,
	}
}

// SectionDisplayName returns a human-readable name for a section.
func SectionDisplayName(s Section) string {
	switch s {
	case SectionGrammar:
		return "Grammar"
	case SectionVocabulary:
		return "Vocabulary"
	case SectionReading:
		return "Reading"
	case SectionListening:
		return "Listening"
	default:
		return string(s)
	}
}

// Skill represents a single assessed subskill. The skill set is a fixed,
// closed registry: item banks and mastery records reference skills by ID,
// and every ID must resolve here.
type Skill struct {
	ID          string
	Name        string
	Description string
	Section     Section
}
