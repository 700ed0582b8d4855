package mastery

// Level represents a mastery tier derived from pKnown.
type Level string

const (
	LevelNovice     Level = "novice"
	LevelDeveloping Level = "developing"
	LevelProficient Level = "proficient"
	LevelMastered   Level = "mastered"
)

// Classify maps a mastery probability onto its tier. Boundaries are
// inclusive on the lower edge and exclusive on the upper.
func Classify(pKnown float64) Level {
	switch {
	case pKnown >= 0.85:
		return LevelMastered
	case pKnown >= 0.65:
		return LevelProficient
	case pKnown >= 0.40:
		return LevelDeveloping
	default:
		return LevelNovice
	}
}

// Label returns the display label for a level.
func (l Level) Label() string {
	switch l {
	case LevelNovice:
		return "Novice"
	case LevelDeveloping:
		return "Developing"
	case LevelProficient:
		return "Proficient"
	case LevelMastered:
		return "Mastered"
	default:
		return "Unknown"
	}
}
