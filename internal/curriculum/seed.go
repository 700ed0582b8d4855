package curriculum

// seedSkills returns the built-in skill set. Item banks and mastery records
// reference these IDs; changing an ID is a breaking change for stored data.
func seedSkills() []Skill {
	return []Skill{
		// Grammar
		{ID: "gr-tense-basic", Name: "Basic Tenses", Description: "Simple present, past and future forms", Section: SectionGrammar},
		{ID: "gr-tense-perfect", Name: "Perfect Tenses", Description: "Present perfect and past perfect usage", Section: SectionGrammar},
		{ID: "gr-articles", Name: "Articles", Description: "Definite and indefinite article choice", Section: SectionGrammar},
		{ID: "gr-conditionals", Name: "Conditionals", Description: "Real and unreal conditional structures", Section: SectionGrammar},
		{ID: "gr-prepositions", Name: "Prepositions", Description: "Prepositions of time, place and movement", Section: SectionGrammar},

		// Vocabulary
		{ID: "vo-core", Name: "Core Vocabulary", Description: "High-frequency everyday words", Section: SectionVocabulary},
		{ID: "vo-collocations", Name: "Collocations", Description: "Common word partnerships", Section: SectionVocabulary},
		{ID: "vo-phrasal", Name: "Phrasal Verbs", Description: "Frequent phrasal verbs and their meanings", Section: SectionVocabulary},
		{ID: "vo-academic", Name: "Academic Vocabulary", Description: "Formal and academic register words", Section: SectionVocabulary},

		// Reading
		{ID: "rd-main-idea", Name: "Main Idea", Description: "Identifying the central point of a passage", Section: SectionReading},
		{ID: "rd-detail", Name: "Detail Retrieval", Description: "Locating specific information in text", Section: SectionReading},
		{ID: "rd-inference", Name: "Inference", Description: "Drawing conclusions not stated directly", Section: SectionReading},

		// Listening
		{ID: "li-gist", Name: "Listening for Gist", Description: "Understanding the overall message", Section: SectionListening},
		{ID: "li-detail", Name: "Listening for Detail", Description: "Catching specific facts and figures", Section: SectionListening},
	}
}

func init() {
	skills := seedSkills()
	if err := validateSkills(skills); err != nil {
		panic(err)
	}
	reg = buildRegistry(skills)
}
