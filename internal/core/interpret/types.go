package interpret

// Result is the structured interpretation of a term, phrase or emoji.
type Result struct {
	TermPhrase         string   `json:"termPhrase"`
	Platform           string   `json:"platform"`
	Meaning            string   `json:"meaning"`
	LinguisticCategory string   `json:"linguisticCategory"`
	SocialCategory     string   `json:"socialCategory"`
	Explanation        string   `json:"explanation"`
	ExampleSentences   []string `json:"exampleSentences"`
	References         []string `json:"references"`
}

// payload is the wire shape returned by the model. Pointers separate a missing
// field (invalid) from an empty one (valid, judged by the caller).
type payload struct {
	TermPhrase         *string  `json:"termPhrase" validate:"required"`
	Platform           *string  `json:"platform" validate:"required"`
	Meaning            *string  `json:"meaning" validate:"required"`
	LinguisticCategory *string  `json:"linguisticCategory" validate:"required"`
	SocialCategory     *string  `json:"socialCategory" validate:"required"`
	Explanation        *string  `json:"explanation" validate:"required"`
	ExampleSentences   []string `json:"exampleSentences" validate:"required"`
	References         []string `json:"references" validate:"required"`
}

func (p payload) result() Result {
	return Result{
		TermPhrase:         *p.TermPhrase,
		Platform:           *p.Platform,
		Meaning:            *p.Meaning,
		LinguisticCategory: *p.LinguisticCategory,
		SocialCategory:     *p.SocialCategory,
		Explanation:        *p.Explanation,
		ExampleSentences:   p.ExampleSentences,
		References:         p.References,
	}
}
