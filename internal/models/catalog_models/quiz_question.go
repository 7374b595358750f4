package catalog_models

// QuizQuestion is a single multiple-choice question. The ID is assigned
// locally after decoding; the catalog source only carries question, options
// and correctIndex.
type QuizQuestion struct {
	ID           string   `json:"-"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// Answerable reports whether CorrectIndex points at an existing option.
// A question with an out-of-range CorrectIndex is still presented, but no
// selection can ever be judged correct.
func (q QuizQuestion) Answerable() bool {
	return q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Options)
}
