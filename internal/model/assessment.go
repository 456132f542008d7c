package model

// Assessment is a named set of questions.
type Assessment struct {
	// ID is the assessment identifier (e.g. "assessment1").
	ID string `json:"id"`

	// Name is the display name used in report headers (e.g. "Numeracy").
	Name string `json:"name"`

	// QuestionIDs lists the questions that make up the assessment.
	QuestionIDs []string `json:"questions"`
}

// Option is one selectable answer of a multiple-choice question.
type Option struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// Question is a single assessment item.
type Question struct {
	// ID is the question identifier referenced by response entries.
	ID string `json:"id"`

	// Stem is the question text shown to the student.
	Stem string `json:"stem,omitempty"`

	// Type is the question type (e.g. "multiple-choice").
	Type string `json:"type,omitempty"`

	// Strand is the topical category the question belongs to
	// (e.g. "Number and Algebra").
	Strand string `json:"strand"`

	// Key is the option ID of the correct answer.
	Key string `json:"key"`

	// Options are the selectable answers.
	Options []Option `json:"options"`

	// Hint is shown next to a wrong answer in feedback reports.
	Hint string `json:"hint"`
}

// IsCorrect reports whether answer matches the question key.
// The comparison is exact and case-sensitive.
func (q Question) IsCorrect(answer string) bool {
	return answer == q.Key
}

// KeyOption returns the option whose ID equals the question key.
func (q Question) KeyOption() (Option, bool) {
	for _, o := range q.Options {
		if o.ID == q.Key {
			return o, true
		}
	}
	return Option{}, false
}
