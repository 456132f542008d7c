package model

// ResponseEntry is the answer a student submitted for one question.
type ResponseEntry struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"response"`
}

// AssessmentResponse is one attempt of a student at an assessment.
//
// Records are normalized at load time: the nested student reference is
// flattened to StudentID and incomplete attempts are dropped, so a loaded
// response always has a non-empty Completed timestamp.
type AssessmentResponse struct {
	// ID is the response record identifier.
	ID string `json:"id"`

	// StudentID is the student who made the attempt.
	StudentID string `json:"student"`

	// AssessmentID is the assessment that was attempted.
	AssessmentID string `json:"assessment"`

	// Completed is the completion timestamp in "dd/MM/yyyy HH:mm:ss" form.
	// It is empty for attempts that were never completed.
	Completed string `json:"completed"`

	// Entries are the submitted answers in the order they were given.
	Entries []ResponseEntry `json:"responses"`
}

// IsCompleted reports whether the attempt has a completion timestamp.
func (r AssessmentResponse) IsCompleted() bool {
	return r.Completed != ""
}
