package model

import "time"

// Report is the computed result of one report generation.
// Exactly one of Diagnostic, Progress or Feedback is set, unless the
// student has no completed assessments.
type Report struct {
	// Kind is the report variant.
	Kind ReportKind `json:"kind"`

	// Student is the subject of the report.
	Student Student `json:"student"`

	// NoCompletedAssessments is true when the student has no completed
	// attempt. No result section is set in that case.
	NoCompletedAssessments bool `json:"no_completed_assessments"`

	Diagnostic *DiagnosticResult `json:"diagnostic,omitempty"`
	Progress   *ProgressResult   `json:"progress,omitempty"`
	Feedback   *FeedbackResult   `json:"feedback,omitempty"`
}

// StrandResult holds correct and total counts for one strand.
type StrandResult struct {
	Strand  string `json:"strand"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

// DiagnosticResult summarizes the latest completed attempt by strand.
type DiagnosticResult struct {
	AssessmentID   string    `json:"assessment_id"`
	AssessmentName string    `json:"assessment_name"`
	CompletedAt    time.Time `json:"completed_at"`

	// Strands are in first-seen order of the attempt's entries.
	Strands []StrandResult `json:"strands"`

	// Correct and Total are the sums over Strands.
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Attempt is one completed attempt in a progress report.
type Attempt struct {
	ResponseID  string    `json:"response_id"`
	CompletedAt time.Time `json:"completed_at"`
	Correct     int       `json:"correct"`
	Total       int       `json:"total"`
}

// ProgressResult lists all completed attempts oldest first.
type ProgressResult struct {
	AssessmentID   string    `json:"assessment_id"`
	AssessmentName string    `json:"assessment_name"`
	Attempts       []Attempt `json:"attempts"`

	// Improvement is the raw score of the newest attempt minus that of
	// the oldest. It may be negative.
	Improvement int `json:"improvement"`
}

// WrongAnswer is one incorrectly answered question with its hint.
type WrongAnswer struct {
	QuestionID    string `json:"question_id"`
	Answer        string `json:"answer"`
	CorrectAnswer string `json:"correct_answer"`
	Hint          string `json:"hint"`
}

// FeedbackResult lists the wrong answers of the latest completed attempt.
type FeedbackResult struct {
	AssessmentID   string        `json:"assessment_id"`
	AssessmentName string        `json:"assessment_name"`
	CompletedAt    time.Time     `json:"completed_at"`
	Correct        int           `json:"correct"`
	Total          int           `json:"total"`
	WrongAnswers   []WrongAnswer `json:"wrong_answers"`
}
