package report

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/nao1215/studentreport/internal/model"
)

// Lookup is the read-only data access the generator needs.
// *dataset.Dataset implements it.
type Lookup interface {
	FindStudent(id string) (model.Student, bool)
	FindAssessment(id string) (model.Assessment, bool)
	FindQuestion(id string) (model.Question, bool)
	CompletedResponsesForStudent(studentID string) []model.AssessmentResponse
}

// Generator computes reports from a Lookup.
// It holds no mutable state and is safe for concurrent use.
type Generator struct {
	data   Lookup
	logger *slog.Logger
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithLogger sets the logger used for skipped entries and other diagnostics.
func WithLogger(logger *slog.Logger) GeneratorOption {
	return func(g *Generator) {
		g.logger = logger
	}
}

// NewGenerator creates a Generator reading from data.
func NewGenerator(data Lookup, opts ...GeneratorOption) *Generator {
	g := &Generator{data: data}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Generate returns the text report of the given kind for a student.
func (g *Generator) Generate(studentID string, kind model.ReportKind) (string, error) {
	r, err := g.Build(studentID, kind)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if _, err := NewTextWriter(&sb).Write(r); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// Build computes the report of the given kind for a student.
//
// The student is resolved first, so an unknown student is reported as
// ErrStudentNotFound even when the kind is also invalid. A student without
// completed responses yields a report with NoCompletedAssessments set and
// no error.
func (g *Generator) Build(studentID string, kind model.ReportKind) (*model.Report, error) {
	student, ok := g.data.FindStudent(studentID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStudentNotFound, studentID)
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportKind, kind)
	}

	r := &model.Report{Kind: kind, Student: student}

	responses := g.data.CompletedResponsesForStudent(student.ID)
	if len(responses) == 0 {
		r.NoCompletedAssessments = true
		return r, nil
	}

	var err error
	switch kind {
	case model.KindDiagnostic:
		r.Diagnostic, err = g.diagnostic(responses)
	case model.KindProgress:
		r.Progress, err = g.progress(responses)
	case model.KindFeedback:
		r.Feedback, err = g.feedback(responses)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build %s report for %q: %w", kind, studentID, err)
	}
	return r, nil
}

// assessment resolves the assessment referenced by a response.
func (g *Generator) assessment(r model.AssessmentResponse) (model.Assessment, error) {
	a, ok := g.data.FindAssessment(r.AssessmentID)
	if !ok {
		return model.Assessment{}, fmt.Errorf("%w: %q (response %s)", ErrAssessmentNotFound, r.AssessmentID, r.ID)
	}
	return a, nil
}

func (g *Generator) diagnostic(responses []model.AssessmentResponse) (*model.DiagnosticResult, error) {
	latest, err := latestResponse(responses)
	if err != nil {
		return nil, err
	}
	a, err := g.assessment(latest.response)
	if err != nil {
		return nil, err
	}

	res := &model.DiagnosticResult{
		AssessmentID:   a.ID,
		AssessmentName: a.Name,
		CompletedAt:    latest.completed,
		Strands:        g.strandResults(latest.response),
	}
	for _, s := range res.Strands {
		res.Correct += s.Correct
		res.Total += s.Total
	}
	return res, nil
}

// progress lists every attempt oldest first. The header assessment is the
// one of the first response in source order; a student is assumed to sit a
// single assessment series.
func (g *Generator) progress(responses []model.AssessmentResponse) (*model.ProgressResult, error) {
	a, err := g.assessment(responses[0])
	if err != nil {
		return nil, err
	}
	sorted, err := chronological(responses)
	if err != nil {
		return nil, err
	}

	res := &model.ProgressResult{
		AssessmentID:   a.ID,
		AssessmentName: a.Name,
		Attempts:       make([]model.Attempt, 0, len(sorted)),
	}
	for _, tr := range sorted {
		res.Attempts = append(res.Attempts, model.Attempt{
			ResponseID:  tr.response.ID,
			CompletedAt: tr.completed,
			Correct:     g.rawScore(tr.response),
			Total:       len(tr.response.Entries),
		})
	}

	oldest := res.Attempts[0]
	newest := res.Attempts[len(res.Attempts)-1]
	res.Improvement = newest.Correct - oldest.Correct
	return res, nil
}

func (g *Generator) feedback(responses []model.AssessmentResponse) (*model.FeedbackResult, error) {
	latest, err := latestResponse(responses)
	if err != nil {
		return nil, err
	}
	a, err := g.assessment(latest.response)
	if err != nil {
		return nil, err
	}

	res := &model.FeedbackResult{
		AssessmentID:   a.ID,
		AssessmentName: a.Name,
		CompletedAt:    latest.completed,
		Correct:        g.rawScore(latest.response),
		Total:          len(latest.response.Entries),
	}

	for _, e := range latest.response.Entries {
		q, ok := g.data.FindQuestion(e.QuestionID)
		if !ok {
			continue
		}
		// A question whose options do not include its key is inconsistent.
		if _, ok := q.KeyOption(); !ok {
			g.logger.Debug("skipping question without key option", "question", q.ID)
			continue
		}
		if q.IsCorrect(e.Answer) {
			continue
		}
		res.WrongAnswers = append(res.WrongAnswers, model.WrongAnswer{
			QuestionID:    q.ID,
			Answer:        e.Answer,
			CorrectAnswer: q.Key,
			Hint:          q.Hint,
		})
	}
	return res, nil
}
