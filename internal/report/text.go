package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/studentreport/internal/model"
)

// TextWriter renders the narrative text report.
// Its output is exactly what Generator.Generate returns.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write renders the report as text.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	name := report.Student.FullName()
	switch {
	case report.NoCompletedAssessments:
		fmt.Fprintf(&sb, "%s has no completed assessments.", name)
	case report.Diagnostic != nil:
		w.writeDiagnostic(&sb, name, report.Diagnostic)
	case report.Progress != nil:
		w.writeProgress(&sb, name, report.Progress)
	case report.Feedback != nil:
		w.writeFeedback(&sb, name, report.Feedback)
	}

	return io.WriteString(w.output, sb.String())
}

func (w *TextWriter) writeDiagnostic(sb *strings.Builder, name string, d *model.DiagnosticResult) {
	fmt.Fprintf(sb, "%s recently completed %s assessment on %s\n",
		name, d.AssessmentName, FormatDateTime(d.CompletedAt))
	fmt.Fprintf(sb, "He got %d questions right out of %d. Details by strand given below:\n\n",
		d.Correct, d.Total)

	for _, s := range d.Strands {
		fmt.Fprintf(sb, "%s: %d out of %d correct\n", s.Strand, s.Correct, s.Total)
	}
}

func (w *TextWriter) writeProgress(sb *strings.Builder, name string, p *model.ProgressResult) {
	fmt.Fprintf(sb, "%s has completed %s assessment %d times in total. Date and raw score given below:\n\n",
		name, p.AssessmentName, len(p.Attempts))

	for _, a := range p.Attempts {
		fmt.Fprintf(sb, "Date: %s, Raw Score: %d out of %d\n",
			FormatDate(a.CompletedAt), a.Correct, a.Total)
	}

	fmt.Fprintf(sb, "\n%s got %d more correct in the recent completed assessment than the oldest",
		name, p.Improvement)
}

func (w *TextWriter) writeFeedback(sb *strings.Builder, name string, f *model.FeedbackResult) {
	fmt.Fprintf(sb, "%s recently completed %s assessment on %s\n",
		name, f.AssessmentName, FormatDateTime(f.CompletedAt))
	fmt.Fprintf(sb, "He got %d questions right out of %d. Feedback for wrong answers given below\n\n",
		f.Correct, f.Total)

	for _, wa := range f.WrongAnswers {
		fmt.Fprintf(sb, "Question: %s\n", wa.QuestionID)
		fmt.Fprintf(sb, "Your answer: %s\n", wa.Answer)
		fmt.Fprintf(sb, "Right answer: %s\n", wa.CorrectAnswer)
		fmt.Fprintf(sb, "Hint: %s\n\n", wa.Hint)
	}
}
