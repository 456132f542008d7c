package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/studentreport/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// This format is designed for sharing with teachers and parents.
type MarkdownWriter struct {
	baseWriter

	// title cases fixed labels only. Assessment names are printed as is.
	title cases.Caser
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)

	switch {
	case report.NoCompletedAssessments:
		md.Note(report.Student.FullName() + " has no completed assessments.")
		md.PlainText("")
	case report.Diagnostic != nil:
		w.writeDiagnostic(md, report.Diagnostic)
	case report.Progress != nil:
		w.writeProgress(md, report.Student, report.Progress)
	case report.Feedback != nil:
		w.writeFeedback(md, report.Feedback)
	}

	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and the student table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1(w.title.String(report.Kind.String()) + " Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Student", report.Student.FullName()},
			{"Student ID", "`" + report.Student.ID + "`"},
		},
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeDiagnostic(md *markdown.Markdown, d *model.DiagnosticResult) {
	md.H2(d.AssessmentName + " Assessment")
	md.PlainText("")
	md.PlainTextf("Completed on %s. %d questions right out of %d.",
		FormatDateTime(d.CompletedAt), d.Correct, d.Total)
	md.PlainText("")

	md.H2("Results By Strand")
	md.PlainText("")

	rows := make([][]string, 0, len(d.Strands)+1)
	for _, s := range d.Strands {
		rows = append(rows, []string{s.Strand, strconv.Itoa(s.Correct), strconv.Itoa(s.Total)})
	}
	rows = append(rows, []string{"**Total**", "**" + strconv.Itoa(d.Correct) + "**", "**" + strconv.Itoa(d.Total) + "**"})
	md.Table(markdown.TableSet{
		Header: []string{"Strand", "Correct", "Total"},
		Rows:   rows,
	})
	md.PlainText("")

	if d.Correct > 0 {
		w.writePieChart(md, d.Strands)
	}
	w.writeScoreAlert(md, d.Correct, d.Total)
}

// writePieChart writes a mermaid pie chart of correct answers by strand.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, strands []model.StrandResult) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Correct Answers by Strand"),
		piechart.WithShowData(true),
	)

	for _, s := range strands {
		if s.Correct > 0 {
			chart.LabelAndIntValue(s.Strand, uint64(s.Correct))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeScoreAlert writes an alert matching the share of correct answers.
func (w *MarkdownWriter) writeScoreAlert(md *markdown.Markdown, correct, total int) {
	if total == 0 {
		return
	}
	switch pct := correct * 100 / total; {
	case pct == 100:
		md.Tip("Every question answered correctly.")
	case pct >= 75:
		md.Note("Strong result. Review the few questions answered incorrectly.")
	case pct >= 50:
		md.Importantf("%d of %d questions answered incorrectly.", total-correct, total)
	default:
		md.Warningf("Fewer than half of the questions answered correctly (%d of %d).", correct, total)
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeProgress(md *markdown.Markdown, student model.Student, p *model.ProgressResult) {
	md.H2(p.AssessmentName + " Attempts")
	md.PlainText("")
	md.PlainTextf("Completed %d times in total.", len(p.Attempts))
	md.PlainText("")

	rows := make([][]string, 0, len(p.Attempts))
	for _, a := range p.Attempts {
		rows = append(rows, []string{
			FormatDate(a.CompletedAt),
			strconv.Itoa(a.Correct) + " / " + strconv.Itoa(a.Total),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Date", "Raw Score"},
		Rows:   rows,
	})
	md.PlainText("")

	switch {
	case p.Improvement > 0:
		md.Tip(student.FullName() + " got " + strconv.Itoa(p.Improvement) +
			" more correct in the recent completed assessment than the oldest.")
	case p.Improvement < 0:
		md.Cautionf("%s got %d fewer correct in the recent completed assessment than the oldest.",
			student.FullName(), -p.Improvement)
	default:
		md.Note("No change between the oldest and the recent completed assessment.")
	}
	md.PlainText("")
}

func (w *MarkdownWriter) writeFeedback(md *markdown.Markdown, f *model.FeedbackResult) {
	md.H2(f.AssessmentName + " Feedback")
	md.PlainText("")
	md.PlainTextf("Completed on %s. %d questions right out of %d.",
		FormatDateTime(f.CompletedAt), f.Correct, f.Total)
	md.PlainText("")

	if len(f.WrongAnswers) == 0 {
		md.Tip("No wrong answers.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(f.WrongAnswers))
	for _, wa := range f.WrongAnswers {
		rows = append(rows, []string{"`" + wa.QuestionID + "`", wa.Answer, wa.CorrectAnswer})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Question", "Your Answer", "Right Answer"},
		Rows:   rows,
	})
	md.PlainText("")

	for _, wa := range f.WrongAnswers {
		md.Details("Hint for "+wa.QuestionID, wa.Hint)
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by studentreport*")
}
