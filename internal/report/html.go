package report

import (
	"bytes"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/studentreport/internal/model"
)

// HTMLWriter renders a report as a standalone HTML page.
// Text content is escaped by the renderer.
type HTMLWriter struct {
	baseWriter

	title cases.Caser
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer) *HTMLWriter {
	return &HTMLWriter{
		baseWriter: newBaseWriter(output),
		title:      cases.Title(language.English),
	}
}

// Write outputs the report as an HTML document.
func (w *HTMLWriter) Write(report *model.Report) (int, error) {
	heading := w.title.String(report.Kind.String()) + " Report: " + report.Student.FullName()

	body := element(atom.Body, element(atom.H1, text(heading)))
	switch {
	case report.NoCompletedAssessments:
		body.AppendChild(element(atom.P, text(report.Student.FullName()+" has no completed assessments.")))
	case report.Diagnostic != nil:
		w.diagnostic(body, report.Diagnostic)
	case report.Progress != nil:
		w.progress(body, report.Student, report.Progress)
	case report.Feedback != nil:
		w.feedback(body, report.Feedback)
	}

	meta := element(atom.Meta)
	meta.Attr = []html.Attribute{{Key: "charset", Val: "utf-8"}}
	head := element(atom.Head, meta, element(atom.Title, text(heading)))

	root := element(atom.Html, head, body)
	root.Attr = []html.Attribute{{Key: "lang", Val: "en"}}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return 0, err
	}
	buf.WriteByte('\n')
	return w.output.Write(buf.Bytes())
}

func (w *HTMLWriter) diagnostic(body *html.Node, d *model.DiagnosticResult) {
	body.AppendChild(element(atom.H2, text(d.AssessmentName)))
	body.AppendChild(element(atom.P, text("Completed on "+FormatDateTime(d.CompletedAt)+". "+
		strconv.Itoa(d.Correct)+" questions right out of "+strconv.Itoa(d.Total)+".")))

	rows := make([][]string, 0, len(d.Strands))
	for _, s := range d.Strands {
		rows = append(rows, []string{s.Strand, strconv.Itoa(s.Correct), strconv.Itoa(s.Total)})
	}
	body.AppendChild(table([]string{"Strand", "Correct", "Total"}, rows))
}

func (w *HTMLWriter) progress(body *html.Node, student model.Student, p *model.ProgressResult) {
	body.AppendChild(element(atom.H2, text(p.AssessmentName)))
	body.AppendChild(element(atom.P, text("Completed "+strconv.Itoa(len(p.Attempts))+" times in total.")))

	rows := make([][]string, 0, len(p.Attempts))
	for _, a := range p.Attempts {
		rows = append(rows, []string{FormatDate(a.CompletedAt), strconv.Itoa(a.Correct), strconv.Itoa(a.Total)})
	}
	body.AppendChild(table([]string{"Date", "Correct", "Total"}, rows))
	body.AppendChild(element(atom.P, text(student.FullName()+" got "+strconv.Itoa(p.Improvement)+
		" more correct in the recent completed assessment than the oldest")))
}

func (w *HTMLWriter) feedback(body *html.Node, f *model.FeedbackResult) {
	body.AppendChild(element(atom.H2, text(f.AssessmentName)))
	body.AppendChild(element(atom.P, text("Completed on "+FormatDateTime(f.CompletedAt)+". "+
		strconv.Itoa(f.Correct)+" questions right out of "+strconv.Itoa(f.Total)+".")))

	if len(f.WrongAnswers) == 0 {
		body.AppendChild(element(atom.P, text("No wrong answers.")))
		return
	}

	dl := element(atom.Dl)
	for _, wa := range f.WrongAnswers {
		dl.AppendChild(element(atom.Dt, text(wa.QuestionID)))
		dl.AppendChild(element(atom.Dd, text("Your answer: "+wa.Answer)))
		dl.AppendChild(element(atom.Dd, text("Right answer: "+wa.CorrectAnswer)))
		dl.AppendChild(element(atom.Dd, text("Hint: "+wa.Hint)))
	}
	body.AppendChild(dl)
}

// table builds a table element with a header row.
func table(header []string, rows [][]string) *html.Node {
	tr := element(atom.Tr)
	for _, h := range header {
		tr.AppendChild(element(atom.Th, text(h)))
	}
	t := element(atom.Table, element(atom.Thead, tr))

	tbody := element(atom.Tbody)
	for _, row := range rows {
		r := element(atom.Tr)
		for _, cell := range row {
			r.AppendChild(element(atom.Td, text(cell)))
		}
		tbody.AppendChild(r)
	}
	t.AppendChild(tbody)
	return t
}

func element(a atom.Atom, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
