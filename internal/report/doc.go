// Package report computes student reports and renders them.
//
// Generator turns a student id and a report kind into a model.Report by
// joining completed responses against question metadata. Writers render a
// model.Report in one of several formats:
//   - TextWriter: the canonical narrative text
//   - MarkdownWriter: GitHub Flavored Markdown with tables and a pie chart
//   - JSONWriter: structured JSON for tool integration
//   - HTMLWriter: a standalone HTML page
//
// BatchGenerator builds reports for many students concurrently.
package report
