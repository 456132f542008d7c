// Package model defines the data structures shared by the loader, the
// report generator and the writers.
//
// The entity types mirror the input files:
//   - Student: a learner, keyed by id
//   - Assessment: a named, ordered list of question ids
//   - Question: a multiple-choice item with a strand, options, a key and a hint
//   - AssessmentResponse: one attempt by a student, with its answers
//
// The result types (Report and its DiagnosticResult, ProgressResult and
// FeedbackResult) hold computed reports independent of any output format.
//
// Models are kept in their own package so that loader, dataset and report
// can share them without import cycles. All types serialize to JSON.
package model
