// Package loader reads the student, assessment, question and response
// sources from disk and builds a dataset.Dataset.
//
// Every JSON source is validated against an embedded JSON Schema before it
// is decoded. Raw responses are normalized at this boundary: the nested
// student reference is flattened and incomplete attempts are dropped. The
// student roster may also be an .xlsx spreadsheet.
package loader
