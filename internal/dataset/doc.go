// Package dataset holds the read-only snapshot of students, assessments,
// questions and completed responses that reports are generated from.
//
// A Dataset is built once by the loader and never mutated afterwards, so it
// can be shared by any number of goroutines without locking.
package dataset
