package report

import (
	"errors"

	"github.com/nao1215/studentreport/internal/model"
)

var (
	// ErrStudentNotFound is returned when the student id resolves to no student.
	ErrStudentNotFound = errors.New("student not found")

	// ErrAssessmentNotFound is returned when a response references an
	// assessment that is not in the data set.
	ErrAssessmentNotFound = errors.New("assessment not found")

	// ErrInvalidTimestamp is returned when a completion timestamp is not in
	// "dd/MM/yyyy HH:mm:ss" form.
	ErrInvalidTimestamp = errors.New("invalid completion timestamp")

	// ErrInvalidReportKind is returned for a kind other than diagnostic,
	// progress or feedback.
	ErrInvalidReportKind = model.ErrInvalidReportKind

	// ErrUnknownFormat is returned when no writer exists for an output format.
	ErrUnknownFormat = errors.New("unknown output format")
)
