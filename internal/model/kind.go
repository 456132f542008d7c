package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidReportKind is returned when a report kind is not one of
// diagnostic, progress or feedback.
var ErrInvalidReportKind = errors.New("invalid report type")

// ReportKind selects which report variant is generated.
type ReportKind string

const (
	// KindDiagnostic summarizes the latest attempt by strand.
	KindDiagnostic ReportKind = "diagnostic"

	// KindProgress lists every completed attempt with its raw score.
	KindProgress ReportKind = "progress"

	// KindFeedback lists wrong answers of the latest attempt with hints.
	KindFeedback ReportKind = "feedback"
)

// kindCodes maps the numeric menu codes to report kinds.
var kindCodes = map[string]ReportKind{
	"1": KindDiagnostic,
	"2": KindProgress,
	"3": KindFeedback,
}

// AllReportKinds returns the report kinds in menu order.
func AllReportKinds() []ReportKind {
	return []ReportKind{KindDiagnostic, KindProgress, KindFeedback}
}

// Valid reports whether k is one of the known report kinds.
func (k ReportKind) Valid() bool {
	switch k {
	case KindDiagnostic, KindProgress, KindFeedback:
		return true
	default:
		return false
	}
}

// String returns the report kind name.
func (k ReportKind) String() string {
	return string(k)
}

// ParseReportKind converts user input into a ReportKind.
// It accepts the kind names (case-insensitive) and the menu codes
// "1" (diagnostic), "2" (progress) and "3" (feedback).
func ParseReportKind(s string) (ReportKind, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if k, ok := kindCodes[v]; ok {
		return k, nil
	}
	if k := ReportKind(v); k.Valid() {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q (use 1/diagnostic, 2/progress or 3/feedback)", ErrInvalidReportKind, s)
}
