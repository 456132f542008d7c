package model

import (
	"errors"
	"testing"
)

// TestParseReportKind tests conversion of user input into report kinds.
func TestParseReportKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    ReportKind
		wantErr bool
	}{
		{name: "code 1 is diagnostic", input: "1", want: KindDiagnostic},
		{name: "code 2 is progress", input: "2", want: KindProgress},
		{name: "code 3 is feedback", input: "3", want: KindFeedback},
		{name: "name diagnostic", input: "diagnostic", want: KindDiagnostic},
		{name: "name is case-insensitive", input: "Progress", want: KindProgress},
		{name: "surrounding spaces are trimmed", input: "  feedback\n", want: KindFeedback},
		{name: "code 4 is rejected", input: "4", wantErr: true},
		{name: "code 0 is rejected", input: "0", wantErr: true},
		{name: "empty input is rejected", input: "", wantErr: true},
		{name: "unknown name is rejected", input: "summary", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseReportKind(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidReportKind) {
					t.Errorf("expected ErrInvalidReportKind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseReportKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestReportKindValid tests the Valid method.
func TestReportKindValid(t *testing.T) {
	t.Parallel()

	for _, k := range AllReportKinds() {
		if !k.Valid() {
			t.Errorf("expected %q to be valid", k)
		}
	}
	if ReportKind("summary").Valid() {
		t.Error("expected unknown kind to be invalid")
	}
	if ReportKind("").Valid() {
		t.Error("expected empty kind to be invalid")
	}
}
