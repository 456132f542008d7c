package model

import "testing"

// TestStudentFullName tests the name used in report sentences.
func TestStudentFullName(t *testing.T) {
	t.Parallel()

	s := Student{ID: "student1", FirstName: "Tony", LastName: "Stark"}
	if got := s.FullName(); got != "Tony Stark" {
		t.Errorf("got %q, want %q", got, "Tony Stark")
	}
}

// TestQuestionIsCorrect tests exact answer matching.
func TestQuestionIsCorrect(t *testing.T) {
	t.Parallel()

	q := Question{ID: "numeracy1", Key: "option3"}

	tests := []struct {
		answer string
		want   bool
	}{
		{"option3", true},
		{"option1", false},
		{"Option3", false},
		{"option3 ", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			t.Parallel()
			if got := q.IsCorrect(tt.answer); got != tt.want {
				t.Errorf("IsCorrect(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

// TestQuestionKeyOption tests lookup of the option matching the key.
func TestQuestionKeyOption(t *testing.T) {
	t.Parallel()

	t.Run("finds option matching key", func(t *testing.T) {
		t.Parallel()

		q := Question{
			Key: "option2",
			Options: []Option{
				{ID: "option1", Label: "A", Value: "1"},
				{ID: "option2", Label: "B", Value: "2"},
			},
		}
		opt, ok := q.KeyOption()
		if !ok {
			t.Fatal("expected key option to be found")
		}
		if opt.Label != "B" {
			t.Errorf("got label %q, want %q", opt.Label, "B")
		}
	})

	t.Run("reports missing option", func(t *testing.T) {
		t.Parallel()

		q := Question{Key: "option9", Options: []Option{{ID: "option1"}}}
		if _, ok := q.KeyOption(); ok {
			t.Error("expected no key option")
		}
	})
}

// TestAssessmentResponseIsCompleted tests the completion check.
func TestAssessmentResponseIsCompleted(t *testing.T) {
	t.Parallel()

	if (AssessmentResponse{Completed: "16/12/2021 10:46:00"}).IsCompleted() != true {
		t.Error("expected response with timestamp to be completed")
	}
	if (AssessmentResponse{}).IsCompleted() {
		t.Error("expected response without timestamp to be incomplete")
	}
}
