package main

import (
	"strings"
	"testing"
)

// TestHistoryCmd tests that generated reports are recorded and listed.
func TestHistoryCmd(t *testing.T) {
	t.Parallel()

	t.Run("no database yet", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "history", "--config", cfgPath)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "No report history found.") {
			t.Errorf("unexpected output %q", out)
		}
	})

	t.Run("lists and shows recorded runs", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		if _, _, err := execute(t, "report", "--config", cfgPath, "-k", "progress", "student1"); err != nil {
			t.Fatalf("failed to generate report: %v", err)
		}
		if _, _, err := execute(t, "report", "--config", cfgPath, "-k", "diagnostic", "student2"); err != nil {
			t.Fatalf("failed to generate report: %v", err)
		}

		out, _, err := execute(t, "history", "--config", cfgPath, "--list-students")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "student1") || !strings.Contains(out, "student2") {
			t.Errorf("expected both students, got %q", out)
		}

		out, _, err = execute(t, "history", "--config", cfgPath, "student1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Report history for student1 (1 runs)") {
			t.Fatalf("unexpected listing %q", out)
		}

		// The run id is the first column of the only data row.
		var runID string
		for _, line := range strings.Split(out, "\n") {
			fields := strings.Fields(line)
			if len(fields) > 0 && len(fields[0]) == 36 {
				runID = fields[0]
			}
		}
		if runID == "" {
			t.Fatalf("no run id in listing %q", out)
		}

		out, _, err = execute(t, "history", "--config", cfgPath, "--show", runID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != tonyProgress {
			t.Errorf("unexpected body %q", out)
		}
	})

	t.Run("unknown run id", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		if _, _, err := execute(t, "report", "--config", cfgPath, "-k", "1", "student1"); err != nil {
			t.Fatalf("failed to generate report: %v", err)
		}
		if _, _, err := execute(t, "history", "--config", cfgPath, "--show", "nonexistent"); err == nil {
			t.Error("expected error for unknown run id")
		}
	})
}
