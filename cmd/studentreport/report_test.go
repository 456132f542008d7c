package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/studentreport/internal/config"
	"github.com/nao1215/studentreport/internal/model"
	"github.com/nao1215/studentreport/internal/report"
)

// writeTestConfig writes a config file that points at the sample data and
// keeps the history database inside a temporary directory.
func writeTestConfig(t *testing.T) (configPath, dbDir string) {
	t.Helper()

	dataDir, err := filepath.Abs(filepath.Join("..", "..", "data"))
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	dbDir = filepath.Join(dir, "db")
	configPath = filepath.Join(dir, ".studentreport")

	content := "data:\n  dir: " + dataDir + "\nreport:\n  dbDir: " + dbDir + "\n"
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return configPath, dbDir
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

const tonyProgress = "Tony Stark has completed Numeracy assessment 3 times in total. Date and raw score given below:\n\n" +
	"Date: 16th December 2019, Raw Score: 6 out of 16\n" +
	"Date: 16th December 2020, Raw Score: 10 out of 16\n" +
	"Date: 16th December 2021, Raw Score: 15 out of 16\n" +
	"\nTony Stark got 9 more correct in the recent completed assessment than the oldest"

// TestReportCmd tests report generation end to end.
func TestReportCmd(t *testing.T) {
	t.Parallel()

	t.Run("progress report by numeric code", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "2", "student1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != tonyProgress {
			t.Errorf("unexpected report:\n%q\nwant:\n%q", out, tonyProgress)
		}
	})

	t.Run("diagnostic report header", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "--kind", "diagnostic", "student1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := "Tony Stark recently completed Numeracy assessment on 16th December 2021 10:46 AM\n" +
			"He got 15 questions right out of 16. Details by strand given below:\n\n"
		if !strings.HasPrefix(out, want) {
			t.Errorf("unexpected report:\n%q", out)
		}
	})

	t.Run("student without completed assessments", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "feedback", "student3")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "Peter Parker has no completed assessments." {
			t.Errorf("unexpected report %q", out)
		}
	})

	t.Run("json format", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "1", "-f", "json", "student1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !json.Valid([]byte(out)) {
			t.Errorf("expected valid JSON, got %q", out)
		}
	})

	t.Run("writes to output file", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		path := filepath.Join(t.TempDir(), "reports", "progress.txt")
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "progress", "-o", path, "student1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != "" {
			t.Errorf("expected nothing on stdout, got %q", out)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read report file: %v", err)
		}
		if string(content) != tonyProgress {
			t.Errorf("unexpected file content %q", content)
		}
	})

	t.Run("batch after a failed first student has no leading separator", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "1", "nonexistent", "student2", "student1")
		if err == nil {
			t.Fatal("expected error for the unknown student")
		}
		if !strings.HasPrefix(out, "Steve Rogers recently completed") {
			t.Errorf("expected output to start with the first successful report, got %q", out)
		}
		if !strings.Contains(out, "\n\nTony Stark recently completed") {
			t.Errorf("expected reports to be separated by a blank line, got %q", out)
		}
	})

	t.Run("batch json is one array", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "2", "-f", "json", "student1", "student2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got []report.JSONReport
		if err := json.Unmarshal([]byte(out), &got); err != nil {
			t.Fatalf("expected a JSON array, got %v:\n%s", err, out)
		}
		if len(got) != 2 || got[0].Report.Student.ID != "student1" || got[1].Report.Student.ID != "student2" {
			t.Errorf("unexpected reports: %+v", got)
		}
		if got[0].Text != tonyProgress {
			t.Errorf("unexpected text %q", got[0].Text)
		}
	})

	t.Run("all students in source order", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "progress", "--all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		tony := strings.Index(out, "Tony Stark has completed")
		steve := strings.Index(out, "Steve Rogers has completed")
		peter := strings.Index(out, "Peter Parker has no completed assessments.")
		if tony < 0 || steve < 0 || peter < 0 || tony >= steve || steve >= peter {
			t.Errorf("unexpected batch output:\n%s", out)
		}
	})
}

// TestReportCmdErrors tests rejected invocations.
func TestReportCmdErrors(t *testing.T) {
	t.Parallel()

	t.Run("invalid kind code is rejected", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		_, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "4", "student1")
		if !errors.Is(err, model.ErrInvalidReportKind) {
			t.Errorf("expected ErrInvalidReportKind, got %v", err)
		}
	})

	t.Run("unknown student", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		_, _, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "1", "nonexistent")
		if !errors.Is(err, report.ErrStudentNotFound) {
			t.Errorf("expected ErrStudentNotFound, got %v", err)
		}
	})

	t.Run("no student", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		_, _, err := execute(t, "report", "--config", cfgPath, "-k", "1")
		if !errors.Is(err, config.ErrNoStudent) {
			t.Errorf("expected ErrNoStudent, got %v", err)
		}
	})

	t.Run("all combined with ids", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		_, _, err := execute(t, "report", "--config", cfgPath, "-k", "1", "--all", "student1")
		if !errors.Is(err, errAllWithStudents) {
			t.Errorf("expected errAllWithStudents, got %v", err)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		_, _, err := execute(t, "report", "--config", cfgPath, "-k", "1", "-f", "pdf", "student1")
		if !errors.Is(err, config.ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "missing.yaml")
		_, _, err := execute(t, "report", "--config", missing, "-k", "1", "student1")
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("batch reports per-student failures", func(t *testing.T) {
		t.Parallel()

		cfgPath, _ := writeTestConfig(t)
		out, stderr, err := execute(t, "report", "--config", cfgPath, "--no-history", "-k", "2", "student1", "nonexistent")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(out, "Tony Stark has completed") {
			t.Errorf("expected the successful report on stdout, got %q", out)
		}
		if !strings.Contains(stderr, "nonexistent") {
			t.Errorf("expected the failure on stderr, got %q", stderr)
		}
	})
}
