package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nao1215/studentreport/internal/config"
	"github.com/nao1215/studentreport/internal/database"
	"github.com/nao1215/studentreport/internal/dataset"
	"github.com/nao1215/studentreport/internal/loader"
	"github.com/nao1215/studentreport/internal/model"
	"github.com/nao1215/studentreport/internal/report"
)

// errAllWithStudents is returned when --all is combined with student ids.
var errAllWithStudents = errors.New("--all cannot be combined with student ids")

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [student-id...]",
		Short: "Generate a report for one or more students",
		Long: `Report generates a diagnostic, progress or feedback report.

The report kind is given by name or by number:
  1 / diagnostic  strand breakdown of the most recent completed assessment
  2 / progress    raw score of every completed assessment, oldest first
  3 / feedback    wrong answers of the most recent assessment with hints

Several text, markdown or html reports are separated by a blank line.
Several json reports are written as one JSON array.

Examples:
  # Diagnostic report for one student
  studentreport report --kind diagnostic student1

  # Progress report using the numeric code
  studentreport report -k 2 student1

  # Feedback reports for every student as Markdown
  studentreport report -k feedback --all -f markdown -o reports/feedback.md

  # Read data from another directory without recording history
  studentreport report -k 1 -d ./fixtures --no-history student1`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	cmd.Flags().StringP("kind", "k", "",
		"Report kind: 1/diagnostic, 2/progress or 3/feedback (required)")
	cmd.Flags().StringP("data", "d", config.DefaultDataDir,
		"Directory containing the data files")
	cmd.Flags().StringP("format", "f", config.DefaultFormat,
		"Output format: text, markdown, json or html")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("all", false,
		"Generate the report for every student")
	cmd.Flags().IntP("concurrency", "c", config.DefaultConcurrency,
		"Number of reports generated at once")
	cmd.Flags().Bool("no-history", false,
		"Do not record generated reports in the history database")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .studentreport in current or home directory)")

	_ = cmd.MarkFlagRequired("kind")

	return cmd
}

// reportOptions are the report command inputs that are not part of Config.
type reportOptions struct {
	kind model.ReportKind
	all  bool
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, opts, err := buildReportConfig(cmd, args)
	if err != nil {
		return err
	}

	if !opts.all {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	logger := setupLogger(cfg.Verbose)
	ctx, cancel := signalContext(logger)
	defer cancel()

	return runReport(ctx, cmd, cfg, opts, logger)
}

// buildReportConfig creates a Config from the config file and flags.
// Flags override the config file only when set explicitly.
func buildReportConfig(cmd *cobra.Command, args []string) (*config.Config, reportOptions, error) {
	var opts reportOptions

	kindFlag, err := cmd.Flags().GetString("kind")
	if err != nil {
		return nil, opts, err
	}
	// Reject bad kinds before anything is loaded.
	opts.kind, err = model.ParseReportKind(kindFlag)
	if err != nil {
		return nil, opts, err
	}

	opts.all, err = cmd.Flags().GetBool("all")
	if err != nil {
		return nil, opts, err
	}
	if opts.all && len(args) > 0 {
		return nil, opts, errAllWithStudents
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, opts, err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, opts, err
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		if cfg.DataDir, err = flags.GetString("data"); err != nil {
			return nil, opts, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, opts, err
		}
	}
	if flags.Changed("concurrency") {
		if cfg.Concurrency, err = flags.GetInt("concurrency"); err != nil {
			return nil, opts, err
		}
	}
	noHistory, err := flags.GetBool("no-history")
	if err != nil {
		return nil, opts, err
	}
	if noHistory {
		cfg.SaveHistory = false
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return nil, opts, err
	}

	cfg.Verbose = getVerboseFlag(cmd)
	cfg.Students = args

	return cfg, opts, nil
}

// runReport loads the data, generates the reports and writes them out.
func runReport(ctx context.Context, cmd *cobra.Command, cfg *config.Config, opts reportOptions, logger *slog.Logger) error {
	data, err := loader.Load(ctx, cfg.Sources(), logger)
	if err != nil {
		return err
	}

	if opts.all {
		cfg.Students = studentIDs(data)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration error: %w", err)
		}
	}

	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	var db *database.HistoryDB
	if cfg.SaveHistory {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()
		logger.Debug("history database opened", "dir", cfg.DBDir)
	}

	output, closeOutput, err := openOutput(cmd, cfg.ReportFile)
	if err != nil {
		return err
	}
	defer closeOutput()

	generator := report.NewGenerator(data, report.WithLogger(logger))

	// One student is built directly so its error is returned as is.
	if len(cfg.Students) == 1 {
		r, err := generator.Build(cfg.Students[0], opts.kind)
		if err != nil {
			return err
		}
		body, err := renderReport(format, r)
		if err != nil {
			return err
		}
		if _, err := output.Write(body); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		saveRun(ctx, db, format, r, body, logger)
		return nil
	}

	batch := report.NewBatchGenerator(generator,
		report.WithConcurrency(cfg.Concurrency),
		report.WithBatchLogger(logger),
	)
	results, err := batch.Process(ctx, cfg.Students, opts.kind)
	if err != nil {
		return err
	}

	var (
		failed  int
		written bool
		// JSON reports are collected into one array.
		collected []*model.Report
	)
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "Report error for %s: %v\n", res.StudentID, res.Err)
			continue
		}

		body, err := renderReport(format, res.Report)
		if err != nil {
			return err
		}
		saveRun(ctx, db, format, res.Report, body, logger)

		if format == report.FormatJSON {
			collected = append(collected, res.Report)
			continue
		}
		if written {
			if _, err := io.WriteString(output, "\n\n"); err != nil {
				return err
			}
		}
		if _, err := output.Write(body); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		written = true
	}

	if format == report.FormatJSON {
		if _, err := report.NewJSONWriter(output, report.WithPrettyPrint()).WriteAll(collected); err != nil {
			return fmt.Errorf("failed to write reports: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reports failed", failed, len(results))
	}
	return nil
}

// renderReport renders r in format.
func renderReport(format report.Format, r *model.Report) ([]byte, error) {
	var buf bytes.Buffer
	w, err := report.NewWriter(format, &buf)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(r); err != nil {
		return nil, fmt.Errorf("failed to render report for %q: %w", r.Student.ID, err)
	}
	return buf.Bytes(), nil
}

// saveRun records a rendered report in db. It does nothing when db is nil.
// A failed insert is logged; the report itself was already delivered.
func saveRun(ctx context.Context, db *database.HistoryDB, format report.Format, r *model.Report, body []byte, logger *slog.Logger) {
	if db == nil {
		return
	}
	run := &database.Run{
		StudentID: r.Student.ID,
		Kind:      r.Kind,
		Format:    string(format),
		Body:      string(body),
	}
	if err := db.SaveRun(ctx, run); err != nil {
		logger.Error("failed to save report run", "student", r.Student.ID, "error", err)
		return
	}
	logger.Debug("report run saved", "student", r.Student.ID, "run", run.ID)
}

// openOutput returns the report destination: path when set, otherwise the
// command's stdout.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func(), error) {
	if path == "" {
		return cmd.OutOrStdout(), func() {}, nil
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Reports carry student personal data.
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600) //nolint:gosec // User-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// studentIDs returns the ids of every student in data, in source order.
func studentIDs(data *dataset.Dataset) []string {
	students := data.Students()
	ids := make([]string, 0, len(students))
	for _, s := range students {
		ids = append(ids, s.ID)
	}
	return ids
}
