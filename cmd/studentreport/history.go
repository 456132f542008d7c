package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/studentreport/internal/database"
)

// historyDateLayout is how run timestamps are listed.
const historyDateLayout = "2006-01-02 15:04:05"

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [student-id]",
		Short: "List or show previously generated reports",
		Long: `History lists reports recorded by the report command.

Every generated report is stored with a run id, its kind and format, and a
SHA3-256 hash of its body. Runs with the same hash produced identical output.

Examples:
  # List every recorded run, newest first
  studentreport history

  # List runs for one student
  studentreport history student1

  # List students that have recorded runs
  studentreport history --list-students

  # Print the body of a recorded run
  studentreport history --show 3f1c9a52-...`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	cmd.Flags().Bool("list-students", false,
		"List students that have recorded runs")
	cmd.Flags().String("show", "",
		"Print the body of the run with this id")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .studentreport in current or home directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	listStudents, err := cmd.Flags().GetBool("list-students")
	if err != nil {
		return err
	}
	showID, err := cmd.Flags().GetString("show")
	if err != nil {
		return err
	}

	logger := setupLogger(getVerboseFlag(cmd))
	out := cmd.OutOrStdout()

	db, err := database.Open(cfg.DBDir, database.Options{CreateIfNotExists: false, EnableWAL: true})
	if err != nil {
		if errors.Is(err, database.ErrDatabaseNotFound) {
			fmt.Fprintln(out, "No report history found.")
			fmt.Fprintln(out, "\nUse 'studentreport report' to generate a report.")
			return nil
		}
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()
	logger.Debug("history database opened", "path", db.Path())

	ctx := context.Background()

	switch {
	case showID != "":
		return showRun(ctx, out, db, showID)
	case listStudents:
		return listHistoryStudents(ctx, out, db)
	default:
		studentID := ""
		if len(args) > 0 {
			studentID = args[0]
		}
		return listRuns(ctx, out, db, studentID)
	}
}

// showRun prints the body of one run.
func showRun(ctx context.Context, out io.Writer, db *database.HistoryDB, id string) error {
	run, err := db.GetRun(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get run: %w", err)
	}
	if run == nil {
		return fmt.Errorf("run not found: %s", id)
	}
	_, err = io.WriteString(out, run.Body)
	return err
}

// listHistoryStudents prints the students that have recorded runs.
func listHistoryStudents(ctx context.Context, out io.Writer, db *database.HistoryDB) error {
	students, err := db.ListStudents(ctx)
	if err != nil {
		return err
	}
	if len(students) == 0 {
		fmt.Fprintln(out, "No report history found.")
		return nil
	}

	fmt.Fprintf(out, "Students with report history (%d):\n\n", len(students))
	for _, s := range students {
		fmt.Fprintf(out, "  • %s\n", s)
	}
	fmt.Fprintln(out, "\nUse 'studentreport history <student-id>' to see the runs of a student.")
	return nil
}

// listRuns prints runs newest first.
func listRuns(ctx context.Context, out io.Writer, db *database.HistoryDB, studentID string) error {
	runs, err := db.ListRuns(ctx, studentID)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		if studentID != "" {
			fmt.Fprintf(out, "No report history found for %s\n", studentID)
		} else {
			fmt.Fprintln(out, "No report history found.")
		}
		return nil
	}

	if studentID != "" {
		fmt.Fprintf(out, "Report history for %s (%d runs):\n\n", studentID, len(runs))
	} else {
		fmt.Fprintf(out, "Report history (%d runs):\n\n", len(runs))
	}
	fmt.Fprintf(out, "  %-36s  %-19s  %-10s  %-10s  %-8s  %s\n", "ID", "Date", "Student", "Kind", "Format", "Hash")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 104))
	for _, r := range runs {
		fmt.Fprintf(out, "  %-36s  %-19s  %-10s  %-10s  %-8s  %s\n",
			r.ID,
			r.CreatedAt.Local().Format(historyDateLayout),
			r.StudentID,
			r.Kind,
			r.Format,
			r.BodyHash[:12],
		)
	}
	fmt.Fprintln(out, "\nUse 'studentreport history --show <id>' to print a report.")
	return nil
}
