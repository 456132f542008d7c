package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for studentreport.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "studentreport",
		Short: "Generate assessment reports for students",
		Long: `studentreport generates reports from student assessment data.

Three report kinds are available:
  1 / diagnostic  strand breakdown of the most recent completed assessment
  2 / progress    raw score of every completed assessment, oldest first
  3 / feedback    wrong answers of the most recent assessment with hints

Data is read from students.json, assessments.json, questions.json and
student-responses.json in the data directory (default: ./data).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewReportCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
