package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/nao1215/studentreport/internal/config"
	"github.com/nao1215/studentreport/internal/loader"
	applog "github.com/nao1215/studentreport/internal/log"
	"github.com/nao1215/studentreport/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports over HTTP",
		Long: `Serve loads the data once and answers report requests over HTTP.

Endpoints:
  GET /api/ping
  GET /api/students
  GET /api/students/:id/reports/:kind?format=text|json|markdown|html

Examples:
  # Serve on the default loopback address
  studentreport serve

  # Serve another data directory on all interfaces
  studentreport serve -d ./fixtures -l 0.0.0.0:8080`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	cmd.Flags().StringP("listen", "l", config.DefaultListenAddress,
		"Address to listen on")
	cmd.Flags().StringP("data", "d", config.DefaultDataDir,
		"Directory containing the data files")
	cmd.Flags().Bool("json-log", false,
		"Write logs as JSON lines")
	cmd.Flags().String("config", "",
		"Configuration file path (default: .studentreport in current or home directory)")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("listen") {
		if cfg.ListenAddress, err = cmd.Flags().GetString("listen"); err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("data") {
		if cfg.DataDir, err = cmd.Flags().GetString("data"); err != nil {
			return err
		}
	}
	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.ValidateServer(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	jsonLog, err := cmd.Flags().GetBool("json-log")
	if err != nil {
		return err
	}
	logger := setupLogger(cfg.Verbose)
	if jsonLog {
		logger = applog.NewJSONLogger(os.Stderr, cfg.Verbose)
		slog.SetDefault(logger)
	}
	ctx, cancel := signalContext(logger)
	defer cancel()

	data, err := loader.Load(ctx, cfg.Sources(), logger)
	if err != nil {
		return err
	}

	if !cfg.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving reports on http://%s\n", cfg.ListenAddress)
	return server.New(data, server.WithLogger(logger)).Run(ctx, cfg.ListenAddress)
}
