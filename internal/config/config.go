package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/nao1215/studentreport/internal/loader"
	"github.com/nao1215/studentreport/internal/report"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "studentreport"

	// DefaultDataDir is the directory holding the four data sources.
	DefaultDataDir = "data"

	// DefaultFormat is the output format used when none is given.
	DefaultFormat = string(report.FormatText)

	// DefaultConcurrency is the number of reports built at once in batch runs.
	DefaultConcurrency = report.DefaultConcurrency

	// DefaultListenAddress is the address the HTTP server binds to.
	// Loopback only; expose it explicitly with --listen.
	DefaultListenAddress = "127.0.0.1:8080"
)

// Config holds all configuration options for studentreport.
// It is populated from defaults, the config file and CLI flags, in that
// order, and passed explicitly to the commands.
type Config struct {
	// DataDir is the directory the source files are resolved against.
	DataDir string

	// StudentsFile, AssessmentsFile, QuestionsFile and ResponsesFile name
	// the sources inside DataDir. Absolute paths are used as is. A
	// students file ending in .xlsx is read as a spreadsheet roster.
	StudentsFile    string
	AssessmentsFile string
	QuestionsFile   string
	ResponsesFile   string

	// Students are the ids to generate reports for.
	Students []string

	// Format is the output format: text, markdown, json or html.
	Format string

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Concurrency is the number of reports built at once for several students.
	Concurrency int

	// SaveHistory records generated reports in the history database.
	SaveHistory bool

	// DBDir is the directory path for storing the SQLite database.
	// Defaults to XDG data directory (~/.local/share/studentreport on Linux).
	DBDir string

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .studentreport in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// ListenAddress is the host:port the HTTP server listens on.
	ListenAddress string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		DataDir:         DefaultDataDir,
		StudentsFile:    loader.DefaultStudentsFile,
		AssessmentsFile: loader.DefaultAssessmentsFile,
		QuestionsFile:   loader.DefaultQuestionsFile,
		ResponsesFile:   loader.DefaultResponsesFile,
		Format:          DefaultFormat,
		Concurrency:     DefaultConcurrency,
		SaveHistory:     true,
		DBDir:           XDGDataDir(),
		ListenAddress:   DefaultListenAddress,
	}
}

// Sources returns the loader sources described by the configuration.
func (c *Config) Sources() loader.Sources {
	return loader.Sources{
		Dir:         c.DataDir,
		Students:    c.StudentsFile,
		Assessments: c.AssessmentsFile,
		Questions:   c.QuestionsFile,
		Responses:   c.ResponsesFile,
	}
}

// XDGDataDir returns the XDG data directory for studentreport.
// On Linux: ~/.local/share/studentreport
// On macOS: ~/Library/Application Support/studentreport
// On Windows: %LOCALAPPDATA%\studentreport
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for studentreport.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration used to generate reports.
// It returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Students) == 0 {
		return ErrNoStudent
	}
	if c.SaveHistory && c.DBDir == "" {
		return ErrEmptyDBDir
	}
	return c.validateCommon()
}

// ValidateServer checks the configuration used to run the HTTP server.
func (c *Config) ValidateServer() error {
	if c.ListenAddress == "" {
		return ErrEmptyListenAddress
	}
	return c.validateCommon()
}

func (c *Config) validateCommon() error {
	if c.DataDir == "" {
		return ErrEmptyDataDir
	}
	if _, err := report.ParseFormat(c.Format); err != nil {
		return ErrInvalidFormat
	}
	if c.Concurrency <= 0 {
		return ErrInvalidConcurrency
	}
	return nil
}
