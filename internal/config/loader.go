package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".studentreport"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the .studentreport configuration file.
type File struct {
	Data   DataSection   `yaml:"data,omitempty"`
	Report ReportSection `yaml:"report,omitempty"`
	Server ServerSection `yaml:"server,omitempty"`
}

// DataSection locates the data sources.
type DataSection struct {
	Dir         string `yaml:"dir,omitempty"`
	Students    string `yaml:"students,omitempty"`
	Assessments string `yaml:"assessments,omitempty"`
	Questions   string `yaml:"questions,omitempty"`
	Responses   string `yaml:"responses,omitempty"`
}

// ReportSection controls report rendering and storage.
type ReportSection struct {
	Format      string `yaml:"format,omitempty"`
	Concurrency int    `yaml:"concurrency,omitempty"`

	// History is a pointer so that an explicit false can be told apart
	// from an absent key.
	History *bool  `yaml:"history,omitempty"`
	DBDir   string `yaml:"dbDir,omitempty"`
}

// ServerSection configures the HTTP server.
type ServerSection struct {
	Listen string `yaml:"listen,omitempty"`
}

// LoadConfigFile loads a YAML configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// Apply copies every value set in the file onto cfg.
func (cf *File) Apply(cfg *Config) {
	setString(&cfg.DataDir, cf.Data.Dir)
	setString(&cfg.StudentsFile, cf.Data.Students)
	setString(&cfg.AssessmentsFile, cf.Data.Assessments)
	setString(&cfg.QuestionsFile, cf.Data.Questions)
	setString(&cfg.ResponsesFile, cf.Data.Responses)

	setString(&cfg.Format, cf.Report.Format)
	if cf.Report.Concurrency != 0 {
		cfg.Concurrency = cf.Report.Concurrency
	}
	if cf.Report.History != nil {
		cfg.SaveHistory = *cf.Report.History
	}
	setString(&cfg.DBDir, cf.Report.DBDir)

	setString(&cfg.ListenAddress, cf.Server.Listen)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .studentreport in the current directory
// 3. Look for .studentreport in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
