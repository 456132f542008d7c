package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and Config.ValidateServer().
var (
	// ErrNoStudent is returned when no student id is given and --all is not set.
	ErrNoStudent = errors.New("no student specified: provide a student id or use --all")

	// ErrEmptyDataDir is returned when the data directory is empty.
	ErrEmptyDataDir = errors.New("data directory must not be empty")

	// ErrInvalidFormat is returned for an unknown output format.
	ErrInvalidFormat = errors.New("invalid format: must be text, markdown, json or html")

	// ErrInvalidConcurrency is returned when the concurrency is not positive.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be positive")

	// ErrEmptyDBDir is returned when history is enabled without a database directory.
	ErrEmptyDBDir = errors.New("database directory must not be empty when history is enabled")

	// ErrEmptyListenAddress is returned when the server has no listen address.
	ErrEmptyListenAddress = errors.New("listen address must not be empty")
)
