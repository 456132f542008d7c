package loader

import "errors"

var (
	// ErrSourceNotFound is returned when a data source file does not exist.
	ErrSourceNotFound = errors.New("data source not found")

	// ErrSchemaViolation is returned when a JSON source does not match its schema.
	ErrSchemaViolation = errors.New("data source does not match schema")

	// ErrInvalidRoster is returned when a roster spreadsheet has no usable sheet.
	ErrInvalidRoster = errors.New("invalid roster spreadsheet")
)
