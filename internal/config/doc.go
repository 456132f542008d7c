// Package config provides configuration structures and utilities for
// studentreport. It defines where the data sources live, how reports are
// rendered and stored, and how the HTTP server listens.
package config
