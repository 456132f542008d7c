// Package database provides SQLite-based storage of generated reports.
//
// HistoryDB keeps one row per report run: which student, which kind, which
// format, the rendered body and a SHA3-256 hash of it. The history command
// lists and shows stored runs, and the hash tells whether two runs produced
// the same output.
//
// The database is a single file opened through modernc.org/sqlite, which
// needs no cgo.
package database
