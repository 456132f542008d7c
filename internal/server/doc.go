// Package server exposes report generation over HTTP.
//
// The server shares one loaded data set across requests. Reports are
// rendered with the same writers the CLI uses, selected by the format
// query parameter:
//
//	GET /api/ping
//	GET /api/students
//	GET /api/students/:id/reports/:kind?format=text|json|markdown|html
//
// Errors are answered as {"error": "..."} with 404 for unknown students,
// 400 for invalid report kinds or formats and 500 otherwise.
package server
