// Package main provides the entry point for the studentreport CLI.
//
// studentreport reads students, assessments, questions and student
// responses from JSON files and generates diagnostic, progress and
// feedback reports.
//
// Usage:
//
//	studentreport report --kind diagnostic student1
//	studentreport report --kind 2 --all --format markdown
//	studentreport serve --listen 127.0.0.1:8080
//
// See --help for all available options.
package main

func main() {
	Execute()
}
