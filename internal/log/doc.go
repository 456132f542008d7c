// Package log provides logging with automatic redaction of student personal
// data, built on top of the standard slog package.
//
// The RedactingHandler masks attributes whose key names personal data
// (first and last names, email addresses, dates of birth, phone numbers) and
// any string value that looks like an email address. Credentials such as
// passwords and tokens are masked as well. Student ids, assessment names and
// scores are left intact so logs stay useful.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	logger.Debug("report built",
//	    "student", "student1",        // kept
//	    "first_name", "Tony",         // logged as ***REDACTED***
//	)
//	slog.SetDefault(logger)
package log
