// Package logging assembles the structured slog loggers used by the imgtools
// binaries.
//
// Diagnostic output is kept off stdout: the converters and the scanner print a
// fixed progress contract there, while logs go to stderr and, optionally, a
// log file. Two formats are available, a compact key=value console line and
// JSON. Attribute helpers keep field names consistent across packages, and a
// no-op logger is provided for tests and wiring code that cannot fail.
package logging
