// Package console holds the terminal rendering helpers shared by the imgtools
// binaries: rounded go-pretty tables, pass/fail markers, and terminal
// detection for deciding when ANSI colour is safe.
package console
