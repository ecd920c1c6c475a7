package console

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset = "\x1b[0m"
	ansiRed   = "\x1b[31m"
	ansiGreen = "\x1b[32m"
)

// Marker returns the per-file status marker printed in progress lines: [Y]
// for success, [N] for failure.
func Marker(ok bool, colorize bool) string {
	label, color := "[N]", ansiRed
	if ok {
		label, color = "[Y]", ansiGreen
	}
	if !colorize {
		return label
	}
	return color + label + ansiReset
}

// IsTerminal reports whether w is an interactive terminal. NO_COLOR and
// TERM=dumb disable colour even on a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
