package main

import (
	"os"

	"imgtools/internal/cli"
)

func main() {
	os.Exit(cli.Execute(newRootCommand(), os.Stdout, os.Stderr))
}
