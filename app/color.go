package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiMatch = "\033[01;31m"
	ansiReset = "\033[0m"
)

func colorize(s string) string {
	return ansiMatch + s + ansiReset
}

// useColor resolves the --color mode. "auto" colors only when out is a
// terminal.
func useColor(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
