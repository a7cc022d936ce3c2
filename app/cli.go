package main

import (
	"fmt"
	"io"

	"github.com/alecthomas/kong"
)

type arguments struct {
	Pattern      string   `short:"E" required:"" placeholder:"PATTERN" help:"Regular expression to search for."`
	Recursive    bool     `short:"r" help:"Search directories recursively."`
	OnlyMatching bool     `short:"o" help:"Print only the matched part of each matching line."`
	Color        string   `enum:"auto,always,never" default:"never" help:"Highlight matches (${enum})."`
	LogLevel     string   `enum:"debug,info,warn,error" default:"warn" env:"MYGREP_LOG_LEVEL" help:"Diagnostic log level (${enum})."`
	Paths        []string `arg:"" optional:"" help:"Files or directories to search. Standard input is read when none are given."`
}

// exitRequest is returned when kong asks to exit, e.g. after --help.
type exitRequest struct{ code int }

func (e *exitRequest) Error() string { return fmt.Sprintf("exit requested with code %d", e.code) }

// parseArgs handles [-r] [-o] -E <pattern> [paths...]
func parseArgs(args []string, stdout, stderr io.Writer) (*arguments, error) {
	var opts arguments
	exitCode := -1
	parser, err := kong.New(&opts,
		kong.Name("mygrep"),
		kong.Description("Print lines matching a pattern."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		return nil, err
	}
	_, err = parser.Parse(attachPattern(args))
	if exitCode >= 0 {
		return nil, &exitRequest{code: exitCode}
	}
	if err != nil {
		return nil, err
	}
	return &opts, nil
}

// attachPattern rewrites "-E <pattern>" into "--pattern=<pattern>" so that
// patterns starting with '-' are not taken for flags.
func attachPattern(args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--":
			return append(out, args[i:]...)
		case args[i] == "-E" && i+1 < len(args):
			out = append(out, "--pattern="+args[i+1])
			i++
		default:
			out = append(out, args[i])
		}
	}
	return out
}
