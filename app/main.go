package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/funkybooboo/mygrep/pkg/regex"
)

// Following the grep tool convention.
const (
	exitMatched    = 0
	exitNotMatched = 1
	exitError      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stdout, stderr)
	var exit *exitRequest
	if errors.As(err, &exit) {
		if exit.code == 0 {
			return exitMatched
		}
		return exitError
	}
	if err != nil {
		fmt.Fprintf(stderr, "mygrep: %v\n", err)
		return exitError
	}

	lg := newLogger(stderr, opts.LogLevel)
	lg.log("run", "debug", "Starting program...")

	re, err := regex.Parse(opts.Pattern)
	if err != nil {
		lg.log("run", "error", fmt.Sprintf("Pattern compilation failed: %v", err))
		return exitError
	}
	lg.log("run", "debug", fmt.Sprintf("Compiled %q into %d node(s), %d group(s)", re.String(), len(re.Nodes()), re.NumGroups()))

	s := &searcher{
		re:           re,
		out:          stdout,
		lg:           lg,
		onlyMatching: opts.OnlyMatching,
		color:        useColor(opts.Color, stdout),
	}

	foundAny := false
	failed := false
	multi := opts.Recursive || len(opts.Paths) > 1

	scanFile := func(path string, addPrefix bool) {
		f, err := os.Open(path)
		if err != nil {
			lg.log("run", "error", fmt.Sprintf("Failed to open file %q: %v", path, err))
			failed = true
			return
		}
		defer f.Close()
		found, err := s.scanAndPrint(path, f, addPrefix)
		if err != nil {
			lg.log("run", "error", err.Error())
			failed = true
		}
		foundAny = foundAny || found
	}

	switch {
	case len(opts.Paths) == 0:
		// No paths: read stdin
		found, err := s.scanAndPrint("stdin", stdin, false)
		if err != nil {
			lg.log("run", "error", err.Error())
			return exitError
		}
		foundAny = found

	case opts.Recursive:
		for _, root := range opts.Paths {
			err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
				if err != nil {
					lg.log("run", "warn", fmt.Sprintf("Skipping %s: %v", path, err))
					return nil
				}
				if d.IsDir() {
					return nil
				}
				scanFile(path, true)
				return nil
			})
			if err != nil {
				lg.log("run", "error", fmt.Sprintf("Error walking %s: %v", root, err))
				failed = true
			}
		}

	default:
		for _, path := range opts.Paths {
			scanFile(path, multi)
		}
	}

	switch {
	case failed:
		return exitError
	case foundAny:
		return exitMatched
	default:
		return exitNotMatched
	}
}
