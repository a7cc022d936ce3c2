package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/funkybooboo/mygrep/pkg/regex"
)

var logLevels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type logger struct {
	out   io.Writer
	level int
}

func newLogger(out io.Writer, level string) *logger {
	lvl, ok := logLevels[level]
	if !ok {
		lvl = logLevels["warn"]
	}
	return &logger{out: out, level: lvl}
}

func (l *logger) log(funcName, level, message string) {
	if logLevels[level] >= l.level {
		fmt.Fprintf(l.out, "[%s] [%s] %s\n",
			funcName, strings.ToUpper(level), message)
	}
}

type searcher struct {
	re           *regex.Regexp
	out          io.Writer
	lg           *logger
	onlyMatching bool
	color        bool
}

// scanAndPrint reads from reader line by line, applies the pattern,
// prints matching lines (with optional filename prefix), and
// returns true if any lines matched.
func (s *searcher) scanAndPrint(prefix string, reader io.Reader, addPrefix bool) (bool, error) {
	scanner := bufio.NewScanner(reader)
	found := false
	for scanner.Scan() {
		line := scanner.Text()
		s.lg.log("scanAndPrint", "debug", fmt.Sprintf("Scanning line: %q", line))
		span, ok := s.re.Match(line)
		if !ok {
			continue
		}
		found = true
		s.lg.log("scanAndPrint", "debug", fmt.Sprintf("Matched at [%d:%d]", span.Start, span.End))

		out := s.format(line, span)
		if out == "" && s.onlyMatching {
			continue
		}
		if addPrefix {
			fmt.Fprintf(s.out, "%s:%s\n", prefix, out)
		} else {
			fmt.Fprintln(s.out, out)
		}
	}
	if err := scanner.Err(); err != nil {
		return found, fmt.Errorf("error reading %s: %w", prefix, err)
	}
	return found, nil
}

// format renders a matching line. Spans are rune offsets.
func (s *searcher) format(line string, span regex.Span) string {
	runes := []rune(line)
	matched := string(runes[span.Start:span.End])
	if s.color && matched != "" {
		matched = colorize(matched)
	}
	if s.onlyMatching {
		return matched
	}
	return string(runes[:span.Start]) + matched + string(runes[span.End:])
}
