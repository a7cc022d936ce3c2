package regex

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is returned (wrapped in a *ParseError) for every pattern
// the parser rejects.
var ErrInvalidPattern = errors.New("invalid pattern")

// ParseError describes where and why a pattern was rejected.
type ParseError struct {
	Pattern string
	Offset  int // in runes
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid pattern %q at offset %d: %s", e.Pattern, e.Offset, e.Reason)
}

func (e *ParseError) Unwrap() error { return ErrInvalidPattern }

type parser struct {
	source  string
	pattern []rune
	groups  int
}

// Parse compiles pattern into a Regexp that can be matched against any
// number of lines.
func Parse(pattern string) (*Regexp, error) {
	p := &parser{source: pattern, pattern: []rune(pattern)}
	if len(p.pattern) == 0 {
		return nil, p.errorf(0, "empty pattern")
	}
	nodes, err := p.parseSequence(0, len(p.pattern))
	if err != nil {
		return nil, err
	}
	return &Regexp{source: pattern, nodes: nodes, groups: p.groups}, nil
}

// MustParse is like Parse but panics if the pattern is invalid.
func MustParse(pattern string) *Regexp {
	re, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

func (p *parser) errorf(offset int, format string, args ...interface{}) error {
	return &ParseError{Pattern: p.source, Offset: offset, Reason: fmt.Sprintf(format, args...)}
}

// parseSequence parses pattern[lo:hi] into a node sequence. Anchors are only
// recognised at the boundaries of the span.
func (p *parser) parseSequence(lo, hi int) ([]Node, error) {
	var nodes []Node
	if lo < hi && p.pattern[lo] == '^' {
		nodes = append(nodes, Start{})
		lo++
	}
	anchoredEnd := false
	if lo < hi && p.pattern[hi-1] == '$' && !p.escaped(lo, hi-1) {
		anchoredEnd = true
		hi--
	}

	// quantifiable is true while the last node is a fresh atom.
	quantifiable := false
	for i := lo; i < hi; {
		c := p.pattern[i]
		switch c {
		case '\\':
			if i+1 >= hi {
				return nil, p.errorf(i, "trailing backslash")
			}
			nodes = append(nodes, escapeNode(p.pattern[i+1]))
			i += 2
			quantifiable = true

		case '.':
			nodes = append(nodes, Wildcard{})
			i++
			quantifiable = true

		case '[':
			end, err := p.classEnd(i, hi)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, classNode(p.pattern[i+1:end]))
			i = end + 1
			quantifiable = true

		case '(':
			n, end, err := p.parseGroup(i, hi)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)
			i = end + 1
			quantifiable = true

		case ')':
			return nil, p.errorf(i, "unbalanced ')'")

		case '+', '?':
			if !quantifiable {
				return nil, p.errorf(i, "quantifier %q has nothing to repeat", c)
			}
			last := nodes[len(nodes)-1]
			if c == '+' {
				nodes[len(nodes)-1] = OneOrMore{Child: last}
			} else {
				nodes[len(nodes)-1] = ZeroOrOne{Child: last}
			}
			i++
			quantifiable = false

		default:
			nodes = append(nodes, Literal{Char: c})
			i++
			quantifiable = true
		}
	}

	if anchoredEnd {
		nodes = append(nodes, End{})
	}
	return nodes, nil
}

func escapeNode(c rune) Node {
	switch {
	case c == 'd':
		return Digit{}
	case c == 'w':
		return WordChar{}
	case c >= '1' && c <= '9':
		return BackReference{Group: int(c - '0')}
	default:
		return Literal{Char: c}
	}
}

func classNode(content []rune) Node {
	if len(content) > 0 && content[0] == '^' {
		return NegativeClass{Chars: append([]rune{}, content[1:]...)}
	}
	return PositiveClass{Chars: append([]rune{}, content...)}
}

// escaped reports whether the rune at i is preceded by an odd number of
// backslashes within pattern[lo:i].
func (p *parser) escaped(lo, i int) bool {
	n := 0
	for j := i - 1; j >= lo && p.pattern[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// classEnd returns the index of the ']' closing the class opened at open.
// Brackets do not nest: a '[' inside a class is rejected.
func (p *parser) classEnd(open, hi int) (int, error) {
	for j := open + 1; j < hi; j++ {
		switch p.pattern[j] {
		case ']':
			return j, nil
		case '[':
			return 0, p.errorf(j, "nested '[' in character class")
		}
	}
	return 0, p.errorf(open, "unterminated character class")
}

// parseGroup parses the group opened at open and returns it together with
// the index of its closing ')'. The group id is taken before the branches
// are parsed so that outer groups number before inner ones.
func (p *parser) parseGroup(open, hi int) (Node, int, error) {
	end, bars, err := p.scanGroup(open, hi)
	if err != nil {
		return nil, 0, err
	}
	p.groups++
	alt := Alternation{Group: p.groups}

	lo := open + 1
	for _, bar := range append(bars, end) {
		branch, err := p.parseSequence(lo, bar)
		if err != nil {
			return nil, 0, err
		}
		alt.Branches = append(alt.Branches, branch)
		lo = bar + 1
	}
	return alt, end, nil
}

// scanGroup finds the ')' matching the '(' at open by depth counting, and
// the positions of the '|' separators directly inside it. Escaped runes and
// character classes are skipped.
func (p *parser) scanGroup(open, hi int) (int, []int, error) {
	var bars []int
	depth := 0
	for i := open; i < hi; i++ {
		switch p.pattern[i] {
		case '\\':
			i++
		case '[':
			end, err := p.classEnd(i, hi)
			if err != nil {
				return 0, nil, err
			}
			i = end
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, bars, nil
			}
		case '|':
			if depth == 1 {
				bars = append(bars, i)
			}
		}
	}
	return 0, nil, p.errorf(open, "unterminated group")
}
