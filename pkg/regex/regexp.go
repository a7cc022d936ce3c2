// Package regex implements a small backtracking regular expression engine.
//
// The supported syntax is literals, \d, \w, [abc], [^abc], the wildcard .,
// the anchors ^ and $, the greedy quantifiers + and ?, parenthesized groups
// with | alternation (nesting allowed) and the backreferences \1 to \9.
// Any other escaped character stands for itself.
//
// Patterns are parsed into a flat sequence of nodes and matched by a
// recursive tree walk. There is no compilation to an automaton, so
// pathological patterns can take exponential time.
package regex

// Span is a half-open range of rune offsets in a line.
type Span struct {
	Start, End int
}

// Regexp is a parsed pattern. It is immutable and safe for concurrent use.
type Regexp struct {
	source string
	nodes  []Node
	groups int
}

// String returns the source pattern.
func (re *Regexp) String() string { return re.source }

// NumGroups returns the number of capture groups in the pattern.
func (re *Regexp) NumGroups() int { return re.groups }

// Nodes returns a deep copy of the top-level node sequence, anchors
// included.
func (re *Regexp) Nodes() []Node {
	return cloneNodes(re.nodes)
}

// Match returns the leftmost match of re in line.
func (re *Regexp) Match(line string) (Span, bool) {
	r, ok := re.find([]rune(line))
	return r.span, ok
}

// MatchString reports whether line contains a match of re.
func (re *Regexp) MatchString(line string) bool {
	_, ok := re.find([]rune(line))
	return ok
}

// Find returns the leftmost match of re in line together with the text
// captured by each group on the accepted path.
func (re *Regexp) Find(line string) (*Result, bool) {
	r, ok := re.find([]rune(line))
	if !ok {
		return nil, false
	}
	return &Result{Span: r.span, groups: re.groups, caps: r.caps}, true
}

func (re *Regexp) find(input []rune) (matchResult, bool) {
	if _, ok := re.nodes[0].(Start); ok {
		return matchHere(re.nodes, newMatchContext(input, 0))
	}
	for start := 0; start <= len(input); start++ {
		if r, ok := matchHere(re.nodes, newMatchContext(input, start)); ok {
			return r, true
		}
	}
	return matchResult{}, false
}

// Result is a successful match.
type Result struct {
	Span   Span
	groups int
	caps   captures
}

// Group returns the text captured by group n and whether the group
// participated in the match. Group 0 is not special; use Span for the
// whole match.
func (r *Result) Group(n int) (string, bool) {
	text, ok := r.caps[n]
	if !ok {
		return "", false
	}
	return string(text), true
}

// Groups returns the captured text of groups 1 to NumGroups. Groups that did
// not participate are empty strings.
func (r *Result) Groups() []string {
	out := make([]string, r.groups)
	for i := range out {
		out[i], _ = r.Group(i + 1)
	}
	return out
}
