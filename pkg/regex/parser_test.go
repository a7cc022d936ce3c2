package regex

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func lits(s string) []Node {
	var nodes []Node
	for _, c := range s {
		nodes = append(nodes, Literal{Char: c})
	}
	return nodes
}

func seq(parts ...interface{}) []Node {
	var nodes []Node
	for _, p := range parts {
		switch p := p.(type) {
		case string:
			nodes = append(nodes, lits(p)...)
		case Node:
			nodes = append(nodes, p)
		}
	}
	return nodes
}

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    []Node
		groups  int
	}{
		{pattern: "hello", want: lits("hello")},
		{pattern: `\d`, want: seq(Digit{})},
		{pattern: `\w`, want: seq(WordChar{})},
		{pattern: "[abc]", want: seq(PositiveClass{Chars: []rune("abc")})},
		{pattern: "[^defg]", want: seq(NegativeClass{Chars: []rune("defg")})},
		{pattern: `\d apple`, want: seq(Digit{}, " apple")},
		{
			pattern: `\d \d ap[plx]le`,
			want:    seq(Digit{}, " ", Digit{}, " ap", PositiveClass{Chars: []rune("plx")}, "le"),
		},
		{pattern: "d^d", want: lits("d^d")},
		{pattern: `^\dd`, want: seq(Start{}, Digit{}, "d")},
		{pattern: "d$d", want: lits("d$d")},
		{pattern: `\dd$`, want: seq(Digit{}, "d", End{})},
		{pattern: "^$", want: seq(Start{}, End{})},
		{pattern: `\w+`, want: seq(OneOrMore{Child: WordChar{}})},
		{pattern: "xx+x", want: seq("x", OneOrMore{Child: Literal{Char: 'x'}}, "x")},
		{
			pattern: "^x[aze]+",
			want:    seq(Start{}, "x", OneOrMore{Child: PositiveClass{Chars: []rune("aze")}}),
		},
		{pattern: "dogs?", want: seq("dog", ZeroOrOne{Child: Literal{Char: 's'}})},
		{pattern: "d.g", want: seq("d", Wildcard{}, "g")},
		{
			pattern: "(cat|dog)",
			want:    seq(Alternation{Group: 1, Branches: [][]Node{lits("cat"), lits("dog")}}),
			groups:  1,
		},
		{
			pattern: `^\d (cat|dog\d+|duc\w)s?$`,
			want: seq(
				Start{}, Digit{}, " ",
				Alternation{Group: 1, Branches: [][]Node{
					lits("cat"),
					seq("dog", OneOrMore{Child: Digit{}}),
					seq("duc", WordChar{}),
				}},
				ZeroOrOne{Child: Literal{Char: 's'}},
				End{},
			),
			groups: 1,
		},
		{
			pattern: `(\w+) and \1`,
			want: seq(
				Alternation{Group: 1, Branches: [][]Node{seq(OneOrMore{Child: WordChar{}})}},
				" and ",
				BackReference{Group: 1},
			),
			groups: 1,
		},
		{
			pattern: `('(cat) and \2') is the same as \1`,
			want: seq(
				Alternation{Group: 1, Branches: [][]Node{seq(
					"'",
					Alternation{Group: 2, Branches: [][]Node{lits("cat")}},
					" and ",
					BackReference{Group: 2},
					"'",
				)}},
				" is the same as ",
				BackReference{Group: 1},
			),
			groups: 2,
		},
		{
			pattern: "((a)|(b))(c)",
			want: seq(
				Alternation{Group: 1, Branches: [][]Node{
					seq(Alternation{Group: 2, Branches: [][]Node{lits("a")}}),
					seq(Alternation{Group: 3, Branches: [][]Node{lits("b")}}),
				}},
				Alternation{Group: 4, Branches: [][]Node{lits("c")}},
			),
			groups: 4,
		},
		{
			pattern: "(^a|b$)",
			want: seq(Alternation{Group: 1, Branches: [][]Node{
				seq(Start{}, "a"),
				seq("b", End{}),
			}}),
			groups: 1,
		},
		{
			pattern: "(a|)+",
			want: seq(OneOrMore{Child: Alternation{Group: 1, Branches: [][]Node{lits("a"), nil}}}),
			groups:  1,
		},
		{pattern: `a\.b\(\|\\`, want: lits(`a.b(|\`)},
		{pattern: `a\$`, want: lits("a$")},
		{pattern: `a\\$`, want: seq(`a\`, End{})},
		{pattern: `\10`, want: seq(BackReference{Group: 1}, "0")},
		{
			pattern: "([a|b]|c)",
			want: seq(Alternation{Group: 1, Branches: [][]Node{
				seq(PositiveClass{Chars: []rune("a|b")}),
				lits("c"),
			}}),
			groups: 1,
		},
		{pattern: "a|b", want: lits("a|b")},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Parse(tt.pattern)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.pattern, err)
			}
			if diff := cmp.Diff(tt.want, re.Nodes()); diff != "" {
				t.Errorf("Parse(%q) nodes (-want +got):\n%s", tt.pattern, diff)
			}
			if re.NumGroups() != tt.groups {
				t.Errorf("NumGroups() = %d, want %d", re.NumGroups(), tt.groups)
			}
			if re.String() != tt.pattern {
				t.Errorf("String() = %q, want %q", re.String(), tt.pattern)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		pattern string
		offset  int
	}{
		{pattern: "", offset: 0},
		{pattern: "[abc", offset: 0},
		{pattern: "([abc|[def)", offset: 6},
		{pattern: "+", offset: 0},
		{pattern: "?", offset: 0},
		{pattern: "(abc", offset: 0},
		{pattern: "abc)", offset: 3},
		{pattern: "a(b(c)", offset: 1},
		{pattern: "[[abc]", offset: 1},
		{pattern: "^+", offset: 1},
		{pattern: "a++", offset: 2},
		{pattern: "(+a)", offset: 1},
		{pattern: "(a|?)", offset: 3},
		{pattern: `abc\`, offset: 3},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			re, err := Parse(tt.pattern)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.pattern, re.Nodes())
			}
			if re != nil {
				t.Errorf("Parse(%q) returned a Regexp alongside the error", tt.pattern)
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Errorf("Parse(%q) error %v is not ErrInvalidPattern", tt.pattern, err)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse(%q) error %T is not a *ParseError", tt.pattern, err)
			}
			if perr.Offset != tt.offset {
				t.Errorf("Parse(%q) offset = %d, want %d (%v)", tt.pattern, perr.Offset, tt.offset, err)
			}
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse(\"(\") did not panic")
		}
	}()
	MustParse("(")
}

func TestNodeString(t *testing.T) {
	patterns := []string{
		`^\d (cat|dog\d+|duc\w)s?$`,
		`('(cat) and \2') is the same as \1`,
		`[^xyz]+.?`,
		`a\.b\(\|\\`,
		"d^d",
	}
	for _, pattern := range patterns {
		re := MustParse(pattern)
		printed := sequenceString(re.Nodes())
		again := MustParse(printed)
		if diff := cmp.Diff(re.Nodes(), again.Nodes()); diff != "" {
			t.Errorf("reparsing %q printed as %q (-want +got):\n%s", pattern, printed, diff)
		}
	}
}

func TestNodesReturnsCopy(t *testing.T) {
	re := MustParse(`[abc]+(x|[^y]z)?`)
	want := re.Nodes()

	nodes := re.Nodes()
	nodes[0].(OneOrMore).Child.(PositiveClass).Chars[0] = 'q'
	alt := nodes[1].(ZeroOrOne).Child.(Alternation)
	alt.Branches[0][0] = Literal{Char: 'w'}
	alt.Branches[1][0].(NegativeClass).Chars[0] = 'q'
	nodes[0] = Wildcard{}

	if diff := cmp.Diff(want, re.Nodes()); diff != "" {
		t.Errorf("mutating Nodes() changed the Regexp (-want +got):\n%s", diff)
	}
	if !re.MatchString("cx") || re.MatchString("qx") {
		t.Error("mutating Nodes() changed matching")
	}
}
