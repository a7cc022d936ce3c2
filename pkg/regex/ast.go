package regex

import (
	"strconv"
	"strings"
)

// Node is one matchable unit of a parsed pattern.
type Node interface {
	node()
	String() string
}

type Literal struct{ Char rune }
type Digit struct{}
type WordChar struct{}
type Wildcard struct{}
type PositiveClass struct{ Chars []rune }
type NegativeClass struct{ Chars []rune }

// Start and End are the ^ and $ anchors. The parser only emits them at the
// boundaries of a node sequence.
type Start struct{}
type End struct{}

// OneOrMore and ZeroOrOne own the single atom preceding the quantifier.
type OneOrMore struct{ Child Node }
type ZeroOrOne struct{ Child Node }

// Alternation is a parenthesized capture group. A group without a | has a
// single branch.
type Alternation struct {
	Branches [][]Node
	Group    int
}

// BackReference refers to the text captured by Group on the current path.
type BackReference struct{ Group int }

func (Literal) node() {}
func (Digit) node() {}
func (WordChar) node() {}
func (Wildcard) node() {}
func (PositiveClass) node() {}
func (NegativeClass) node() {}
func (Start) node() {}
func (End) node() {}
func (OneOrMore) node() {}
func (ZeroOrOne) node() {}
func (Alternation) node() {}
func (BackReference) node() {}

func (n Literal) String() string {
	if strings.ContainsRune(`\.[]()|+?^$`, n.Char) {
		return `\` + string(n.Char)
	}
	return string(n.Char)
}

func (Digit) String() string { return `\d` }
func (WordChar) String() string { return `\w` }
func (Wildcard) String() string { return "." }
func (Start) String() string { return "^" }
func (End) String() string { return "$" }

func (n PositiveClass) String() string { return "[" + string(n.Chars) + "]" }
func (n NegativeClass) String() string { return "[^" + string(n.Chars) + "]" }

func (n OneOrMore) String() string { return n.Child.String() + "+" }
func (n ZeroOrOne) String() string { return n.Child.String() + "?" }

func (n Alternation) String() string {
	branches := make([]string, len(n.Branches))
	for i, b := range n.Branches {
		branches[i] = sequenceString(b)
	}
	return "(" + strings.Join(branches, "|") + ")"
}

func (n BackReference) String() string { return `\` + strconv.Itoa(n.Group) }

func sequenceString(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}

func cloneNodes(nodes []Node) []Node {
	if nodes == nil {
		return nil
	}
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

func cloneNode(n Node) Node {
	switch n := n.(type) {
	case PositiveClass:
		return PositiveClass{Chars: append([]rune{}, n.Chars...)}
	case NegativeClass:
		return NegativeClass{Chars: append([]rune{}, n.Chars...)}
	case OneOrMore:
		return OneOrMore{Child: cloneNode(n.Child)}
	case ZeroOrOne:
		return ZeroOrOne{Child: cloneNode(n.Child)}
	case Alternation:
		branches := make([][]Node, len(n.Branches))
		for i, b := range n.Branches {
			branches[i] = cloneNodes(b)
		}
		return Alternation{Branches: branches, Group: n.Group}
	}
	return n
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isWordChar(c rune) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		isDigit(c) ||
		c == '_'
}

func containsRune(set []rune, c rune) bool {
	for _, r := range set {
		if r == c {
			return true
		}
	}
	return false
}
