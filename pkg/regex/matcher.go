package regex

// repeatTail follows each iteration of a OneOrMore child. from is the
// position where that iteration started. It prints as the + it stands for.
type repeatTail struct {
	child Node
	from  int
}

func (repeatTail) node() {}
func (repeatTail) String() string { return "+" }

func prepend(rest []Node, nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes)+len(rest))
	out = append(out, nodes...)
	return append(out, rest...)
}

// matchHere matches nodes against the input at ctx.pos, backtracking
// greedy-first. It returns the span of the whole attempt and the capture
// table of the first path that succeeds.
func matchHere(nodes []Node, ctx matchContext) (matchResult, bool) {
	if len(nodes) == 0 {
		if ctx.exact && ctx.pos != ctx.limit {
			return matchResult{}, false
		}
		return matchResult{span: Span{Start: ctx.start, End: ctx.pos}, caps: ctx.caps}, true
	}

	rest := nodes[1:]
	switch n := nodes[0].(type) {
	case Literal, Digit, WordChar, Wildcard, PositiveClass, NegativeClass:
		c, ok := ctx.peek()
		if !ok || !matchChar(n, c) {
			return matchResult{}, false
		}
		return matchHere(rest, ctx.advance(1))

	case BackReference:
		text, ok := ctx.caps[n.Group]
		if !ok || ctx.pos+len(text) > ctx.limit {
			return matchResult{}, false
		}
		for i, c := range text {
			if ctx.input[ctx.pos+i] != c {
				return matchResult{}, false
			}
		}
		return matchHere(rest, ctx.advance(len(text)))

	case Start:
		if ctx.pos != 0 {
			return matchResult{}, false
		}
		return matchHere(rest, ctx)

	case End:
		if ctx.pos != len(ctx.input) {
			return matchResult{}, false
		}
		return matchHere(rest, ctx)

	case OneOrMore:
		return matchHere(prepend(rest, n.Child, repeatTail{child: n.Child, from: ctx.pos}), ctx)

	case repeatTail:
		// An iteration that consumed nothing is never extended.
		if ctx.pos > n.from {
			if r, ok := matchHere(prepend(rest, n.child, repeatTail{child: n.child, from: ctx.pos}), ctx); ok {
				return r, true
			}
		}
		return matchHere(rest, ctx)

	case ZeroOrOne:
		if r, ok := matchHere(prepend(rest, n.Child), ctx); ok {
			return r, true
		}
		return matchHere(rest, ctx)

	case Alternation:
		return matchAlternation(n, rest, ctx)
	}
	return matchResult{}, false
}

// matchAlternation tries every branch in order, and for each branch every
// end boundary from the longest down to the cursor. A branch must consume
// exactly up to the boundary; its captures and the group's own text are
// only visible to the continuation tried with that boundary.
func matchAlternation(n Alternation, rest []Node, ctx matchContext) (matchResult, bool) {
	for _, branch := range n.Branches {
		for end := ctx.limit; end >= ctx.pos; end-- {
			sub, ok := matchHere(branch, ctx.bounded(end))
			if !ok {
				continue
			}
			next := ctx.advance(end - ctx.pos)
			next.caps = sub.caps.with(n.Group, ctx.input[ctx.pos:end])
			if r, ok := matchHere(rest, next); ok {
				return r, true
			}
		}
	}
	return matchResult{}, false
}

func matchChar(n Node, c rune) bool {
	switch n := n.(type) {
	case Literal:
		return c == n.Char
	case Digit:
		return isDigit(c)
	case WordChar:
		return isWordChar(c)
	case Wildcard:
		return true
	case PositiveClass:
		return containsRune(n.Chars, c)
	case NegativeClass:
		return !containsRune(n.Chars, c)
	}
	return false
}
