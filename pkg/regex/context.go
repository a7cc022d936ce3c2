package regex

// captures maps a group id to the text it captured on the current path.
// Tables are never modified once built; with returns a copy.
type captures map[int][]rune

func (c captures) with(group int, text []rune) captures {
	out := make(captures, len(c)+1)
	for k, v := range c {
		out[k] = v
	}
	out[group] = text
	return out
}

// matchContext is the state of one match attempt. It is passed by value:
// every step that consumes input or records a capture derives a new one.
type matchContext struct {
	input []rune
	start int
	pos   int

	// limit bounds the runes a sub-match may consume. When exact is set the
	// node sequence only succeeds if it ends precisely at limit; this is how
	// an alternation branch is pinned to one candidate boundary.
	limit int
	exact bool

	caps captures
}

func newMatchContext(input []rune, start int) matchContext {
	return matchContext{
		input: input,
		start: start,
		pos:   start,
		limit: len(input),
	}
}

func (c matchContext) peek() (rune, bool) {
	if c.pos >= c.limit {
		return 0, false
	}
	return c.input[c.pos], true
}

func (c matchContext) advance(n int) matchContext {
	c.pos += n
	return c
}

// bounded returns a context for matching one alternation branch that must
// end exactly at limit.
func (c matchContext) bounded(limit int) matchContext {
	c.limit = limit
	c.exact = true
	return c
}

// matchResult is the outcome of a successful matchHere.
type matchResult struct {
	span Span
	caps captures
}
