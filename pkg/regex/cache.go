package regex

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

const defaultCacheSize = 64

// patternCache holds recently parsed patterns for the one-shot helpers.
var patternCache = mustNewCache(defaultCacheSize)

func mustNewCache(size int) *lru.Cache[string, *Regexp] {
	cache, err := lru.New[string, *Regexp](size)
	// New only errors on a non-positive size.
	if err != nil {
		panic(err)
	}
	return cache
}

// SetCacheSize changes how many parsed patterns Match and MatchString keep.
// Sizes below one are treated as one.
func SetCacheSize(size int) {
	if size < 1 {
		size = 1
	}
	patternCache.Resize(size)
}

func cachedParse(pattern string) (*Regexp, error) {
	if re, ok := patternCache.Get(pattern); ok {
		return re, nil
	}
	re, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Add(pattern, re)
	return re, nil
}

// Match parses pattern and returns its leftmost match in line.
func Match(line, pattern string) (Span, bool, error) {
	re, err := cachedParse(pattern)
	if err != nil {
		return Span{}, false, err
	}
	span, ok := re.Match(line)
	return span, ok, nil
}

// MatchString parses pattern and reports whether line contains a match.
func MatchString(line, pattern string) (bool, error) {
	re, err := cachedParse(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(line), nil
}
