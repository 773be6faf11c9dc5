package parser

import "github.com/chazu/robocheck/pkg/lexer"

// nearest picks the entry of a sorted table closest to query.
//
// The candidate range [lo, hi] shrinks one query position at a time: hi
// moves down past entries whose byte at that position is greater, lo moves
// up past entries whose byte is smaller. A missing byte counts as 0. This is
// a heuristic, not an edit distance; the result is only ever a hint.
//
// n must be positive. The result is always a valid index.
func nearest(query string, n int, entry func(int) string, fold func(byte) byte) int {
	lo, hi := 0, n-1
	for i := 0; lo < hi; i++ {
		if i >= len(query) {
			break
		}
		q := fold(query[i])
		for hi > lo && fold(byteAt(entry(hi), i)) > q {
			hi--
		}
		for lo < hi && fold(byteAt(entry(lo), i)) < q {
			lo++
		}
	}
	return lo
}

func byteAt(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func identity(c byte) byte { return c }

// SuggestKeyword returns the keyword closest to token.
func SuggestKeyword(token string) string {
	i := nearest(token, len(commandTable), func(i int) string {
		return commandTable[i].keyword
	}, lexer.Upper)
	return commandTable[i].keyword
}

// SuggestPattern returns a copy of the legal sentence shape closest to s.
func SuggestPattern(s Sentence) Sentence {
	i := nearest(s.String(), len(patternTable), func(i int) string {
		return patternTable[i].String()
	}, identity)
	return append(Sentence(nil), patternTable[i]...)
}
