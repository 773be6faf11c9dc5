package parser

import (
	"sort"
	"strings"

	"github.com/chazu/robocheck/pkg/lexer"
)

// The reference tables in tables_gen.go are read-only and sorted:
//
//	commandTable  by keyword, lexer.CompareFold order
//	patternTable  by category string, byte order
//	displayTable  by category symbol
//
// Lookups below binary-search them, so the order is load-bearing.

// lookupKeyword finds token in the command table, ignoring case.
func lookupKeyword(token string) (commandEntry, bool) {
	i := sort.Search(len(commandTable), func(i int) bool {
		return lexer.CompareFold(commandTable[i].keyword, token) >= 0
	})
	if i < len(commandTable) && lexer.CompareFold(commandTable[i].keyword, token) == 0 {
		return commandTable[i], true
	}
	return commandEntry{}, false
}

// lookupPattern reports whether s is one of the legal sentence shapes.
func lookupPattern(s Sentence) bool {
	key := s.String()
	i := sort.Search(len(patternTable), func(i int) bool {
		return patternTable[i].String() >= key
	})
	return i < len(patternTable) && patternTable[i].String() == key
}

// DisplayName returns the readable name of c used in messages.
func DisplayName(c Category) string {
	i := sort.Search(len(displayTable), func(i int) bool {
		return displayTable[i].category >= c
	})
	if i < len(displayTable) && displayTable[i].category == c {
		return displayTable[i].name
	}
	return c.String()
}

// Keywords returns the language keywords in table order.
func Keywords() []string {
	keywords := make([]string, len(commandTable))
	for i, e := range commandTable {
		keywords[i] = e.keyword
	}
	return keywords
}

// Patterns returns a copy of the legal sentence shapes in table order.
func Patterns() []Sentence {
	patterns := make([]Sentence, len(patternTable))
	for i, p := range patternTable {
		patterns[i] = append(Sentence(nil), p...)
	}
	return patterns
}

// KeywordOf returns the keyword id for token, or NotKeyword.
func KeywordOf(token string) Keyword {
	if e, ok := lookupKeyword(token); ok {
		return e.id
	}
	return NotKeyword
}

// Expand renders s as space-separated display names.
func Expand(s Sentence) string {
	if len(s) == 0 {
		return "<blank line>"
	}
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = DisplayName(c)
	}
	return strings.Join(names, " ")
}
