package parser

import "github.com/chazu/robocheck/pkg/diag"

// Group collapses every run of commands closed by End into one Block.
//
// It repeatedly takes the right-most End and extends backwards over the
// Commands immediately before it. Only flat blocks are grouped: in
// "R#TR#T$EE" the outer END has no commands before it and becomes an empty
// Block of its own, so nested loops never match a pattern.
func Group(s Sentence) Sentence {
	out := append(Sentence(nil), s...)
	for {
		end := -1
		for i := len(out) - 1; i >= 0; i-- {
			if out[i] == End {
				end = i
				break
			}
		}
		if end < 0 {
			return out
		}
		start := end
		for start > 0 && out[start-1] == Command {
			start--
		}
		out = append(append(out[:start], Block), out[end+1:]...)
	}
}

// Match checks a grouped sentence against the legal patterns. Only exact
// equality counts.
func Match(s Sentence) error {
	if lookupPattern(s) {
		return nil
	}
	return &diag.Diagnostic{
		Kind:       diag.InvalidExpression,
		Offset:     diag.NoOffset,
		Expression: Expand(s),
		Expected:   Expand(SuggestPattern(s)),
	}
}
