package parser

import (
	"github.com/chazu/robocheck/pkg/diag"
	"github.com/chazu/robocheck/pkg/lexer"
)

// Classify returns the category of one token. Strings and numbers are
// recognized by their first byte and never looked up.
func Classify(tok lexer.Token) (Category, error) {
	switch {
	case tok.IsString():
		return String, nil
	case tok.IsNumber():
		return Number, nil
	}
	if e, ok := lookupKeyword(tok.Value); ok {
		return e.category, nil
	}
	return 0, &diag.Diagnostic{
		Kind:       diag.UnknownToken,
		Offset:     tok.Offset,
		Token:      tok.Value,
		Suggestion: SuggestKeyword(tok.Value),
	}
}
