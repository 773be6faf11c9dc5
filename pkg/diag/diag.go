// Package diag defines the syntax errors reported for a robot program line.
package diag

import (
	"errors"
	"fmt"
)

// NoOffset marks a diagnostic that is about the shape of the whole line
// rather than a single token.
const NoOffset = -1

// Kind classifies a diagnostic.
type Kind int

const (
	UnmatchedQuotes Kind = iota + 1
	QuoteNotFollowedByDelimiter
	NonNumericInNumber
	UnknownToken
	LineTooLong
	InvalidExpression
)

// Sentinels returned by Diagnostic.Unwrap, for use with errors.Is.
var (
	ErrUnmatchedQuotes             = errors.New("unmatched quotes")
	ErrQuoteNotFollowedByDelimiter = errors.New("closing quote must be followed by a delimiter")
	ErrNonNumericInNumber          = errors.New("non-numeric character in number")
	ErrUnknownToken                = errors.New("unknown token")
	ErrLineTooLong                 = errors.New("line has too many tokens")
	ErrInvalidExpression           = errors.New("invalid expression")
)

var kindNames = map[Kind]string{
	UnmatchedQuotes:             "UnmatchedQuotes",
	QuoteNotFollowedByDelimiter: "QuoteNotFollowedByDelimiter",
	NonNumericInNumber:          "NonNumericInNumber",
	UnknownToken:                "UnknownToken",
	LineTooLong:                 "LineTooLong",
	InvalidExpression:           "InvalidExpression",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) sentinel() error {
	switch k {
	case UnmatchedQuotes:
		return ErrUnmatchedQuotes
	case QuoteNotFollowedByDelimiter:
		return ErrQuoteNotFollowedByDelimiter
	case NonNumericInNumber:
		return ErrNonNumericInNumber
	case UnknownToken:
		return ErrUnknownToken
	case LineTooLong:
		return ErrLineTooLong
	case InvalidExpression:
		return ErrInvalidExpression
	}
	return nil
}

// Diagnostic is the first syntax error found on a line.
type Diagnostic struct {
	Kind   Kind
	Offset int // byte offset in the line, or NoOffset

	Token      string // UnknownToken: the offending text
	Suggestion string // UnknownToken: nearest keyword
	Expression string // InvalidExpression: the rejected expression, expanded
	Expected   string // InvalidExpression: the nearest legal expression, expanded
	Limit      int    // LineTooLong: the maximum number of tokens
}

// maxTokenEcho is how much of an unknown token is repeated in a message.
const maxTokenEcho = 8

func (d *Diagnostic) Error() string {
	switch d.Kind {
	case UnknownToken:
		tok := d.Token
		if len(tok) > maxTokenEcho {
			tok = tok[:maxTokenEcho] + "..."
		}
		if d.Suggestion == "" {
			return fmt.Sprintf("%q is not a valid command", tok)
		}
		return fmt.Sprintf("%q is not a valid command; did you mean %q?", tok, d.Suggestion)
	case InvalidExpression:
		return fmt.Sprintf("%q is not a valid expression; expected %q", d.Expression, d.Expected)
	case LineTooLong:
		return fmt.Sprintf("%v (max %d)", ErrLineTooLong, d.Limit)
	}
	if err := d.Kind.sentinel(); err != nil {
		return err.Error()
	}
	return "syntax error"
}

func (d *Diagnostic) Unwrap() error {
	return d.Kind.sentinel()
}

// HasOffset reports whether the diagnostic points at a byte in the line.
func (d *Diagnostic) HasOffset() bool {
	return d.Offset != NoOffset
}

// At creates a token-level diagnostic.
func At(kind Kind, offset int) *Diagnostic {
	return &Diagnostic{Kind: kind, Offset: offset}
}

// As extracts the Diagnostic from err, if there is one.
func As(err error) (*Diagnostic, bool) {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
