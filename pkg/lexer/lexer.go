// Package lexer provides tokenization for robot program lines.
//
// A line is split on delimiters (space, comma, tab and the line-break
// characters) into raw tokens. Two sub-grammars are checked while scanning:
//
//	"quoted text"  - runs to the next quote, which must be followed by a
//	                 delimiter or the end of the line
//	123            - a run of digits, which must be followed by a delimiter
//	                 or the end of the line
//
// Anything else is a maximal run of non-delimiter bytes. The lexer knows
// nothing about the robot grammar.
//
// Output Format (JSON array):
//
//	[{"value": "REPEAT", "offset": 0}, {"value": "3", "offset": 7}, ...]
package lexer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chazu/robocheck/pkg/diag"
)

// Delimiters separate tokens.
const Delimiters = " ,\t\n\r\v\f"

// Lexer tokenizes one line. It is a cursor over the line and must not be
// shared between goroutines.
type Lexer struct {
	input string // The line being tokenized
	pos   int    // Current position in input
	err   error  // First scanning failure, sticky until Rewind
}

// New creates a new Lexer for the given line.
func New(line string) *Lexer {
	return &Lexer{input: line}
}

// Reset points the lexer at a new line.
func (l *Lexer) Reset(line string) {
	l.input = line
	l.Rewind()
}

// Rewind restarts tokenization from the beginning of the current line.
func (l *Lexer) Rewind() {
	l.pos = 0
	l.err = nil
}

// Input returns the line being tokenized.
func (l *Lexer) Input() string {
	return l.input
}

// Err returns the scanning failure that stopped the lexer, if any.
func (l *Lexer) Err() error {
	return l.err
}

// HasNext reports whether Next will produce another token. It is false once
// a scanning failure has been recorded.
func (l *Lexer) HasNext() bool {
	if l.err != nil {
		return false
	}
	l.skipDelimiters()
	return !l.isAtEnd()
}

// Next scans the next token. On failure the error is recorded and returned,
// and no further tokens are produced.
func (l *Lexer) Next() (Token, error) {
	if !l.HasNext() {
		if l.err != nil {
			return Token{}, l.err
		}
		return Token{}, fmt.Errorf("lexer: no more tokens at offset %d", l.pos)
	}

	start := l.pos
	var err error
	switch c := l.peek(); {
	case c == Quote:
		err = l.scanString()
	case isDigit(c):
		err = l.scanNumber()
	default:
		for !l.isAtEnd() && !isDelimiter(l.peek()) {
			l.advance()
		}
	}
	if err != nil {
		l.err = err
		return Token{}, err
	}
	return NewToken(l.input[start:l.pos], start), nil
}

// Tokenize rewinds and returns every token on the line.
func (l *Lexer) Tokenize() ([]Token, error) {
	l.Rewind()
	tokens := make([]Token, 0)
	for l.HasNext() {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokenizeJSON tokenizes the line and returns the tokens as a JSON array.
func (l *Lexer) TokenizeJSON() (string, error) {
	tokens, err := l.Tokenize()
	if err != nil {
		return "", err
	}
	data, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("failed to marshal tokens: %w", err)
	}
	return string(data), nil
}

// scanString consumes "...". The opening quote is at l.pos.
func (l *Lexer) scanString() error {
	open := l.pos
	l.advance()
	for !l.isAtEnd() && l.peek() != Quote {
		l.advance()
	}
	if l.isAtEnd() {
		return diag.At(diag.UnmatchedQuotes, open)
	}
	l.advance()
	if !l.isAtEnd() && !isDelimiter(l.peek()) {
		return diag.At(diag.QuoteNotFollowedByDelimiter, l.pos)
	}
	return nil
}

func (l *Lexer) scanNumber() error {
	for !l.isAtEnd() && isDigit(l.peek()) {
		l.advance()
	}
	if !l.isAtEnd() && !isDelimiter(l.peek()) {
		return diag.At(diag.NonNumericInNumber, l.pos)
	}
	return nil
}

// Helper methods for character access and movement

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.input[l.pos]
	l.pos++
	return ch
}

func (l *Lexer) skipDelimiters() {
	for !l.isAtEnd() && isDelimiter(l.peek()) {
		l.pos++
	}
}

func isDelimiter(c byte) bool {
	return strings.IndexByte(Delimiters, c) >= 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
