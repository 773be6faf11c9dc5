// Package lexer provides tokenization for robot program lines.
package lexer

// Quote opens and closes a string literal.
const Quote = '"'

// Token is a slice of the input line.
type Token struct {
	Value  string `json:"value"`
	Offset int    `json:"offset"` // byte offset of the first character
}

// NewToken creates a new token with the given properties.
func NewToken(value string, offset int) Token {
	return Token{
		Value:  value,
		Offset: offset,
	}
}

// IsString returns true if the token is a quoted string literal.
func (t Token) IsString() bool {
	return len(t.Value) > 0 && t.Value[0] == Quote
}

// IsNumber returns true if the token is a numeric literal.
func (t Token) IsNumber() bool {
	return len(t.Value) > 0 && isDigit(t.Value[0])
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Value)
}
