// Package lexer provides tokenization for robot program lines.
package lexer

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chazu/robocheck/pkg/diag"
)

// TestTokenize_Valid tests lines that tokenize without error.
func TestTokenize_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "empty input",
			input:    "",
			expected: []Token{},
		},
		{
			name:     "newline only",
			input:    "\n",
			expected: []Token{},
		},
		{
			name:     "delimiters only",
			input:    " ,\t\r\n",
			expected: []Token{},
		},
		{
			name:  "single command",
			input: "TURNON\n",
			expected: []Token{
				{Value: "TURNON", Offset: 0},
			},
		},
		{
			name:  "repeat block",
			input: "REPEAT 3 TIMES TAKEASTEP END\n",
			expected: []Token{
				{Value: "REPEAT", Offset: 0},
				{Value: "3", Offset: 7},
				{Value: "TIMES", Offset: 9},
				{Value: "TAKEASTEP", Offset: 15},
				{Value: "END", Offset: 25},
			},
		},
		{
			name:  "comma delimited",
			input: "LEFT,RIGHT,,DROP",
			expected: []Token{
				{Value: "LEFT", Offset: 0},
				{Value: "RIGHT", Offset: 5},
				{Value: "DROP", Offset: 12},
			},
		},
		{
			name:  "leading tab",
			input: "\tPICKUP",
			expected: []Token{
				{Value: "PICKUP", Offset: 1},
			},
		},
		{
			name:  "quoted string keeps delimiters",
			input: `SAY "hello, world"` + "\n",
			expected: []Token{
				{Value: "SAY", Offset: 0},
				{Value: `"hello, world"`, Offset: 4},
			},
		},
		{
			name:  "empty quoted string at end of line",
			input: `SAY ""`,
			expected: []Token{
				{Value: "SAY", Offset: 0},
				{Value: `""`, Offset: 4},
			},
		},
		{
			name:  "quote inside a plain token is not a string",
			input: `SA"Y`,
			expected: []Token{
				{Value: `SA"Y`, Offset: 0},
			},
		},
		{
			name:  "number at end of line",
			input: "REPEAT 10",
			expected: []Token{
				{Value: "REPEAT", Offset: 0},
				{Value: "10", Offset: 7},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := New(tt.input).Tokenize()
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			if diff := cmp.Diff(tt.expected, tokens); diff != "" {
				t.Errorf("Tokenize() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// TestTokenize_Errors tests the quote and number sub-grammars.
func TestTokenize_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		kind   diag.Kind
		offset int
		before []Token // tokens produced before the failure
	}{
		{
			name:   "unterminated quote",
			input:  "SAY \"hello\n",
			kind:   diag.UnmatchedQuotes,
			offset: 4,
			before: []Token{{Value: "SAY", Offset: 0}},
		},
		{
			name:   "lone quote",
			input:  `"`,
			kind:   diag.UnmatchedQuotes,
			offset: 0,
		},
		{
			name:   "quote followed by letter",
			input:  `SAY "hi"there`,
			kind:   diag.QuoteNotFollowedByDelimiter,
			offset: 8,
			before: []Token{{Value: "SAY", Offset: 0}},
		},
		{
			name:   "quote followed by quote",
			input:  `SAY "a""b"`,
			kind:   diag.QuoteNotFollowedByDelimiter,
			offset: 7,
			before: []Token{{Value: "SAY", Offset: 0}},
		},
		{
			name:   "letter in number",
			input:  "REPEAT 3X TIMES",
			kind:   diag.NonNumericInNumber,
			offset: 8,
			before: []Token{{Value: "REPEAT", Offset: 0}},
		},
		{
			name:   "number then quote",
			input:  `12"`,
			kind:   diag.NonNumericInNumber,
			offset: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			got := []Token{}
			var err error
			for l.HasNext() {
				var tok Token
				tok, err = l.Next()
				if err != nil {
					break
				}
				got = append(got, tok)
			}
			if err == nil {
				t.Fatalf("expected error, got tokens %v", got)
			}

			d, ok := diag.As(err)
			if !ok {
				t.Fatalf("error %v is not a diagnostic", err)
			}
			if d.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", d.Kind, tt.kind)
			}
			if d.Offset != tt.offset {
				t.Errorf("Offset = %d, want %d", d.Offset, tt.offset)
			}

			want := tt.before
			if want == nil {
				want = []Token{}
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("tokens before failure mismatch (-want +got):\n%s", diff)
			}

			// The lexer stops after a failure.
			if l.HasNext() {
				t.Error("HasNext() = true after failure")
			}
			if !errors.Is(l.Err(), err) {
				t.Errorf("Err() = %v, want %v", l.Err(), err)
			}
			if _, again := l.Next(); !errors.Is(again, err) {
				t.Errorf("Next() after failure = %v, want %v", again, err)
			}
		})
	}
}

func TestNext_Exhausted(t *testing.T) {
	l := New("DROP")
	if _, err := l.Next(); err != nil {
		t.Fatalf("Next() error = %v", err)
	}
	if l.HasNext() {
		t.Fatal("HasNext() = true at end of line")
	}
	if _, err := l.Next(); err == nil {
		t.Error("Next() at end of line returned no error")
	}
	if l.Err() != nil {
		t.Errorf("Err() = %v, exhaustion is not a failure", l.Err())
	}
}

// TestRewind checks that a rewound lexer reproduces the same tokens.
func TestRewind(t *testing.T) {
	lines := []string{
		"",
		"TURNON\n",
		"REPEAT 3 TIMES TAKEASTEP LEFT END\n",
		`SAY "a b c", DROP`,
		"WHILE NOT DETECTMARKER DO PICKUP END\r\n",
		`SAY "broken`,
	}

	for _, line := range lines {
		l := New(line)
		first, firstErr := l.Tokenize()

		// Consume part of the line before rewinding.
		if l.HasNext() {
			_, _ = l.Next()
		}

		second, secondErr := l.Tokenize()
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("line %q: rewind mismatch (-first +second):\n%s", line, diff)
		}
		if (firstErr == nil) != (secondErr == nil) {
			t.Errorf("line %q: first error %v, second error %v", line, firstErr, secondErr)
		}
	}
}

func TestReset(t *testing.T) {
	l := New(`SAY "x`)
	if _, err := l.Tokenize(); err == nil {
		t.Fatal("expected error")
	}

	l.Reset("LEFT RIGHT")
	tokens, err := l.Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() after Reset error = %v", err)
	}
	if len(tokens) != 2 || l.Input() != "LEFT RIGHT" {
		t.Errorf("got %v from %q", tokens, l.Input())
	}
}

func TestTokenizeJSON(t *testing.T) {
	out, err := New("REPEAT 3").TokenizeJSON()
	if err != nil {
		t.Fatalf("TokenizeJSON() error = %v", err)
	}

	var tokens []Token
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	want := []Token{{Value: "REPEAT", Offset: 0}, {Value: "3", Offset: 7}}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("TokenizeJSON() mismatch (-want +got):\n%s", diff)
	}

	if _, err := New(`"`).TokenizeJSON(); err == nil {
		t.Error("TokenizeJSON() on unmatched quote returned no error")
	}
}

func TestToken_Predicates(t *testing.T) {
	tests := []struct {
		tok      Token
		isString bool
		isNumber bool
	}{
		{NewToken(`"hi"`, 0), true, false},
		{NewToken("42", 3), false, true},
		{NewToken("END", 0), false, false},
		{NewToken("", 0), false, false},
	}
	for _, tt := range tests {
		if got := tt.tok.IsString(); got != tt.isString {
			t.Errorf("%q.IsString() = %v", tt.tok.Value, got)
		}
		if got := tt.tok.IsNumber(); got != tt.isNumber {
			t.Errorf("%q.IsNumber() = %v", tt.tok.Value, got)
		}
	}
	if end := NewToken("42", 3).End(); end != 5 {
		t.Errorf("End() = %d, want 5", end)
	}
}
