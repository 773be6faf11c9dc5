// Package parser checks robot program lines against the fixed grammar.
//
// A line is tokenized, every token is classified into a Category, runs of
// commands closed by END are grouped into a Block, and the resulting
// Sentence must equal one of the legal patterns:
//
//	(blank)                                  ""
//	<command>                                "$"
//	REPEAT <number> TIMES <command>... END   "R#T%"
//	SAY <string>                             "S\""
//	WHILE NOT DETECTMARKER DO <command>... END  "W!dD%"
//
// Blocks do not nest. See Group.
package parser

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/chazu/robocheck/pkg/diag"
	"github.com/chazu/robocheck/pkg/lexer"
)

// DefaultMaxSentence is the default limit on tokens per line.
const DefaultMaxSentence = 64

// Checker validates lines one at a time. It owns a lexer cursor and a
// diagnostic slot, so each goroutine needs its own Checker. The reference
// tables are shared.
type Checker struct {
	lex         *lexer.Lexer
	state       State
	maxSentence int
	log         logrus.FieldLogger
}

// Option configures a Checker.
type Option func(*Checker)

// WithMaxSentence sets the maximum number of tokens on a line.
func WithMaxSentence(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.maxSentence = n
		}
	}
}

// WithLogger makes the checker log each sentence at debug level.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// NewChecker creates a Checker.
func NewChecker(opts ...Option) *Checker {
	discard := logrus.New()
	discard.Out = io.Discard
	c := &Checker{
		lex:         lexer.New(""),
		maxSentence: DefaultMaxSentence,
		log:         discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns the diagnostic state of the last line or token checked.
func (c *Checker) State() *State {
	return &c.state
}

// ValidateLine checks one line. It returns nil or a *diag.Diagnostic, which
// is also left in State until the next call.
func (c *Checker) ValidateLine(line string) error {
	sentence, err := c.Sentence(line)
	if err != nil {
		return err
	}
	grouped := Group(sentence)
	if err := Match(grouped); err != nil {
		return c.state.fail(err)
	}
	c.log.WithFields(logrus.Fields{
		"sentence": sentence.String(),
		"grouped":  grouped.String(),
	}).Debug("line accepted")
	return nil
}

// Sentence tokenizes and classifies line, stopping at the first failure.
// The result is not grouped.
func (c *Checker) Sentence(line string) (Sentence, error) {
	c.state.Reset()
	c.lex.Reset(line)

	sentence := make(Sentence, 0, 8)
	for c.lex.HasNext() {
		tok, err := c.lex.Next()
		if err != nil {
			return nil, c.state.fail(err)
		}
		cat, err := Classify(tok)
		if err != nil {
			return nil, c.state.fail(err)
		}
		if len(sentence) >= c.maxSentence {
			return nil, c.state.fail(&diag.Diagnostic{
				Kind:   diag.LineTooLong,
				Offset: diag.NoOffset,
				Limit:  c.maxSentence,
			})
		}
		sentence = append(sentence, cat)
	}
	c.log.WithField("sentence", sentence.String()).Debug("classified line")
	return sentence, nil
}

// Tokens re-tokenizes the last line from the start.
func (c *Checker) Tokens() ([]lexer.Token, error) {
	return c.lex.Tokenize()
}

// IsCommand reports whether token is a pure command. Syntax keywords and
// literals are not commands and leave no diagnostic; an unknown token
// records UnknownToken in State.
func (c *Checker) IsCommand(token string) bool {
	c.state.Reset()
	cat, err := Classify(lexer.NewToken(token, 0))
	if err != nil {
		c.state.fail(err)
		return false
	}
	return cat == Command
}

// ValidateLine checks one line with a fresh Checker.
func ValidateLine(line string) error {
	return NewChecker().ValidateLine(line)
}

// IsCommand reports whether token is a pure command.
func IsCommand(token string) bool {
	return NewChecker().IsCommand(token)
}
