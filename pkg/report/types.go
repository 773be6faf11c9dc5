// Package report defines the JSON form of a robocheck run.
package report

import "github.com/chazu/robocheck/pkg/diag"

// Report is the result of checking one file.
type Report struct {
	File        string       `json:"file"`
	Lines       int          `json:"lines"`       // lines read
	Diagnostics []Diagnostic `json:"diagnostics"` // one per invalid line, in line order
	Error       string       `json:"error,omitempty"`
}

// OK returns true if every line was valid and the file was read to the end.
func (r *Report) OK() bool {
	return len(r.Diagnostics) == 0 && r.Error == ""
}

// Location represents a position in the source file.
type Location struct {
	Line int `json:"line"`
	Col  int `json:"col"` // byte offset within the line
}

// Diagnostic is the first syntax error on one line.
type Diagnostic struct {
	Line       int       `json:"line"`
	Text       string    `json:"text"` // the offending line
	Kind       string    `json:"kind"` // diag.Kind name
	Message    string    `json:"message"`
	Location   *Location `json:"location,omitempty"` // nil when the whole line is at fault
	Token      string    `json:"token,omitempty"`
	Suggestion string    `json:"suggestion,omitempty"`
	Expected   string    `json:"expected,omitempty"`
}

// HasLocation returns true if the diagnostic points at a byte in the line.
func (d *Diagnostic) HasLocation() bool {
	return d.Location != nil
}

// FromDiag converts a parser diagnostic for line number n.
func FromDiag(n int, text string, d *diag.Diagnostic) Diagnostic {
	out := Diagnostic{
		Line:       n,
		Text:       text,
		Kind:       d.Kind.String(),
		Message:    d.Error(),
		Token:      d.Token,
		Suggestion: d.Suggestion,
		Expected:   d.Expected,
	}
	if d.HasOffset() {
		out.Location = &Location{Line: n, Col: d.Offset}
	}
	return out
}
