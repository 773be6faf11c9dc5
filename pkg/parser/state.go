package parser

import "github.com/chazu/robocheck/pkg/diag"

// State holds the diagnostic for the line being checked. Only the first
// failure on a line is kept.
type State struct {
	diag *diag.Diagnostic
}

// Reset clears the state for a new line.
func (s *State) Reset() {
	s.diag = nil
}

// fail records err if nothing has been recorded yet and returns whatever
// is recorded.
func (s *State) fail(err error) error {
	if s.diag != nil {
		return s.diag
	}
	d, ok := diag.As(err)
	if !ok {
		return err
	}
	s.diag = d
	return d
}

// Err returns the recorded diagnostic as an error, or nil.
func (s *State) Err() error {
	if s.diag == nil {
		return nil
	}
	return s.diag
}

// Diagnostic returns the recorded diagnostic, or nil.
func (s *State) Diagnostic() *diag.Diagnostic {
	return s.diag
}

// Message returns the recorded message, or "" if the line is valid.
func (s *State) Message() string {
	if s.diag == nil {
		return ""
	}
	return s.diag.Error()
}

// Offset returns the byte offset of the fault. ok is false when nothing is
// recorded or the fault concerns the whole line.
func (s *State) Offset() (offset int, ok bool) {
	if s.diag == nil || !s.diag.HasOffset() {
		return diag.NoOffset, false
	}
	return s.diag.Offset, true
}
