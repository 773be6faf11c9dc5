package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// Parse reads report JSON from a reader.
func Parse(r io.Reader) (*Report, error) {
	var rep Report
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&rep); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &rep, nil
}

// ParseBytes parses report JSON from a byte slice.
func ParseBytes(data []byte) (*Report, error) {
	var rep Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &rep, nil
}

// Write encodes r as indented JSON.
func Write(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
