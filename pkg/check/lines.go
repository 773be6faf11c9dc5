package check

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrLineFormat is returned for a line that is too long or does not end in
// a line break.
var ErrLineFormat = errors.New("too long or not followed by new line")

// Line is one line of a program, line break included.
type Line struct {
	N    int // 1-based
	Text string
}

// ReadLines reads r up to the first malformed line. Every line must end in
// '\n' or '\r' and be shorter than maxLineBytes. The lines before a
// malformed one are returned along with an error wrapping ErrLineFormat.
// A leading byte order mark is dropped; every other byte is kept as read,
// so lengths and offsets are in file bytes.
func ReadLines(name string, r io.Reader, maxLineBytes int) ([]Line, error) {
	tr := unicode.BOMOverride(transform.Nop)
	br := bufio.NewReader(transform.NewReader(r, tr))

	var lines []Line
	for n := 1; ; n++ {
		text, err := br.ReadString('\n')
		if errors.Is(err, io.EOF) {
			if text == "" {
				return lines, nil
			}
		} else if err != nil {
			return lines, fmt.Errorf("%s line %d: %w", name, n, err)
		}

		if len(text) >= maxLineBytes || !endsInBreak(text) {
			return lines, fmt.Errorf("%s line %d: %w", name, n, ErrLineFormat)
		}
		lines = append(lines, Line{N: n, Text: text})
		if err != nil {
			return lines, nil
		}
	}
}

func endsInBreak(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last == '\n' || last == '\r'
}
