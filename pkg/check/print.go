package check

import (
	"fmt"
	"io"

	"github.com/labstack/gommon/color"
)

// Marker is printed immediately before the offending byte.
const Marker = "***"

// maxNameEcho is how much of the file name prefixes each diagnostic.
const maxNameEcho = 16

type printer struct {
	w      io.Writer
	name   string
	marker string
}

func newPrinter(w io.Writer, name string, colored bool) *printer {
	c := color.New()
	if colored {
		c.Enable()
	} else {
		c.Disable()
	}
	if len(name) > maxNameEcho {
		name = name[:maxNameEcho] + "..."
	}
	return &printer{w: w, name: name, marker: c.Red(Marker)}
}

// print writes every invalid line as
//
//	name:N: text before the fault***text from the fault
//	syntax error: message
//
// followed by a blank line. Without an offset the line is echoed as is.
func (p *printer) print(results []Result) error {
	for _, res := range results {
		if res.Diag == nil {
			continue
		}
		text := res.Text
		if res.Diag.HasOffset() {
			off := min(max(res.Diag.Offset, 0), len(text))
			text = text[:off] + p.marker + text[off:]
		}
		if _, err := fmt.Fprintf(p.w, "%s:%d: %s", p.name, res.N, text); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(p.w, "syntax error: %s\n\n", res.Diag.Error()); err != nil {
			return err
		}
	}
	return nil
}
