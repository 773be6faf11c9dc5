// Package check runs the line validator over a whole program file.
//
// Lines are read first, then validated by a fixed number of workers, each
// with its own parser.Checker, and finally reported in line order.
package check

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/chazu/robocheck/pkg/diag"
	"github.com/chazu/robocheck/pkg/parser"
	"github.com/chazu/robocheck/pkg/report"
)

// Options controls a run.
type Options struct {
	Jobs         int  // workers; <= 0 means GOMAXPROCS
	MaxLineBytes int  // see ReadLines; <= 0 means 1024
	MaxSentence  int  // tokens per line; <= 0 means parser.DefaultMaxSentence
	Color        bool // colour the error marker
	JSON         bool // write a report.Report instead of text
	Logger       logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.Jobs <= 0 {
		o.Jobs = runtime.GOMAXPROCS(0)
	}
	if o.MaxLineBytes <= 0 {
		o.MaxLineBytes = 1024
	}
	if o.MaxSentence <= 0 {
		o.MaxSentence = parser.DefaultMaxSentence
	}
	if o.Logger == nil {
		l := logrus.New()
		l.Out = io.Discard
		o.Logger = l
	}
	return o
}

// Result is the outcome for one line. Diag is nil for a valid line.
type Result struct {
	Line
	Diag *diag.Diagnostic
}

// Summary describes a finished run.
type Summary struct {
	File    string
	Lines   int   // lines read and validated
	Invalid int   // lines with a syntax error
	Err     error // read failure that stopped the run early, if any

	Report *report.Report // the run in its JSON form
}

// OK returns true if every line was valid and the file was read to the end.
func (s *Summary) OK() bool {
	return s.Invalid == 0 && s.Err == nil
}

// chunkLines is how many consecutive lines one task validates.
const chunkLines = 64

// Validate checks lines in parallel, at most opts.Jobs chunks at a time,
// each with its own parser.Checker. The results are in the order of lines.
func Validate(ctx context.Context, lines []Line, opts Options) ([]Result, error) {
	opts = opts.withDefaults()
	results := make([]Result, len(lines))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for start := 0; start < len(lines); start += chunkLines {
		end := min(start+chunkLines, len(lines))
		g.Go(func() error {
			c := parser.NewChecker(
				parser.WithMaxSentence(opts.MaxSentence),
				parser.WithLogger(opts.Logger.WithField("chunk", start/chunkLines)),
			)
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i].Line = lines[i]
				if err := c.ValidateLine(lines[i].Text); err != nil {
					d, ok := diag.As(err)
					if !ok {
						return fmt.Errorf("line %d: %w", lines[i].N, err)
					}
					results[i].Diag = d
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Run reads, validates and reports the program in r, writing diagnostics
// to w. The returned error is a read failure or cancellation; syntax errors
// are only counted in the Summary.
func Run(ctx context.Context, name string, r io.Reader, w io.Writer, opts Options) (*Summary, error) {
	opts = opts.withDefaults()
	log := opts.Logger.WithField("file", name)

	lines, readErr := ReadLines(name, r, opts.MaxLineBytes)
	log.WithField("lines", len(lines)).Debug("read program")

	results, err := Validate(ctx, lines, opts)
	if err != nil {
		return nil, err
	}

	sum := &Summary{File: name, Lines: len(lines), Err: readErr}
	for _, res := range results {
		if res.Diag != nil {
			sum.Invalid++
		}
	}

	sum.Report = newReport(sum, results)

	if opts.JSON {
		err = report.Write(w, sum.Report)
	} else {
		err = newPrinter(w, name, opts.Color).print(results)
	}
	if err != nil {
		return sum, err
	}

	log.WithFields(logrus.Fields{"lines": sum.Lines, "invalid": sum.Invalid}).Debug("checked program")
	return sum, readErr
}

// RunFile opens path and calls Run.
func RunFile(ctx context.Context, path string, w io.Writer, opts Options) (sum *Summary, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: %w", path, cerr)
		}
	}()
	return Run(ctx, path, f, w, opts)
}

func newReport(sum *Summary, results []Result) *report.Report {
	rep := &report.Report{
		File:        sum.File,
		Lines:       sum.Lines,
		Diagnostics: []report.Diagnostic{},
	}
	for _, res := range results {
		if res.Diag != nil {
			rep.Diagnostics = append(rep.Diagnostics, report.FromDiag(res.N, res.Text, res.Diag))
		}
	}
	if sum.Err != nil {
		rep.Error = sum.Err.Error()
	}
	return rep
}
