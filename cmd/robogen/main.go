// Robogen writes the sorted reference tables used by package parser.
//
//	go generate ./pkg/parser
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chazu/robocheck/pkg/codegen"
)

var (
	output = flag.String("o", "", "write to this file instead of stdout")
	strict = flag.Bool("strict", false, "fail on warnings")
	dryRun = flag.Bool("dry-run", false, "show what would be generated without writing")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Robogen - robot language table generator\n\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  robogen [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	result, err := codegen.Generate(codegen.Language())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating tables: %v\n", err)
		os.Exit(1)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if *strict && len(result.Warnings) > 0 {
		fmt.Fprintf(os.Stderr, "Error: -strict enabled, refusing to generate with warnings\n")
		os.Exit(1)
	}

	if *dryRun {
		fmt.Fprintf(os.Stderr, "Dry run - would generate %d bytes of Go code\n", len(result.Code))
		os.Exit(0)
	}

	if *output == "" {
		fmt.Print(result.Code)
		return
	}
	if err := os.WriteFile(*output, []byte(result.Code), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *output, err)
		os.Exit(1)
	}
}
