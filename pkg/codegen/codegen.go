// Package codegen generates the parser's reference tables.
//
// The language is described once, in any order, by Language. Generate sorts
// the keywords, patterns and display names into the orders the parser's
// binary searches rely on and renders them as Go source with jennifer, so
// the sort order is fixed at generation time rather than checked at run
// time.
package codegen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/chazu/robocheck/pkg/lexer"
	"github.com/dave/jennifer/jen"
)

// Result contains the generated code and any warnings.
type Result struct {
	Code     string
	Warnings []string
}

// Category names one category constant of the parser package.
type Category struct {
	Ident   string // Go identifier of the constant, e.g. "Command"
	Symbol  byte   // symbol in category strings
	Display string // name used when expanding a sentence
}

// Keyword is one reserved word.
type Keyword struct {
	Word     string // upper case
	ID       string // Go identifier of the Keyword constant
	Category string // Category.Ident
}

// Tables describes a language.
type Tables struct {
	Package    string
	Generator  string
	Categories []Category
	Keywords   []Keyword
	Patterns   [][]string // each a list of Category.Ident
}

type generator struct {
	tables   *Tables
	symbols  map[string]byte
	warnings []string
}

// Generate produces Go source for the command, pattern and display tables.
func Generate(t *Tables) (*Result, error) {
	g := &generator{
		tables:   t,
		symbols:  map[string]byte{},
		warnings: []string{},
	}
	if err := g.check(); err != nil {
		return nil, err
	}
	return g.generate()
}

func (g *generator) check() error {
	for _, c := range g.tables.Categories {
		if _, dup := g.symbols[c.Ident]; dup {
			return fmt.Errorf("duplicate category %s", c.Ident)
		}
		g.symbols[c.Ident] = c.Symbol
	}

	words := map[string]bool{}
	for _, k := range g.tables.Keywords {
		if k.Word != strings.ToUpper(k.Word) {
			return fmt.Errorf("keyword %q must be upper case", k.Word)
		}
		if words[k.Word] {
			return fmt.Errorf("duplicate keyword %q", k.Word)
		}
		words[k.Word] = true
		if _, ok := g.symbols[k.Category]; !ok {
			return fmt.Errorf("keyword %q: unknown category %s", k.Word, k.Category)
		}
	}

	used := map[string]bool{}
	for _, p := range g.tables.Patterns {
		for _, ident := range p {
			if _, ok := g.symbols[ident]; !ok {
				return fmt.Errorf("pattern %v: unknown category %s", p, ident)
			}
			used[ident] = true
		}
	}
	for _, k := range g.tables.Keywords {
		used[k.Category] = true
	}
	for _, c := range g.tables.Categories {
		if !used[c.Ident] {
			g.warnings = append(g.warnings, fmt.Sprintf("category %s is never produced or matched", c.Ident))
		}
	}
	return nil
}

// patternKey is the category string of a pattern.
func (g *generator) patternKey(p []string) string {
	var sb strings.Builder
	for _, ident := range p {
		sb.WriteByte(g.symbols[ident])
	}
	return sb.String()
}

func (g *generator) generate() (*Result, error) {
	f := jen.NewFile(g.tables.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by %s. DO NOT EDIT.", g.tables.Generator))

	keywords := append([]Keyword(nil), g.tables.Keywords...)
	sort.Slice(keywords, func(i, j int) bool {
		return lexer.CompareFold(keywords[i].Word, keywords[j].Word) < 0
	})
	f.Var().Id("commandTable").Op("=").Index().Id("commandEntry").ValuesFunc(func(grp *jen.Group) {
		for _, k := range keywords {
			grp.Line().Values(jen.Dict{
				jen.Id("keyword"):  jen.Lit(k.Word),
				jen.Id("id"):       jen.Id(k.ID),
				jen.Id("category"): jen.Id(k.Category),
			})
		}
		grp.Line()
	})

	patterns := append([][]string(nil), g.tables.Patterns...)
	sort.SliceStable(patterns, func(i, j int) bool {
		return g.patternKey(patterns[i]) < g.patternKey(patterns[j])
	})
	for i := 1; i < len(patterns); i++ {
		if g.patternKey(patterns[i-1]) == g.patternKey(patterns[i]) {
			return nil, fmt.Errorf("duplicate pattern %q", g.patternKey(patterns[i]))
		}
	}
	f.Var().Id("patternTable").Op("=").Index().Id("Sentence").ValuesFunc(func(grp *jen.Group) {
		for _, p := range patterns {
			grp.Line().ValuesFunc(func(items *jen.Group) {
				for _, ident := range p {
					items.Id(ident)
				}
			})
		}
		grp.Line()
	})

	categories := append([]Category(nil), g.tables.Categories...)
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Symbol < categories[j].Symbol
	})
	f.Var().Id("displayTable").Op("=").Index().Id("displayEntry").ValuesFunc(func(grp *jen.Group) {
		for _, c := range categories {
			grp.Line().Values(jen.Dict{
				jen.Id("category"): jen.Id(c.Ident),
				jen.Id("name"):     jen.Lit(c.Display),
			})
		}
		grp.Line()
	})

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render tables: %w", err)
	}
	return &Result{Code: buf.String(), Warnings: g.warnings}, nil
}
