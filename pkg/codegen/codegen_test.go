package codegen_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/chazu/robocheck/pkg/codegen"
)

// TestGenerateMatchesCheckedIn regenerates the parser tables and compares
// them with the checked-in tables_gen.go, ignoring formatting.
func TestGenerateMatchesCheckedIn(t *testing.T) {
	result, err := codegen.Generate(codegen.Language())
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(result.Warnings) > 0 {
		t.Logf("Warnings: %v", result.Warnings)
	}

	expectedPath := filepath.Join("..", "parser", "tables_gen.go")
	expectedData, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("Failed to read tables_gen.go: %v", err)
	}

	if !strings.HasPrefix(result.Code, "// Code generated by robogen. DO NOT EDIT.") {
		t.Errorf("missing generated-code header:\n%s", result.Code)
	}

	want := terminals(t, string(expectedData))
	got := terminals(t, result.Code)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("generated tables differ from tables_gen.go (-checked-in +generated):\n%s\n\n=== GENERATED ===\n%s", diff, result.Code)
	}
}

// terminals parses src and returns its identifiers and literals in order.
func terminals(t *testing.T, src string) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), "tables_gen.go", src, 0)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}
	var out []string
	for _, decl := range f.Decls {
		ast.Inspect(decl, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.Ident:
				out = append(out, n.Name)
			case *ast.BasicLit:
				out = append(out, n.Value)
			}
			return true
		})
	}
	return out
}

func TestGenerate_SortsKeywords(t *testing.T) {
	tables := &codegen.Tables{
		Package:    "demo",
		Generator:  "test",
		Categories: []codegen.Category{{Ident: "Command", Symbol: '$', Display: "<command>"}},
		Keywords: []codegen.Keyword{
			{Word: "ZED", ID: "KZed", Category: "Command"},
			{Word: "ALPHA", ID: "KAlpha", Category: "Command"},
			{Word: "MID", ID: "KMid", Category: "Command"},
		},
		Patterns: [][]string{{"Command"}},
	}
	result, err := codegen.Generate(tables)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	a := strings.Index(result.Code, `"ALPHA"`)
	m := strings.Index(result.Code, `"MID"`)
	z := strings.Index(result.Code, `"ZED"`)
	if a < 0 || m < 0 || z < 0 || !(a < m && m < z) {
		t.Errorf("keywords not sorted:\n%s", result.Code)
	}
	if !strings.Contains(result.Code, "package demo") {
		t.Errorf("wrong package:\n%s", result.Code)
	}
}

func TestGenerate_Errors(t *testing.T) {
	base := func() *codegen.Tables {
		return &codegen.Tables{
			Package:    "demo",
			Generator:  "test",
			Categories: []codegen.Category{{Ident: "Command", Symbol: '$'}},
			Keywords:   []codegen.Keyword{{Word: "GO", ID: "KGo", Category: "Command"}},
			Patterns:   [][]string{{"Command"}},
		}
	}

	tests := []struct {
		name   string
		mutate func(*codegen.Tables)
	}{
		{"lower case keyword", func(tb *codegen.Tables) { tb.Keywords[0].Word = "go" }},
		{"duplicate keyword", func(tb *codegen.Tables) { tb.Keywords = append(tb.Keywords, tb.Keywords[0]) }},
		{"unknown keyword category", func(tb *codegen.Tables) { tb.Keywords[0].Category = "Nope" }},
		{"unknown pattern category", func(tb *codegen.Tables) { tb.Patterns = append(tb.Patterns, []string{"Nope"}) }},
		{"duplicate pattern", func(tb *codegen.Tables) { tb.Patterns = append(tb.Patterns, []string{"Command"}) }},
		{"duplicate category", func(tb *codegen.Tables) { tb.Categories = append(tb.Categories, tb.Categories[0]) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := base()
			tt.mutate(tb)
			if _, err := codegen.Generate(tb); err == nil {
				t.Error("Generate() returned no error")
			}
		})
	}
}

func TestGenerate_WarnsOnUnusedCategory(t *testing.T) {
	tables := codegen.Language()
	tables.Categories = append(tables.Categories, codegen.Category{Ident: "Spare", Symbol: 'z', Display: "SPARE"})
	result, err := codegen.Generate(tables)
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "Spare") {
		t.Errorf("Warnings = %v", result.Warnings)
	}
}
