// Package hclfmt parses HCL source into a lossless concrete syntax
// tree and renders a canonical, terraform-fmt-compatible formatting of
// it. Parsing never fails outright: structural problems are collected
// as ParseErrors alongside a best-effort tree, and the tree's leaves
// always concatenate back to the exact input.
package hclfmt

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ryan-jan/hclfmt/printer"
	"github.com/ryan-jan/hclfmt/syntax"
)

// ParseError is a structural parse error recorded at a byte offset
// into the source.
type ParseError = syntax.ParseError

// Parse lexes and parses text, returning the resulting concrete
// syntax tree (always non-nil, even when errors is non-empty) along
// with every structural error encountered.
func Parse(text []byte) (*syntax.Node, []ParseError) {
	source := string(text)
	tokens := syntax.NewLexer(source).Tokenize()
	return syntax.NewParser(tokens, source).Parse()
}

// FormatResult is the outcome of formatting a source buffer.
type FormatResult struct {
	// Output is the formatted text. For Skipped results it is empty:
	// callers must not write a skipped file.
	Output string
	// Changed reports whether Output differs from the input source.
	Changed bool
	// Skipped reports that the source had parse errors and was left
	// untouched rather than formatted from a partial tree.
	Skipped bool
}

// Format renders a canonical formatting of text. If text fails to
// parse without error, formatting is skipped entirely: the formatter
// never guesses at a layout for malformed input.
func Format(text []byte) FormatResult {
	source := string(text)
	root, errs := Parse(text)
	if len(errs) > 0 {
		return FormatResult{Skipped: true}
	}

	output := printer.Format(root)
	return FormatResult{
		Output:  output,
		Changed: output != source,
	}
}

// FormatStatus summarizes what FormatFile did to a file on disk.
type FormatStatus int

const (
	// StatusUnchanged means the file was already canonically formatted.
	StatusUnchanged FormatStatus = iota
	// StatusChanged means the file was reformatted (and rewritten,
	// unless checkOnly was set).
	StatusChanged
	// StatusSkipped means the file had parse errors and was left alone.
	StatusSkipped
)

func (s FormatStatus) String() string {
	switch s {
	case StatusUnchanged:
		return "unchanged"
	case StatusChanged:
		return "changed"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// FormatFile reads path, formats it, and — unless checkOnly is set —
// rewrites the file in place when its canonical formatting differs
// from what's on disk. It returns the resulting FormatResult alongside
// the summary status, so callers that want the formatted text (e.g.
// for a --diff) don't need to re-read the file.
func FormatFile(path string, checkOnly bool) (FormatStatus, FormatResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return StatusSkipped, FormatResult{}, err
	}
	data, err := stripBOM(raw)
	if err != nil {
		return StatusSkipped, FormatResult{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	result := Format(data)
	switch {
	case result.Skipped:
		return StatusSkipped, result, nil
	case !result.Changed:
		return StatusUnchanged, result, nil
	default:
		if !checkOnly {
			if err := os.WriteFile(path, []byte(result.Output), 0o644); err != nil {
				return StatusSkipped, result, err
			}
		}
		return StatusChanged, result, nil
	}
}

// stripBOM drops a leading UTF-8 byte-order mark, which terraform and
// some editors on Windows happily emit but which would otherwise be
// lexed as a stray ERROR_TOKEN before the first real token.
func stripBOM(data []byte) ([]byte, error) {
	transformer := unicode.BOMOverride(transform.Nop)
	out, _, err := transform.Bytes(transformer, data)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DebugTree renders node as an indented s-expression-like dump, one
// line per node/token, for the "parse" CLI subcommand's human-readable
// output.
func DebugTree(node *syntax.Node) string {
	var b strings.Builder
	writeDebugTree(&b, node, 0)
	return b.String()
}

func writeDebugTree(b *strings.Builder, node *syntax.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(b, "%s%s\n", indent, node.Kind)
	for _, c := range node.Children {
		switch v := c.(type) {
		case *syntax.Node:
			writeDebugTree(b, v, depth+1)
		case *syntax.Leaf:
			fmt.Fprintf(b, "%s  %s %q\n", indent, v.Kind, v.Text)
		}
	}
}
