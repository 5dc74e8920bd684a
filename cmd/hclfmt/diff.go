package main

import (
	"fmt"

	"github.com/andreyvit/diff"

	"github.com/ryan-jan/hclfmt"
)

// unifiedDiff renders a line-oriented diff between a file's original
// contents and the canonical formatting already computed in result,
// labeled the way a patch tool would.
func unifiedDiff(path, original string, result hclfmt.FormatResult) string {
	body := diff.LineDiff(original, result.Output)
	return fmt.Sprintf("--- old/%s\n+++ new/%s\n%s\n", path, path, body)
}
