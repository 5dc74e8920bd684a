package printer

import (
	"testing"

	"github.com/ryan-jan/hclfmt/syntax"
)

func format(t *testing.T, src string) string {
	t.Helper()
	tokens := syntax.NewLexer(src).Tokenize()
	root, errs := syntax.NewParser(tokens, src).Parse()
	if len(errs) != 0 {
		t.Fatalf("%q: unexpected parse errors: %v", src, errs)
	}
	return Format(root)
}

func TestFormatIsIdempotent(t *testing.T) {
	for _, src := range []string{
		"a=1\n",
		"resource \"aws_instance\" \"web\"   {\n ami=\"abc\"\n  count=1\n}\n",
		"x = {\n  a = 1\n  bb = 2\n}\n",
		"y = [1,2,\n3]\n",
		"z = foo(1,2,\n3)\n",
	} {
		once := format(t, src)
		twice := format(t, once)
		if once != twice {
			t.Errorf("formatting %q is not idempotent:\nfirst:  %q\nsecond: %q", src, once, twice)
		}
	}
}

func TestFormatAttributeSpacing(t *testing.T) {
	got := format(t, "a=1\n")
	want := "a = 1\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatAlignsContiguousAttributes(t *testing.T) {
	src := "a = 1\nbb = 2\nccc = 3\n"
	want := "a   = 1\nbb  = 2\nccc = 3\n"
	got := format(t, src)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatAlignmentGroupsBreakOnBlankLine(t *testing.T) {
	src := "a = 1\n\nbb = 2\n"
	want := "a = 1\n\nbb = 2\n"
	got := format(t, src)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatAlignmentGroupsBreakOnBlock(t *testing.T) {
	src := "a = 1\nb \"x\" {\n}\ncc = 2\n"
	got := format(t, src)
	// A block always gets a blank line on both sides (unless adjacent
	// to the start of a body or a comment), and it splits a/cc into
	// separate alignment groups so neither gets padded to match the
	// other's key width.
	want := "a = 1\n\nb \"x\" {\n}\n\ncc = 2\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatBlockIndentation(t *testing.T) {
	src := "outer {\ninner {\nx=1\n}\n}\n"
	want := "outer {\n  inner {\n    x = 1\n  }\n}\n"
	got := format(t, src)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatStringExprPreservedVerbatim(t *testing.T) {
	src := "a = \"hello   ${  name  }  world\"\n"
	got := format(t, src)
	if got != src {
		t.Errorf("string templates must be preserved verbatim: got %q, want %q", got, src)
	}
}

func TestFormatHeredocPreservedVerbatim(t *testing.T) {
	src := "a = <<EOT\n  weird   spacing\nEOT\n"
	got := format(t, src)
	if got != src {
		t.Errorf("heredocs must be preserved verbatim: got %q, want %q", got, src)
	}
}

func TestFormatBinaryExprSpacing(t *testing.T) {
	got := format(t, "x=1+2*3\n")
	want := "x = 1 + 2 * 3\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatConditionalExprSpacing(t *testing.T) {
	got := format(t, "x=a?b:c\n")
	want := "x = a ? b : c\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatFunctionCallInline(t *testing.T) {
	got := format(t, "x=max(1,2,3)\n")
	want := "x = max(1, 2, 3)\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatTupleMultilineWhenSourceIsMultiline(t *testing.T) {
	src := "x = [\n1,\n2,\n]\n"
	want := "x = [\n  1,\n  2,\n]\n"
	got := format(t, src)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTupleInlineWhenSourceIsSingleLine(t *testing.T) {
	got := format(t, "x=[1,2,3]\n")
	want := "x = [1, 2, 3]\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

// A nested multiline call must not force its single-line parent onto
// multiple lines: only a newline directly inside the arg list being
// laid out counts, not one buried in a nested node.
func TestFormatNestedMultilineCallStaysInlineAtOuterLevel(t *testing.T) {
	src := "x = foo(bar(\n  1,\n  2,\n))\n"
	got := format(t, src)
	want := "x = foo(bar(\n  1,\n  2,\n))\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatNestedMultilineTupleStaysInlineAtOuterLevel(t *testing.T) {
	src := "x = [[\n  1,\n  2,\n]]\n"
	want := "x = [[\n  1,\n  2,\n]]\n"
	got := format(t, src)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatObjectAlignmentUsesGraphemeWidth(t *testing.T) {
	// Object keys may be quoted strings (bare identifiers are
	// ASCII-only by grammar), and alignment must measure the rendered
	// key in grapheme clusters, not bytes, so a multi-byte character
	// doesn't throw off the padding.
	src := "x = {\n  \"é\" = 1\n  bb = 2\n}\n"
	got := format(t, src)
	want := "x = {\n  \"é\" = 1\n  bb  = 2\n}\n"
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatTrailingCommentPreserved(t *testing.T) {
	src := "a = 1 # keep me\n"
	got := format(t, src)
	if got != src {
		t.Errorf("got %q, want %q", got, src)
	}
}

func TestFormatEmptyBodyProducesTrailingNewlineOnly(t *testing.T) {
	got := format(t, "")
	if got != "\n" {
		t.Errorf("expected empty input to format to a single trailing newline, got %q", got)
	}
}
