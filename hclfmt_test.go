package hclfmt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatalf("reading fixture %s: %v", name, err)
	}
	return data
}

// checkFixtureParses parses a fixture and asserts the tree reproduces
// the source byte-for-byte, regardless of whether parsing hit errors.
func checkFixtureParses(t *testing.T, name string) []ParseError {
	t.Helper()
	source := readFixture(t, name)
	root, errs := Parse(source)
	if got := root.Text(); got != string(source) {
		t.Errorf("lossless round-trip failed for %s", name)
	}
	return errs
}

func TestFixtureSimpleParsesCleanly(t *testing.T) {
	errs := checkFixtureParses(t, "simple.tf")
	if len(errs) != 0 {
		t.Errorf("unexpected errors in simple.tf: %v", errs)
	}
}

func TestFixtureExpressionsParsesCleanly(t *testing.T) {
	errs := checkFixtureParses(t, "expressions.tf")
	if len(errs) != 0 {
		t.Errorf("unexpected errors in expressions.tf: %v", errs)
	}
}

func TestFixtureHeredocParsesCleanly(t *testing.T) {
	errs := checkFixtureParses(t, "heredoc.tf")
	if len(errs) != 0 {
		t.Errorf("unexpected errors in heredoc.tf: %v", errs)
	}
}

func TestFixtureErrorsRecovers(t *testing.T) {
	errs := checkFixtureParses(t, "errors.tf")
	if len(errs) == 0 {
		t.Fatal("expected errors.tf to contain structural errors")
	}
}

// TestFixturesAreIdempotentUnderFormat formats every well-formed
// fixture twice and checks the result stabilizes after one pass, the
// same property a directory-wide --check run relies on.
func TestFixturesAreIdempotentUnderFormat(t *testing.T) {
	for _, name := range []string{"simple.tf", "expressions.tf", "heredoc.tf"} {
		source := readFixture(t, name)
		first := Format(source)
		if first.Skipped {
			t.Fatalf("%s: Format reported Skipped for a fixture expected to parse cleanly", name)
		}
		second := Format([]byte(first.Output))
		if second.Skipped {
			t.Fatalf("%s: second Format pass reported Skipped", name)
		}
		if second.Changed {
			t.Errorf("%s: formatting is not idempotent:\nfirst:\n%s\nsecond:\n%s", name, first.Output, second.Output)
		}
	}
}

func TestFixtureWithErrorsIsSkippedByFormat(t *testing.T) {
	source := readFixture(t, "errors.tf")
	result := Format(source)
	if !result.Skipped {
		t.Error("expected Format to skip a file with structural parse errors rather than guess at a layout")
	}
	if result.Output != "" {
		t.Error("a skipped FormatResult must not carry an Output")
	}
}

func TestFormatFileRoundTripsOnTempCopy(t *testing.T) {
	source := readFixture(t, "simple.tf")
	dir := t.TempDir()
	path := filepath.Join(dir, "copy.tf")
	if err := os.WriteFile(path, source, 0o644); err != nil {
		t.Fatalf("writing temp fixture: %v", err)
	}

	status, result, err := FormatFile(path, false)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if status == StatusSkipped {
		t.Fatal("expected simple.tf to format without being skipped")
	}

	rewritten, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading rewritten file: %v", err)
	}
	if string(rewritten) != result.Output {
		t.Error("FormatFile did not write its own Output back to disk")
	}

	status2, _, err := FormatFile(path, false)
	if err != nil {
		t.Fatalf("second FormatFile: %v", err)
	}
	if status2 != StatusUnchanged {
		t.Errorf("expected second FormatFile pass to report StatusUnchanged, got %s", status2)
	}
}

func TestFormatFileChecksOnlyWithoutWriting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copy.tf")
	// Deliberately misformat a clean fixture so FormatFile has
	// something to report without touching the file in check mode.
	mangled := "variable  \"region\"   {\ntype=string\ndefault=\"us-east-1\"\n}\n"
	if err := os.WriteFile(path, []byte(mangled), 0o644); err != nil {
		t.Fatalf("writing temp fixture: %v", err)
	}

	status, _, err := FormatFile(path, true)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if status != StatusChanged {
		t.Fatalf("expected StatusChanged for mangled input, got %s", status)
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(onDisk) != mangled {
		t.Error("checkOnly must not rewrite the file on disk")
	}
}

func TestStripBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a = 1\n")...)
	got, err := stripBOM(withBOM)
	if err != nil {
		t.Fatalf("stripBOM: %v", err)
	}
	if string(got) != "a = 1\n" {
		t.Errorf("got %q, want %q", got, "a = 1\n")
	}
}

func TestStripBOMLeavesPlainInputAlone(t *testing.T) {
	got, err := stripBOM([]byte("a = 1\n"))
	if err != nil {
		t.Fatalf("stripBOM: %v", err)
	}
	if string(got) != "a = 1\n" {
		t.Errorf("got %q, want %q", got, "a = 1\n")
	}
}

func TestDebugTreeContainsExpectedKinds(t *testing.T) {
	root, errs := Parse(readFixture(t, "simple.tf"))
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	out := DebugTree(root)
	for _, want := range []string{"SOURCE_FILE", "BODY", "ATTRIBUTE", "BLOCK"} {
		if !strings.Contains(out, want) {
			t.Errorf("DebugTree output missing %q:\n%s", want, out)
		}
	}
}
