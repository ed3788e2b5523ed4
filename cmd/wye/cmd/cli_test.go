package cmd

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it, mirroring how the cobra commands print their
// output directly rather than through an injected writer.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	fn()

	if err := w.Close(); err != nil {
		t.Fatalf("failed to close pipe writer: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read pipe: %v", err)
	}
	return buf.String()
}

func TestParseCommandDumpsProgram(t *testing.T) {
	parseExpression = true
	parseDumpAST = false
	defer func() { parseExpression, parseDumpAST = false, false }()

	out := captureStdout(t, func() {
		if err := runParse(parseCmd, []string{"let f x = x + 1\nf 2"}); err != nil {
			t.Fatalf("runParse failed: %v", err)
		}
	})
	snaps.MatchSnapshot(t, out)
}

func TestParseCommandDumpAST(t *testing.T) {
	parseExpression = true
	parseDumpAST = true
	defer func() { parseExpression, parseDumpAST = false, false }()

	out := captureStdout(t, func() {
		if err := runParse(parseCmd, []string{"let f x = x + 1\nf 2"}); err != nil {
			t.Fatalf("runParse failed: %v", err)
		}
	})
	snaps.MatchSnapshot(t, out)
}

func TestParseCommandReportsSyntaxError(t *testing.T) {
	parseExpression = true
	parseDumpAST = false
	defer func() { parseExpression, parseDumpAST = false, false }()

	if err := runParse(parseCmd, []string{"let ="}); err == nil {
		t.Fatal("expected a parse error for an incomplete let binding")
	}
}

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := dir + "/input.wye"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestTypecheckCommandPrintsInferredTypes(t *testing.T) {
	path := writeFixture(t, "let f x = x + 1")

	out := captureStdout(t, func() {
		if err := runTypecheck(typecheckCmd, []string{path}); err != nil {
			t.Fatalf("runTypecheck failed: %v", err)
		}
	})
	snaps.MatchSnapshot(t, out)
}

func TestTypecheckCommandReportsTypeError(t *testing.T) {
	path := writeFixture(t, "let f x = x + 1\nf \"hi\"")

	if err := runTypecheck(typecheckCmd, []string{path}); err == nil {
		t.Fatal("expected a type error applying f to a string")
	}
}

func TestLexCommandTokenizesFile(t *testing.T) {
	path := writeFixture(t, "let x = 1")
	lexShowPos, lexOnlyErrors = false, false
	defer func() { lexShowPos, lexOnlyErrors = false, false }()

	out := captureStdout(t, func() {
		if err := runLex(lexCmd, []string{path}); err != nil {
			t.Fatalf("runLex failed: %v", err)
		}
	})
	snaps.MatchSnapshot(t, out)
}
