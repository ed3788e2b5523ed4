package diag

import (
	"strings"
	"testing"

	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/parser"
	"github.com/wye-lang/wye/internal/span"
)

func TestLineColFindsLineAndColumn(t *testing.T) {
	src := "abc\ndef\nghi"
	line, col := lineCol(src, 5) // 'e' in "def"
	if line != 2 || col != 2 {
		t.Fatalf("got line %d col %d, want 2 2", line, col)
	}
}

func TestFormatIncludesFileHeaderAndCaret(t *testing.T) {
	src := "let x = y"
	d := New("unbound identifier y", span.Some(span.New(8, 9)), src, "main.wye")
	out := d.Format(false)
	if !strings.Contains(out, "main.wye:1:9:") {
		t.Fatalf("missing header, got %q", out)
	}
	if !strings.Contains(out, "^") {
		t.Fatalf("missing caret, got %q", out)
	}
	if !strings.Contains(out, "unbound identifier y") {
		t.Fatalf("missing message, got %q", out)
	}
}

func TestRenderSingleVsMultiple(t *testing.T) {
	single := Render([]Diagnostic{New("one", span.None, "", "")}, false)
	if strings.Contains(single, "error(s)") {
		t.Fatalf("single diagnostic should not carry a summary count, got %q", single)
	}

	multi := Render([]Diagnostic{
		New("one", span.None, "", ""),
		New("two", span.None, "", ""),
	}, false)
	if !strings.Contains(multi, "2 error(s)") {
		t.Fatalf("expected a summary count, got %q", multi)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(nil, false); got != "" {
		t.Fatalf("got %q, want empty string", got)
	}
}

func TestFromLexerErrors(t *testing.T) {
	l := lexer.New("$")
	l.NextToken()
	diags := FromLexerErrors(l.Errors(), "$", "<eval>")
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
}

func TestFromParserErrors(t *testing.T) {
	p := parser.New(lexer.New("let = 1"))
	p.ParseProgram()
	if len(p.Errors()) == 0 {
		t.Fatal("expected at least one parser error from malformed input")
	}
	diags := FromParserErrors(p.Errors(), "let = 1", "<eval>")
	if len(diags) != len(p.Errors()) {
		t.Fatalf("got %d diagnostics, want %d", len(diags), len(p.Errors()))
	}
}

func TestFromTypeErrorsOrdersBySpanStart(t *testing.T) {
	errs := map[span.Span]string{
		span.New(10, 12): "second",
		span.New(0, 2):   "first",
	}
	diags := FromTypeErrors(errs, "", "")
	if len(diags) != 2 || diags[0].Message != "first" || diags[1].Message != "second" {
		t.Fatalf("got %+v", diags)
	}
}
