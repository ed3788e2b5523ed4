package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `let rec f x = x + 1 in f 2`

	tests := []struct {
		typ TokenType
		lit string
	}{
		{LET, "let"},
		{REC, "rec"},
		{IDENT, "f"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{IDENT, "x"},
		{PLUS, "+"},
		{INT, "1"},
		{IN, "in"},
		{IDENT, "f"},
		{INT, "2"},
		{EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("tests[%d]: type = %s, want %s (literal %q)", i, tok.Type, tt.typ, tok.Literal)
		}
		if tok.Literal != tt.lit {
			t.Fatalf("tests[%d]: literal = %q, want %q", i, tok.Literal, tt.lit)
		}
	}
}

func TestOperators(t *testing.T) {
	input := `+ - * / // < > <= >= == != -> => :: = . # | \ ' !`
	want := []TokenType{
		PLUS, MINUS, STAR, SLASH, SLASHSLASH,
		LT, GT, LEQ, GEQ, EQ, NEQ,
		ARROW, FATARROW, CONS, ASSIGN, DOT, HASH, PIPE, BACKSLASH, QUOTE, BANG,
		EOF,
	}
	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("tests[%d]: type = %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := "match with if then else none nothing print fail enum struct interface impl requires type case set int float string"
	want := []TokenType{
		MATCH, WITH, IF, THEN, ELSE, NONE, NOTHING, PRINT, FAIL,
		ENUM, STRUCT, INTERFACE, IMPL, REQUIRES, TYPE, CASE, SET, KwInt, KwFloat, KwString, EOF,
	}
	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt {
			t.Fatalf("tests[%d]: type = %s, want %s", i, tok.Type, tt)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		typ   TokenType
	}{
		{"123", INT},
		{"0", INT},
		{"1.5", FLOAT},
		{"1.5e10", FLOAT},
		{"1e-3", FLOAT},
		{"1e+3", FLOAT},
	}
	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("input %q: type = %s, want %s", tt.input, tok.Type, tt.typ)
		}
		if tok.Literal != tt.input {
			t.Fatalf("input %q: literal = %q", tt.input, tok.Literal)
		}
	}
}

func TestStringLiteralEscapes(t *testing.T) {
	l := New(`"hello\nworld"`)
	tok := l.NextToken()
	if tok.Type != STRING {
		t.Fatalf("type = %s, want STRING", tok.Type)
	}
	if tok.Literal != "hello\nworld" {
		t.Fatalf("literal = %q", tok.Literal)
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	l := New(`"oops`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}

func TestLineCommentSkipped(t *testing.T) {
	l := New("1 // trailing comment\n2")
	first := l.NextToken()
	second := l.NextToken()
	if first.Literal != "1" || second.Literal != "2" {
		t.Fatalf("got %q, %q", first.Literal, second.Literal)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := New("1 2 3")
	if got := l.Peek(1).Literal; got != "2" {
		t.Fatalf("Peek(1) = %q, want 2", got)
	}
	if got := l.NextToken().Literal; got != "1" {
		t.Fatalf("NextToken() = %q, want 1", got)
	}
	if got := l.NextToken().Literal; got != "2" {
		t.Fatalf("NextToken() = %q, want 2", got)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := New("1 2 3")
	l.NextToken()
	saved := l.SaveState()
	l.NextToken()
	l.RestoreState(saved)
	if got := l.NextToken().Literal; got != "2" {
		t.Fatalf("after restore, got %q, want 2", got)
	}
}

func TestTokenOffsetsAreAdjacentWithoutWhitespace(t *testing.T) {
	l := New("f(x)")
	f := l.NextToken()
	paren := l.NextToken()
	if paren.Pos.Offset > f.EndOffset {
		t.Fatalf("expected adjacent tokens to have touching offsets, got f end %d, ( start %d", f.EndOffset, paren.Pos.Offset)
	}
}

func TestBOMStripped(t *testing.T) {
	l := New("\xEF\xBB\xBF1")
	tok := l.NextToken()
	if tok.Literal != "1" {
		t.Fatalf("got %q, want 1", tok.Literal)
	}
}

func TestIllegalCharacterRecordsError(t *testing.T) {
	l := New("$")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("type = %s, want ILLEGAL", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 error, got %d", len(l.Errors()))
	}
}
