package ast

import (
	"testing"

	"github.com/wye-lang/wye/internal/span"
)

func TestProgramString(t *testing.T) {
	prog := &Program{Statements: []Statement{
		&ExpressionStatement{Expr: IntLiteral{Value: 1}},
		&ExpressionStatement{Expr: IntLiteral{Value: 2}},
	}}
	want := "1\n2"
	if got := prog.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProgramSpanCoversAllStatements(t *testing.T) {
	prog := &Program{Statements: []Statement{
		&ExpressionStatement{Expr: IntLiteral{Value: 1}, Sp: span.Some(span.New(0, 1))},
		&ExpressionStatement{Expr: IntLiteral{Value: 2}, Sp: span.Some(span.New(5, 6))},
	}}
	got, ok := prog.Span().Get()
	if !ok {
		t.Fatal("expected a valid span")
	}
	if want := span.New(0, 6); got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestLambdaString(t *testing.T) {
	l := Lambda{Args: []string{"x", "y"}, Expr: Identifier{Name: "x"}}
	want := `\x y -> x`
	if got := l.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMatchConstructString(t *testing.T) {
	m := MatchConstruct{
		Matchand: Identifier{Name: "xs"},
		Arms: []MatchArm{
			{Pattern: EmptyListPattern{}, Expr: IntLiteral{Value: 0}},
			{Pattern: ListConsPattern{Head: "h", Tail: "t"}, Expr: Identifier{Name: "h"}},
		},
	}
	want := "match xs { [] => 0, h :: t => h }"
	if got := m.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestCollectFuncApplication(t *testing.T) {
	f := Identifier{Name: "f", Sp: span.Some(span.New(0, 1))}
	a := IntLiteral{Value: 1, Sp: span.Some(span.New(2, 3))}
	b := IntLiteral{Value: 2, Sp: span.Some(span.New(4, 5))}

	got := CollectFuncApplication(f, []Expression{a, b})
	want := "f 1 2"
	if got.String() != want {
		t.Fatalf("got %q, want %q", got.String(), want)
	}

	outer, ok := got.(FuncApplication)
	if !ok {
		t.Fatalf("expected outermost node to be a FuncApplication, got %T", got)
	}
	if _, ok := outer.Func.(FuncApplication); !ok {
		t.Fatalf("expected left-leaning chain, got %T as inner func", outer.Func)
	}
	sp, ok := got.Span().Get()
	if !ok {
		t.Fatal("expected a valid span")
	}
	if want := span.New(0, 5); sp != want {
		t.Fatalf("got %+v, want %+v", sp, want)
	}
}

func TestSpansOverlapDetectsTouchingTokens(t *testing.T) {
	f := Identifier{Name: "f", Sp: span.Some(span.New(0, 1))}
	paren := TupleExpr{Sp: span.Some(span.New(1, 4))} // touches f's span, no whitespace
	if !SpansOverlap([]Node{f, paren}) {
		t.Fatal("expected touching spans to be reported as overlapping")
	}

	g := Identifier{Name: "g", Sp: span.Some(span.New(0, 1))}
	spaced := TupleExpr{Sp: span.Some(span.New(3, 6))}
	if SpansOverlap([]Node{g, spaced}) {
		t.Fatal("expected spans separated by whitespace to not overlap")
	}
}

func TestConditionalString(t *testing.T) {
	c := Conditional{
		Cond: Identifier{Name: "b"},
		Then: IntLiteral{Value: 1},
		Else: IntLiteral{Value: 2},
	}
	want := "if b then 1 else 2"
	if got := c.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEnumDeclString(t *testing.T) {
	d := &EnumDecl{
		Name: "Option",
		PolytypeVars: []PolytypeDecl{{Name: "a"}},
		Variants: []EnumVariantDecl{
			{Name: "None"},
			{Name: "Some"},
		},
	}
	want := "enum Option 'a = None | Some"
	if got := d.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
