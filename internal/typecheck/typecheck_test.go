package typecheck

import (
	"testing"

	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/lexer"
	"github.com/wye-lang/wye/internal/parser"
	"github.com/wye-lang/wye/internal/types"
)

// parseProgram parses src and fails the test if the parser reports any
// errors, mirroring internal/parser's own test helper convention.
func parseProgram(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := parser.New(lexer.New(src))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Fatalf("unexpected parser errors for %q: %v", src, p.Errors())
	}
	return prog
}

// checkExpr parses src as a single expression statement and infers its
// type against a fresh TypeContext, returning both so callers can also
// inspect accumulated errors.
func checkExpr(t *testing.T, src string) (types.Type, *TypeContext) {
	t.Helper()
	prog := parseProgram(t, src)
	if len(prog.Statements) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Statements))
	}
	stmt, ok := prog.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("expected an expression statement, got %T", prog.Statements[0])
	}
	tc := NewTypeContext()
	typ := tc.infer(stmt.Expr)
	return typ, tc
}

func TestInferIntLiteral(t *testing.T) {
	typ, tc := checkExpr(t, "4")
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	if _, ok := typ.(types.Int); !ok {
		t.Fatalf("got %s, want int", typ)
	}
}

func TestInferEmptyListIsPolymorphic(t *testing.T) {
	typ, tc := checkExpr(t, "[]")
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	lt, ok := typ.(types.List)
	if !ok {
		t.Fatalf("got %s, want a list", typ)
	}
	if _, ok := lt.Elem.(types.Variable); !ok {
		t.Fatalf("got element type %s, want an unresolved variable", lt.Elem)
	}
}

func TestInferListUnifiesElementTypes(t *testing.T) {
	typ, tc := checkExpr(t, "[4, 5]")
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	lt, ok := typ.(types.List)
	if !ok {
		t.Fatalf("got %s, want a list", typ)
	}
	if _, ok := lt.Elem.(types.Int); !ok {
		t.Fatalf("got element type %s, want int", lt.Elem)
	}
}

func TestInferListRejectsMismatchedElementTypes(t *testing.T) {
	_, tc := checkExpr(t, `[4, "hi"]`)
	if tc.Succeeded() {
		t.Fatal("expected a type error for a list mixing int and string elements")
	}
	var msg string
	for _, m := range tc.TypeErrors {
		msg = m
	}
	if msg == "" {
		t.Fatal("expected a recorded error message")
	}
}

func TestLetTopLevelBindsFunctionType(t *testing.T) {
	prog := parseProgram(t, "let f x = x + 4\nf 7")
	tc := TypeCheckProgram(prog)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	ft, ok := tc.Typings["f"].(types.Function)
	if !ok {
		t.Fatalf("got %s for f, want a function type", tc.Typings["f"])
	}
	if _, ok := ft.Arg.(types.Int); !ok {
		t.Fatalf("got argument type %s, want int", ft.Arg)
	}
	if _, ok := ft.Ret.(types.Int); !ok {
		t.Fatalf("got return type %s, want int", ft.Ret)
	}
}

func TestLetTopLevelRejectsMismatchedApplication(t *testing.T) {
	prog := parseProgram(t, `let f x = x + 4
f "hi"`)
	tc := TypeCheckProgram(prog)
	if tc.Succeeded() {
		t.Fatal("expected a type error applying f to a string")
	}
}

func TestLetInGeneralizesIdentity(t *testing.T) {
	typ, tc := checkExpr(t, "let id x = x in id 3")
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	if _, ok := typ.(types.Int); !ok {
		t.Fatalf("got %s, want int", typ)
	}
}

func TestLetInGeneralizationAllowsIndependentInstantiations(t *testing.T) {
	typ, tc := checkExpr(t, `let id x = x in (id 3, id "s")`)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	tup, ok := typ.(types.Tuple)
	if !ok || len(tup.Elems) != 2 {
		t.Fatalf("got %s, want a 2-tuple", typ)
	}
	if _, ok := tup.Elems[0].(types.Int); !ok {
		t.Fatalf("got first element %s, want int", tup.Elems[0])
	}
	if _, ok := tup.Elems[1].(types.String); !ok {
		t.Fatalf("got second element %s, want string", tup.Elems[1])
	}
}

func TestEnumVariantInstantiatesPolytypeParameter(t *testing.T) {
	prog := parseProgram(t, "enum Option 'a = None | Some with 'a\nlet x = Option.Some with 4")
	tc := TypeCheckProgram(prog)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	tid, ok := tc.Typings["x"].(types.TypeID)
	if !ok || tid.Name != "Option" {
		t.Fatalf("got %s, want Option ...", tc.Typings["x"])
	}
	if len(tid.Args) != 1 {
		t.Fatalf("got %d type arguments, want 1", len(tid.Args))
	}
	if _, ok := tid.Args[0].(types.Int); !ok {
		t.Fatalf("got type argument %s, want int", tid.Args[0])
	}
}

func TestEnumVariantRejectsUnknownVariant(t *testing.T) {
	prog := parseProgram(t, "enum Option 'a = None | Some with 'a\nOption.Bogus with 4")
	tc := TypeCheckProgram(prog)
	if tc.Succeeded() {
		t.Fatal("expected a type error for an unknown enum variant")
	}
}

func TestUnboundIdentifierIsAnError(t *testing.T) {
	_, tc := checkExpr(t, "y")
	if tc.Succeeded() {
		t.Fatal("expected a type error for an unbound identifier")
	}
}

func TestInferConditionalRequiresBoolAndUnifiesBranches(t *testing.T) {
	typ, tc := checkExpr(t, "if 1 == 2 then 1 else 2")
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	if _, ok := typ.(types.Int); !ok {
		t.Fatalf("got %s, want int", typ)
	}
}

func TestInferConditionalRejectsMismatchedBranches(t *testing.T) {
	_, tc := checkExpr(t, `if 1 == 2 then 1 else "no"`)
	if tc.Succeeded() {
		t.Fatal("expected a type error for mismatched if/else branches")
	}
}

func TestInferLambdaResolvesOperandThroughOperatorTable(t *testing.T) {
	typ, tc := checkExpr(t, `\x -> x + 1`)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	ft, ok := typ.(types.Function)
	if !ok {
		t.Fatalf("got %s, want a function type", typ)
	}
	if _, ok := ft.Arg.(types.Int); !ok {
		t.Fatalf("got argument type %s, want int", ft.Arg)
	}
	if _, ok := ft.Ret.(types.Int); !ok {
		t.Fatalf("got return type %s, want int", ft.Ret)
	}
}

func TestInferMatchUnifiesArmResults(t *testing.T) {
	typ, tc := checkExpr(t, `\xs -> match xs { [] => 0, h :: t => h }`)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	ft, ok := typ.(types.Function)
	if !ok {
		t.Fatalf("got %s, want a function type", typ)
	}
	lt, ok := ft.Arg.(types.List)
	if !ok {
		t.Fatalf("got argument type %s, want a list", ft.Arg)
	}
	if _, ok := lt.Elem.(types.Int); !ok {
		t.Fatalf("got element type %s, want int", lt.Elem)
	}
	if _, ok := ft.Ret.(types.Int); !ok {
		t.Fatalf("got return type %s, want int", ft.Ret)
	}
}

func TestInferMatchGuardRequiresBool(t *testing.T) {
	typ, tc := checkExpr(t, `\n -> match n { 0 | 1 => 1, x if x > 0 => x }`)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
	ft, ok := typ.(types.Function)
	if !ok {
		t.Fatalf("got %s, want a function type", typ)
	}
	if _, ok := ft.Arg.(types.Int); !ok {
		t.Fatalf("got argument type %s, want int", ft.Arg)
	}
	if _, ok := ft.Ret.(types.Int); !ok {
		t.Fatalf("got return type %s, want int", ft.Ret)
	}
}

func TestInferStructRecordFieldAccess(t *testing.T) {
	prog := parseProgram(t, "let r = { x: 1, y: 2 }\nr.x")
	tc := TypeCheckProgram(prog)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
}

func TestInterfaceImplSatisfiesBound(t *testing.T) {
	prog := parseProgram(t, `struct Box { value: int }
interface Showable {
  show: int -> int
}
impl Box : Showable {
  show x = x
}`)
	tc := TypeCheckProgram(prog)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
}

func TestInterfaceImplViolatesBoundIsAnError(t *testing.T) {
	prog := parseProgram(t, `struct Box { value: int }
interface Showable {
  show: int -> string
}
impl Box : Showable {
  show x = x
}`)
	tc := TypeCheckProgram(prog)
	if tc.Succeeded() {
		t.Fatal("expected a type error: show can't be both int->int and int->string")
	}
}

func TestSetInUpdatesAttributeAndReturnsBodyType(t *testing.T) {
	prog := parseProgram(t, `let counter = { value: 1 }
set counter.value = 2 in counter.value`)
	tc := TypeCheckProgram(prog)
	if !tc.Succeeded() {
		t.Fatalf("unexpected errors: %v", tc.TypeErrors)
	}
}
