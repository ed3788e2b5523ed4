package ast

import (
	"strconv"
	"strings"

	"github.com/wye-lang/wye/internal/span"
	"github.com/wye-lang/wye/internal/types"
)

// Nothing is the `nothing` literal, the sole value of types.None.
type Nothing struct{ Sp span.Option }

func (n Nothing) expressionNode()  {}
func (n Nothing) Span() span.Option { return n.Sp }
func (n Nothing) String() string    { return "nothing" }

// IntLiteral is an integer literal.
type IntLiteral struct {
	Value int64
	Sp    span.Option
}

func (l IntLiteral) expressionNode()  {}
func (l IntLiteral) Span() span.Option { return l.Sp }
func (l IntLiteral) String() string    { return strconv.FormatInt(l.Value, 10) }

// FloatLiteral is a floating-point literal.
type FloatLiteral struct {
	Value float64
	Sp    span.Option
}

func (l FloatLiteral) expressionNode()  {}
func (l FloatLiteral) Span() span.Option { return l.Sp }
func (l FloatLiteral) String() string    { return strconv.FormatFloat(l.Value, 'g', -1, 64) }

// StringLiteral is a string literal.
type StringLiteral struct {
	Value string
	Sp    span.Option
}

func (l StringLiteral) expressionNode()  {}
func (l StringLiteral) Span() span.Option { return l.Sp }
func (l StringLiteral) String() string    { return strconv.Quote(l.Value) }

// ListExpr is a `[e1, e2, ...]` literal.
type ListExpr struct {
	Elems []Expression
	Sp    span.Option
}

func (l ListExpr) expressionNode()  {}
func (l ListExpr) Span() span.Option { return l.Sp }
func (l ListExpr) String() string {
	parts := make([]string, len(l.Elems))
	for i, e := range l.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TupleExpr is a `(e1, e2, ...)` literal.
type TupleExpr struct {
	Elems []Expression
	Sp    span.Option
}

func (t TupleExpr) expressionNode()  {}
func (t TupleExpr) Span() span.Option { return t.Sp }
func (t TupleExpr) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// RecordField is one `name: expr` entry of a record literal.
type RecordField struct {
	Name string
	Expr Expression
}

// StructRecordExpr is a bare `{ name: expr, ... }` structural record
// literal: field names must be unique, order is not significant to its
// type.
type StructRecordExpr struct {
	Fields []RecordField
	Sp     span.Option
}

func (r StructRecordExpr) expressionNode()  {}
func (r StructRecordExpr) Span() span.Option { return r.Sp }
func (r StructRecordExpr) String() string { return recordFieldsString(r.Fields, "{ ", " }") }

// NominalRecordExpr is a `{| name: expr, ... |}` nominal record literal.
// The checker gives it an Exact record type built from its fields; it is
// not matched against any declared struct.
type NominalRecordExpr struct {
	Fields []RecordField
	Sp     span.Option
}

func (r NominalRecordExpr) expressionNode()  {}
func (r NominalRecordExpr) Span() span.Option { return r.Sp }
func (r NominalRecordExpr) String() string { return recordFieldsString(r.Fields, "{| ", " |}") }

func recordFieldsString(fields []RecordField, open, close string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Name + ": " + f.Expr.String()
	}
	return open + strings.Join(parts, ", ") + close
}

// Identifier references a bound name.
type Identifier struct {
	Name string
	Sp   span.Option
}

func (i Identifier) expressionNode()  {}
func (i Identifier) Span() span.Option { return i.Sp }
func (i Identifier) String() string    { return i.Name }

// BinaryOpExpr applies a built-in infix operator, curried as a value when
// Left/Right are both nil (an operator used as a first-class function,
// e.g. passed to a higher-order function unapplied).
type BinaryOpExpr struct {
	Op    types.BinaryOp
	Left  Expression // nil if the operator appears unapplied
	Right Expression // nil if the operator appears unapplied or only Left is given
	Sp    span.Option
}

func (b BinaryOpExpr) expressionNode()  {}
func (b BinaryOpExpr) Span() span.Option { return b.Sp }
func (b BinaryOpExpr) String() string {
	if b.Left == nil && b.Right == nil {
		return "(" + b.Op.String() + ")"
	}
	return b.Left.String() + " " + b.Op.String() + " " + b.Right.String()
}

// Print is the `print` builtin used as a function value: print e.
type Print struct{ Sp span.Option }

func (p Print) expressionNode()  {}
func (p Print) Span() span.Option { return p.Sp }
func (p Print) String() string    { return "print" }

// Fail is the `fail` builtin: prints to stderr and aborts evaluation.
type Fail struct{ Sp span.Option }

func (f Fail) expressionNode()  {}
func (f Fail) Span() span.Option { return f.Sp }
func (f Fail) String() string    { return "fail" }

// EnumVariant constructs a value of a declared enum: EnumName.Variant
// (with an optional field payload).
type EnumVariant struct {
	EnumName string
	Variant  string
	Field    Expression // nil if the variant carries no payload
	Sp       span.Option
}

func (e EnumVariant) expressionNode()  {}
func (e EnumVariant) Span() span.Option { return e.Sp }
func (e EnumVariant) String() string {
	s := e.EnumName + "." + e.Variant
	if e.Field != nil {
		s += " with " + e.Field.String()
	}
	return s
}

// Projection is `entity.field`, a struct/record field access. Chained
// projections (`a.b.c`) nest: Projection(Projection(a, "b"), "c").
type Projection struct {
	Entity Expression
	Field  string
	Sp     span.Option
}

func (p Projection) expressionNode()  {}
func (p Projection) Span() span.Option { return p.Sp }
func (p Projection) String() string    { return p.Entity.String() + "." + p.Field }

// MethodAccess is `entity#method`, a struct method reference as a value.
type MethodAccess struct {
	Entity Expression
	Method string
	Sp     span.Option
}

func (m MethodAccess) expressionNode()  {}
func (m MethodAccess) Span() span.Option { return m.Sp }
func (m MethodAccess) String() string    { return m.Entity.String() + "#" + m.Method }

// FuncApplication is juxtaposition application: Func Arg. Curried
// multi-argument application is a left-leaning chain of FuncApplication
// nodes, built by CollectFuncApplication.
type FuncApplication struct {
	Func Expression
	Arg  Expression
	Sp   span.Option
}

func (f FuncApplication) expressionNode()  {}
func (f FuncApplication) Span() span.Option { return f.Sp }
func (f FuncApplication) String() string {
	return f.Func.String() + " " + f.Arg.String()
}

// NamedArg is one `name: expr` entry of a NamedArgsFuncApp.
type NamedArg struct {
	Name string
	Expr Expression
}

// NamedArgsFuncApp is a call written with named rather than positional
// arguments; a single call must use one form or the other, never both.
type NamedArgsFuncApp struct {
	Func Expression
	Args []NamedArg
	Sp   span.Option
}

func (f NamedArgsFuncApp) expressionNode()  {}
func (f NamedArgsFuncApp) Span() span.Option { return f.Sp }
func (f NamedArgsFuncApp) String() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.Name + ": " + a.Expr.String()
	}
	return f.Func.String() + "(" + strings.Join(parts, ", ") + ")"
}

// MatchArm is one `pattern => expr` arm of a match construct.
type MatchArm struct {
	Pattern Pattern
	Expr    Expression
}

// MatchConstruct is `match matchand { arm, ... }`.
type MatchConstruct struct {
	Matchand Expression
	Arms     []MatchArm
	Sp       span.Option
}

func (m MatchConstruct) expressionNode()  {}
func (m MatchConstruct) Span() span.Option { return m.Sp }
func (m MatchConstruct) String() string {
	var b strings.Builder
	b.WriteString("match ")
	b.WriteString(m.Matchand.String())
	b.WriteString(" { ")
	for i, a := range m.Arms {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(a.Pattern.String())
		b.WriteString(" => ")
		b.WriteString(a.Expr.String())
	}
	b.WriteString(" }")
	return b.String()
}

// Conditional is `if cond then t else e`; both branches must check to the
// same type.
type Conditional struct {
	Cond Expression
	Then Expression
	Else Expression
	Sp   span.Option
}

func (c Conditional) expressionNode()  {}
func (c Conditional) Span() span.Option { return c.Sp }
func (c Conditional) String() string {
	return "if " + c.Cond.String() + " then " + c.Then.String() + " else " + c.Else.String()
}

// Lambda is `\args -> expr`.
type Lambda struct {
	Args []string
	Expr Expression
	Sp   span.Option
}

func (l Lambda) expressionNode()  {}
func (l Lambda) Span() span.Option { return l.Sp }
func (l Lambda) String() string {
	return "\\" + strings.Join(l.Args, " ") + " -> " + l.Expr.String()
}

// Let is `let name args = expr` as a standalone statement-level binding
// (as opposed to LetIn, which threads a continuation).
type Let struct {
	Binding VarWithValue
	Sp      span.Option
}

func (l Let) expressionNode()  {}
func (l Let) Span() span.Option { return l.Sp }
func (l Let) String() string    { return "let " + l.Binding.String() }

// LetIn is `let name args = expr in body`.
type LetIn struct {
	Binding VarWithValue
	Body    Expression
	Sp      span.Option
}

func (l LetIn) expressionNode()  {}
func (l LetIn) Span() span.Option { return l.Sp }
func (l LetIn) String() string {
	return "let " + l.Binding.String() + " in " + l.Body.String()
}

// SetExpr is an attribute mutation used as a statement; it evaluates to
// types.None.
type SetExpr struct {
	Attr AttrSet
	Sp   span.Option
}

func (s SetExpr) expressionNode()  {}
func (s SetExpr) Span() span.Option { return s.Sp }
func (s SetExpr) String() string    { return s.Attr.String() }

// SetIn is `attrset in expr`: perform the mutation, then evaluate expr.
type SetIn struct {
	Attr AttrSet
	Body Expression
	Sp   span.Option
}

func (s SetIn) expressionNode()  {}
func (s SetIn) Span() span.Option { return s.Sp }
func (s SetIn) String() string    { return s.Attr.String() + " in " + s.Body.String() }

// ErrorExpr records a parse error recovered into an expression slot so
// parsing can continue and report multiple diagnostics in one pass.
type ErrorExpr struct {
	Message string
	Sp      span.Option
}

func (e ErrorExpr) expressionNode()  {}
func (e ErrorExpr) Span() span.Option { return e.Sp }
func (e ErrorExpr) String() string    { return "<error: " + e.Message + ">" }
