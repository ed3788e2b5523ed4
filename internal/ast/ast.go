// Package ast defines the Abstract Syntax Tree for Wye programs.
//
// A Wye program is a sequence of Statements. Expressions evaluate to
// values; Patterns appear only on the left side of match arms. Every node
// carries a span.Option so the checker and diagnostics can point back at
// source text, following the one-struct-per-variant convention also used
// by internal/types for the type sum.
package ast

import (
	"strings"

	"github.com/wye-lang/wye/internal/span"
	"github.com/wye-lang/wye/internal/types"
)

// Node is the base interface every AST node implements.
type Node interface {
	// String renders the node for debugging and snapshot tests.
	String() string
	// Span returns the node's source range, or span.None if the node was
	// built without one (as hand-constructed test fixtures may be).
	Span() span.Option
}

// Expression is any node that evaluates to a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is a top-level program entry: a declaration or a bare
// expression/main block.
type Statement interface {
	Node
	statementNode()
}

// Pattern is a match-arm pattern.
type Pattern interface {
	Node
	patternNode()
}

// Program is the root node: an ordered sequence of statements.
type Program struct {
	Statements []Statement
}

func (p *Program) Span() span.Option {
	var spans []span.Option
	for _, s := range p.Statements {
		spans = append(spans, s.Span())
	}
	return span.WidestOption(spans)
}

func (p *Program) String() string {
	var b strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// PolytypeDecl is a polymorphic type-variable introduction, optionally
// bound to an interface: 'a or 'a: Showable.
type PolytypeDecl struct {
	Name  string
	Bound string // empty means unbounded
	Sp    span.Option
}

func (d PolytypeDecl) Span() span.Option { return d.Sp }
func (d PolytypeDecl) String() string {
	if d.Bound != "" {
		return "'" + d.Name + ": " + d.Bound
	}
	return "'" + d.Name
}

// VarWithValue is the common shape of a let binding, a struct/interface
// method implementation, and (via args) any multi-argument function
// definition: a name, zero or more (argName, argType) pairs, a declared or
// inferred output type, and a defining expression.
type VarWithValue struct {
	Name    string
	NameSp  span.Option
	Args    []Param
	ArgsSp  span.Option
	OutType types.Type
	Expr    Expression
	Sp      span.Option
}

// Param is one (name, type) argument of a VarWithValue.
type Param struct {
	Name string
	Type types.Type
}

func (v VarWithValue) Span() span.Option { return v.Sp }
func (v VarWithValue) String() string {
	var b strings.Builder
	b.WriteString(v.Name)
	for _, a := range v.Args {
		b.WriteString(" ")
		b.WriteString(a.Name)
	}
	b.WriteString(" = ")
	if v.Expr != nil {
		b.WriteString(v.Expr.String())
	}
	return b.String()
}

// AttrSet is `set entity.attribute = expr`, legal only inside method
// bodies.
type AttrSet struct {
	Entity      string
	EntitySp    span.Option
	Attribute   string
	AttributeSp span.Option
	NewExpr     Expression
	Sp          span.Option
}

func (a AttrSet) Span() span.Option { return a.Sp }
func (a AttrSet) String() string {
	expr := ""
	if a.NewExpr != nil {
		expr = a.NewExpr.String()
	}
	return "set " + a.Entity + "." + a.Attribute + " = " + expr
}

// InterfaceMemberType distinguishes an interface's methods from its plain
// values when reporting bound-satisfaction diagnostics.
type InterfaceMemberType int

const (
	MemberValue InterfaceMemberType = iota
	MemberMethod
)

func (m InterfaceMemberType) String() string {
	if m == MemberMethod {
		return "method"
	}
	return "value"
}
