package ast

import (
	"strings"

	"github.com/wye-lang/wye/internal/span"
	"github.com/wye-lang/wye/internal/types"
)

// EnumVariantDecl is one `Name` or `Name with Type` arm of an enum
// declaration.
type EnumVariantDecl struct {
	Name  string
	Field types.Type // nil when the variant carries no payload
}

// EnumDecl declares a sum type: enum Name 'a, ... = Variant (| Variant)*.
type EnumDecl struct {
	Name         string
	NameSp       span.Option
	PolytypeVars []PolytypeDecl
	Variants     []EnumVariantDecl
	Sp           span.Option
}

func (d *EnumDecl) statementNode() {}
func (d *EnumDecl) Span() span.Option { return d.Sp }
func (d *EnumDecl) String() string {
	var b strings.Builder
	b.WriteString("enum ")
	b.WriteString(d.Name)
	for _, v := range d.PolytypeVars {
		b.WriteString(" ")
		b.WriteString(v.String())
	}
	b.WriteString(" = ")
	for i, v := range d.Variants {
		if i > 0 {
			b.WriteString(" | ")
		}
		b.WriteString(v.Name)
		if v.Field != nil {
			b.WriteString(" with ")
			b.WriteString(v.Field.String())
		}
	}
	return b.String()
}

// StructMember is one `name: Type` field of a struct declaration.
type StructMember struct {
	Name string
	Type types.Type
}

// StructDecl declares a product type: struct Name 'a, ... { name: Type, ... }.
type StructDecl struct {
	Name         string
	NameSp       span.Option
	PolytypeVars []PolytypeDecl
	Members      []StructMember
	Sp           span.Option
}

func (d *StructDecl) statementNode() {}
func (d *StructDecl) Span() span.Option { return d.Sp }
func (d *StructDecl) String() string {
	var b strings.Builder
	b.WriteString("struct ")
	b.WriteString(d.Name)
	for _, v := range d.PolytypeVars {
		b.WriteString(" ")
		b.WriteString(v.String())
	}
	b.WriteString(" { ")
	for i, m := range d.Members {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(m.Name)
		b.WriteString(": ")
		b.WriteString(m.Type.String())
	}
	b.WriteString(" }")
	return b.String()
}

// InterfaceRequires is one entry of an interface's `requires` clause: the
// name of another interface this one subsumes, plus any type arguments.
type InterfaceRequires struct {
	Name         string
	PolytypeVars []PolytypeDecl
}

// InterfaceSpecMethod is an unimplemented method signature: name: Type.
type InterfaceSpecMethod struct {
	Name string
	Type types.Type
}

// InterfaceValue is a plain (non-method) value requirement: name: Type.
type InterfaceValue struct {
	Name string
	Type types.Type
}

// InterfaceDecl declares a structural bound: a set of methods/values a
// satisfying struct must provide, with optional default implementations.
type InterfaceDecl struct {
	Name         string
	NameSp       span.Option
	PolytypeVars []PolytypeDecl
	Requires     []InterfaceRequires
	ImplMethods  []VarWithValue
	SpecMethods  []InterfaceSpecMethod
	Values       []InterfaceValue
	Sp           span.Option
}

func (d *InterfaceDecl) statementNode() {}
func (d *InterfaceDecl) Span() span.Option { return d.Sp }
func (d *InterfaceDecl) String() string {
	var b strings.Builder
	b.WriteString("interface ")
	b.WriteString(d.Name)
	for _, v := range d.PolytypeVars {
		b.WriteString(" ")
		b.WriteString(v.String())
	}
	if len(d.Requires) > 0 {
		b.WriteString(" requires ")
		for i, r := range d.Requires {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(r.Name)
		}
	}
	b.WriteString(" { ... }")
	return b.String()
}

// InterfaceImpl is `impl StructName: InterfaceName { ... }`, associating a
// struct with attribute mutations and method implementations. If
// ImplementedInterface is empty, this is an inherent impl block (methods
// attached directly to the struct, no interface named).
type InterfaceImpl struct {
	ForStruct            string
	ForStructVars        []PolytypeDecl
	ImplementedInterface string
	InterfaceVars        []PolytypeDecl
	AttrSets             []AttrSet
	MethodImpls          []VarWithValue
	Sp                   span.Option
}

func (d *InterfaceImpl) statementNode() {}
func (d *InterfaceImpl) Span() span.Option { return d.Sp }
func (d *InterfaceImpl) String() string {
	if d.ImplementedInterface == "" {
		return "impl " + d.ForStruct + " { ... }"
	}
	return "impl " + d.ForStruct + ": " + d.ImplementedInterface + " { ... }"
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Expr Expression
	Sp   span.Option
}

func (s *ExpressionStatement) statementNode() {}
func (s *ExpressionStatement) Span() span.Option { return s.Sp }
func (s *ExpressionStatement) String() string     { return s.Expr.String() }

// ErrorStatement records a parse error recovered at statement granularity.
type ErrorStatement struct {
	Message string
	Sp      span.Option
}

func (s *ErrorStatement) statementNode() {}
func (s *ErrorStatement) Span() span.Option { return s.Sp }
func (s *ErrorStatement) String() string     { return "<error: " + s.Message + ">" }
