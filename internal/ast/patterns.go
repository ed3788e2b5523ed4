package ast

import (
	"strconv"
	"strings"

	"github.com/wye-lang/wye/internal/span"
)

// WildcardPattern matches anything, binding nothing: `_`.
type WildcardPattern struct{ Sp span.Option }

func (p WildcardPattern) patternNode()  {}
func (p WildcardPattern) Span() span.Option { return p.Sp }
func (p WildcardPattern) String() string    { return "_" }

// IntPattern matches an exact integer literal.
type IntPattern struct {
	Value int64
	Sp    span.Option
}

func (p IntPattern) patternNode()  {}
func (p IntPattern) Span() span.Option { return p.Sp }
func (p IntPattern) String() string    { return strconv.FormatInt(p.Value, 10) }

// FloatPattern matches an exact float literal.
type FloatPattern struct {
	Value float64
	Sp    span.Option
}

func (p FloatPattern) patternNode()  {}
func (p FloatPattern) Span() span.Option { return p.Sp }
func (p FloatPattern) String() string    { return strconv.FormatFloat(p.Value, 'g', -1, 64) }

// StringPattern matches an exact string literal.
type StringPattern struct {
	Value string
	Sp    span.Option
}

func (p StringPattern) patternNode()  {}
func (p StringPattern) Span() span.Option { return p.Sp }
func (p StringPattern) String() string    { return strconv.Quote(p.Value) }

// IdentifierPattern binds the matched value to a fresh name.
type IdentifierPattern struct {
	Name string
	Sp   span.Option
}

func (p IdentifierPattern) patternNode()  {}
func (p IdentifierPattern) Span() span.Option { return p.Sp }
func (p IdentifierPattern) String() string    { return p.Name }

// TypeVariantPattern matches a specific enum variant, optionally binding
// its payload to Bind.
type TypeVariantPattern struct {
	TypeName string
	Variant  string
	Bind     string // empty if the variant is matched without binding its field
	Sp       span.Option
}

func (p TypeVariantPattern) patternNode()  {}
func (p TypeVariantPattern) Span() span.Option { return p.Sp }
func (p TypeVariantPattern) String() string {
	s := p.TypeName + "." + p.Variant
	if p.Bind != "" {
		s += " " + p.Bind
	}
	return s
}

// ListConsPattern matches a non-empty list, splitting it into a bound
// head and tail: `head :: tail`.
type ListConsPattern struct {
	Head string
	Tail string
	Sp   span.Option
}

func (p ListConsPattern) patternNode()  {}
func (p ListConsPattern) Span() span.Option { return p.Sp }
func (p ListConsPattern) String() string    { return p.Head + " :: " + p.Tail }

// EmptyListPattern matches the empty list.
type EmptyListPattern struct{ Sp span.Option }

func (p EmptyListPattern) patternNode()  {}
func (p EmptyListPattern) Span() span.Option { return p.Sp }
func (p EmptyListPattern) String() string    { return "[]" }

// ListPattern matches a fixed-length list element by element.
type ListPattern struct {
	Elems []Pattern
	Sp    span.Option
}

func (p ListPattern) patternNode()  {}
func (p ListPattern) Span() span.Option { return p.Sp }
func (p ListPattern) String() string {
	parts := make([]string, len(p.Elems))
	for i, e := range p.Elems {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// TuplePattern matches a fixed-arity tuple element by element.
type TuplePattern struct {
	Elems []Pattern
	Sp    span.Option
}

func (p TuplePattern) patternNode()  {}
func (p TuplePattern) Span() span.Option { return p.Sp }
func (p TuplePattern) String() string {
	parts := make([]string, len(p.Elems))
	for i, e := range p.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// UnionPattern matches if any alternative matches: `pat | pat | ...`.
type UnionPattern struct {
	Alternatives []Pattern
	Sp           span.Option
}

func (p UnionPattern) patternNode()  {}
func (p UnionPattern) Span() span.Option { return p.Sp }
func (p UnionPattern) String() string {
	parts := make([]string, len(p.Alternatives))
	for i, a := range p.Alternatives {
		parts[i] = a.String()
	}
	return strings.Join(parts, " | ")
}

// ComplementPattern matches if its inner pattern does not: `!pat`.
type ComplementPattern struct {
	Inner Pattern
	Sp    span.Option
}

func (p ComplementPattern) patternNode()  {}
func (p ComplementPattern) Span() span.Option { return p.Sp }
func (p ComplementPattern) String() string    { return "!" + p.Inner.String() }

// GuardedPattern matches only if Inner matches and Guard evaluates truthy.
type GuardedPattern struct {
	Inner Pattern
	Guard Expression
	Sp    span.Option
}

func (p GuardedPattern) patternNode()  {}
func (p GuardedPattern) Span() span.Option { return p.Sp }
func (p GuardedPattern) String() string {
	return p.Inner.String() + " if " + p.Guard.String()
}

// CasePattern matches a match-without-a-scrutinee arm: `case boolExpr`,
// used inside a match over `nothing` to emulate a cond/switch statement.
type CasePattern struct {
	Condition Expression
	Sp        span.Option
}

func (p CasePattern) patternNode()  {}
func (p CasePattern) Span() span.Option { return p.Sp }
func (p CasePattern) String() string    { return "case " + p.Condition.String() }

// ErrorPattern records a parse error recovered at pattern granularity.
type ErrorPattern struct {
	Message string
	Sp      span.Option
}

func (p ErrorPattern) patternNode()  {}
func (p ErrorPattern) Span() span.Option { return p.Sp }
func (p ErrorPattern) String() string    { return "<error: " + p.Message + ">" }
