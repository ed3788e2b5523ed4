// Package types defines Wye's type representation: the sum of concrete
// types, structural records, and the inference variables used by the
// checker in internal/typecheck.
//
// Every concrete Type is its own struct implementing the Type interface,
// mirroring the lexer/AST convention of one struct per grammar variant
// (internal/lexer, internal/ast) rather than a single tagged struct.
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Type is any member of Wye's type sum. Implementations are value types and
// safe to compare by reference identity only through Equal, never with ==.
type Type interface {
	fmt.Stringer
	isType()
}

// None is the unit-ish type of an expression with no useful value
// (Expression.Nothing).
type None struct{}

func (None) isType()      {}
func (None) String() string { return "none" }

// Int is the built-in integer type.
type Int struct{}

func (Int) isType()        {}
func (Int) String() string { return "int" }

// Float is the built-in floating-point type.
type Float struct{}

func (Float) isType()        {}
func (Float) String() string { return "float" }

// String is the built-in string type.
type String struct{}

func (String) isType()        {}
func (String) String() string { return "string" }

// TypeID is a reference to a declared type constructor (enum or struct)
// applied to type arguments. Which of enum/struct it names is not known
// until the checker resolves it against TypeContext's declarations.
type TypeID struct {
	Name string
	Args []Type
}

func (TypeID) isType() {}
func (t TypeID) String() string {
	if len(t.Args) == 0 {
		return t.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Name + " " + strings.Join(parts, " ")
}

// List is a homogeneous list type.
type List struct {
	Elem Type
}

func (List) isType() {}
func (t List) String() string {
	return "[" + t.Elem.String() + "]"
}

// Tuple is a fixed-arity heterogeneous product type.
type Tuple struct {
	Elems []Type
}

func (Tuple) isType() {}
func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Record is a structural or nominal record type, described by a Structure.
type Record struct {
	Structure Structure
}

func (Record) isType() {}
func (t Record) String() string {
	return t.Structure.String()
}

// Function is a curried single-argument function type: Arg -> Ret. A
// multi-argument function is a chain of Functions (see CollectFuncType).
type Function struct {
	Arg Type
	Ret Type
}

func (Function) isType() {}
func (t Function) String() string {
	argStr := t.Arg.String()
	if _, ok := t.Arg.(Function); ok {
		argStr = "(" + argStr + ")"
	}
	return argStr + " -> " + t.Ret.String()
}

// Poly is a universally-quantified type variable, rigid inside the
// definition that introduces it and instantiated to a fresh Variable at
// every use of a let-generalised binding. Bound, if non-empty, names an
// interface or struct the variable is constrained to satisfy.
type Poly struct {
	Name  string
	Bound string // empty means unbounded
}

func (Poly) isType() {}
func (t Poly) String() string {
	if t.Bound != "" {
		return "'" + t.Name + ": " + t.Bound
	}
	return "'" + t.Name
}

// Hole is the surface-syntax placeholder for "infer this type", written
// `_` in a type annotation. The checker replaces every Hole with a fresh
// Variable before unification; Hole itself never appears in a solved type.
type Hole struct{}

func (Hole) isType()        {}
func (Hole) String() string { return "_" }

// Variable is an inference unknown, monotonically numbered per
// TypeContext. Bound, if non-empty, carries the name of the
// structural/interface constraint the variable was created with (see
// internal/typecheck's genVarBound). Unify does not check it when it binds
// the variable.
type Variable struct {
	ID    int
	Bound string
}

func (Variable) isType() {}
func (t Variable) String() string {
	return fmt.Sprintf("t%d", t.ID)
}

// CollectFuncType folds [t1, ..., tn] into the right-associated chain
// Function(t1, Function(t2, ... tn)). It rejects empty input, and returns
// t1 unchanged when len(ts) == 1.
func CollectFuncType(ts []Type) (Type, error) {
	if len(ts) == 0 {
		return nil, fmt.Errorf("collect_functype: at least one type is required")
	}
	if len(ts) == 1 {
		return ts[0], nil
	}
	rest, err := CollectFuncType(ts[1:])
	if err != nil {
		return nil, err
	}
	return Function{Arg: ts[0], Ret: rest}, nil
}

// Equal reports whether a and b are structurally identical types. Record
// field sets compare by canonical (sorted) order, so source order of
// fields never affects equality.
func Equal(a, b Type) bool {
	switch av := a.(type) {
	case None:
		_, ok := b.(None)
		return ok
	case Int:
		_, ok := b.(Int)
		return ok
	case Float:
		_, ok := b.(Float)
		return ok
	case String:
		_, ok := b.(String)
		return ok
	case Hole:
		_, ok := b.(Hole)
		return ok
	case TypeID:
		bv, ok := b.(TypeID)
		if !ok || av.Name != bv.Name || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case List:
		bv, ok := b.(List)
		return ok && Equal(av.Elem, bv.Elem)
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av.Elems) != len(bv.Elems) {
			return false
		}
		for i := range av.Elems {
			if !Equal(av.Elems[i], bv.Elems[i]) {
				return false
			}
		}
		return true
	case Record:
		bv, ok := b.(Record)
		return ok && av.Structure.Equal(bv.Structure)
	case Function:
		bv, ok := b.(Function)
		return ok && Equal(av.Arg, bv.Arg) && Equal(av.Ret, bv.Ret)
	case Poly:
		bv, ok := b.(Poly)
		return ok && av.Name == bv.Name
	case Variable:
		bv, ok := b.(Variable)
		return ok && av.ID == bv.ID
	default:
		return false
	}
}

// sortedKeys returns a map's keys in ascending order, used everywhere a
// record's field set must be visited canonically rather than in Go's
// randomized map order.
func sortedKeys(m map[string]Type) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
