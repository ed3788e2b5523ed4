// Package typecheck implements Wye's Hindley-Milner-style type checker: a
// driver that walks a Program, maintains a mutable TypeContext (symbol
// table, fresh-variable counter, accumulated substitution, error map), and
// infers a type for every expression form, following the structure of the
// teacher's internal/semantic checker but over Wye's own AST and type
// representation in internal/ast and internal/types.
package typecheck

import (
	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/span"
	"github.com/wye-lang/wye/internal/types"
)

// TypeContext lives for one program check. Its symbol table is mutated in
// scope order as the checker enters and leaves lambdas, let-bindings, and
// match arms; Subst accumulates every unification performed so far, so a
// type returned by infer is always resolved against every constraint
// discovered up to that point.
type TypeContext struct {
	next int

	// Typings maps a name in scope to its type. A let-generalised binding
	// may store a type containing Poly nodes; see instantiate.
	Typings map[string]types.Type

	// QuantifiedTypevars records, for documentation and diagnostics, which
	// polytype names were declared by the program's enum/struct/interface
	// headers and what bound (if any) each carries.
	QuantifiedTypevars map[string]string

	// TypeErrors collects one message per offending span. A program with a
	// non-empty TypeErrors failed to check; sibling statements are still
	// visited (type errors are non-fatal per expression).
	TypeErrors map[span.Span]string

	// Subst is the single mutable substitution accumulator threaded through
	// every unification for the whole program check.
	Subst types.Substitution

	Enums      map[string]*ast.EnumDecl
	Structs    map[string]*ast.StructDecl
	Interfaces map[string]*ast.InterfaceDecl
	Bounds     map[string]types.InterfaceBound
}

// NewTypeContext returns an empty TypeContext ready for one program check.
func NewTypeContext() *TypeContext {
	return &TypeContext{
		Typings:            map[string]types.Type{},
		QuantifiedTypevars: map[string]string{},
		TypeErrors:         map[span.Span]string{},
		Subst:              types.EmptySubst(),
		Enums:              map[string]*ast.EnumDecl{},
		Structs:            map[string]*ast.StructDecl{},
		Interfaces:         map[string]*ast.InterfaceDecl{},
		Bounds:             map[string]types.InterfaceBound{},
	}
}

// genVar returns a Variable numbered tc.next and increments tc.next.
func (tc *TypeContext) genVar() types.Variable {
	id := tc.next
	tc.next++
	return types.Variable{ID: id}
}

// genVarBound is genVar with a structural/interface bound attached, used
// when instantiating a Poly that carries one.
func (tc *TypeContext) genVarBound(bound string) types.Variable {
	v := tc.genVar()
	v.Bound = bound
	return v
}

// recordError keys a message by sp's span, falling back to the zero span
// for unspanned nodes (test fixtures built without positions).
func (tc *TypeContext) recordError(sp span.Option, msg string) {
	s, ok := sp.Get()
	if !ok {
		s = span.Span{}
	}
	tc.TypeErrors[s] = msg
}

// unify wraps types.Unify, recording a type error at sp on failure. It
// reports success so callers can short-circuit to a fresh variable rather
// than propagate a bogus type.
func (tc *TypeContext) unify(sp span.Option, a, b types.Type) bool {
	if err := types.Unify(a, b, tc.Subst); err != nil {
		tc.recordError(sp, err.Error())
		return false
	}
	return true
}

// pushBinding shadows name with t and returns a closure that restores
// whatever was bound to name before (or removes it, if name was unbound),
// the mechanism every scope-introducing form (lambda, let, match arm) uses
// to pop bindings on exit.
func (tc *TypeContext) pushBinding(name string, t types.Type) func() {
	old, existed := tc.Typings[name]
	tc.Typings[name] = t
	return func() {
		if existed {
			tc.Typings[name] = old
		} else {
			delete(tc.Typings, name)
		}
	}
}
