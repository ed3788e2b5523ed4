package typecheck

import (
	"fmt"

	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/span"
	"github.com/wye-lang/wye/internal/types"
)

// registerDeclarations is a pre-pass over every top-level EnumDecl,
// StructDecl, and InterfaceDecl so that expression checking (which may
// reference any of them in any order, including forward references) can
// look them up by name. It also reports duplicate top-level names and
// variants duplicated across distinct enums, both part of the type-error
// taxonomy (spec.md §7).
func (tc *TypeContext) registerDeclarations(prog *ast.Program) {
	declaredNames := map[string]bool{}
	variantOwner := map[string]string{}

	for _, stmt := range prog.Statements {
		switch d := stmt.(type) {
		case *ast.EnumDecl:
			tc.checkDuplicateName(d.Name, d.Span(), declaredNames)
			tc.Enums[d.Name] = d
			for _, pv := range d.PolytypeVars {
				tc.QuantifiedTypevars[pv.Name] = pv.Bound
			}
			for _, v := range d.Variants {
				if owner, ok := variantOwner[v.Name]; ok && owner != d.Name {
					tc.recordError(d.Span(), fmt.Sprintf(
						"variant %q is declared in both enum %q and enum %q", v.Name, owner, d.Name))
				}
				variantOwner[v.Name] = d.Name
			}

		case *ast.StructDecl:
			tc.checkDuplicateName(d.Name, d.Span(), declaredNames)
			tc.Structs[d.Name] = d
			for _, pv := range d.PolytypeVars {
				tc.QuantifiedTypevars[pv.Name] = pv.Bound
			}

		case *ast.InterfaceDecl:
			tc.checkDuplicateName(d.Name, d.Span(), declaredNames)
			tc.Interfaces[d.Name] = d
			for _, pv := range d.PolytypeVars {
				tc.QuantifiedTypevars[pv.Name] = pv.Bound
			}
			tc.Bounds[d.Name] = tc.interfaceToBound(d)
		}
	}
}

func (tc *TypeContext) checkDuplicateName(name string, sp span.Option, declared map[string]bool) {
	if declared[name] {
		tc.recordError(sp, fmt.Sprintf("duplicate top-level name %q", name))
		return
	}
	declared[name] = true
}

// interfaceToBound turns an interface declaration into the structural
// constraint later checked by types.InterfaceBound.IsSatisfiedBy: every
// specified and default-implemented method, plus every plain value member.
func (tc *TypeContext) interfaceToBound(d *ast.InterfaceDecl) types.InterfaceBound {
	methods := map[string]types.Type{}
	for _, m := range d.SpecMethods {
		methods[m.Name] = tc.freshenHoles(m.Type)
	}
	for _, m := range d.ImplMethods {
		methods[m.Name] = tc.varWithValueType(m)
	}
	values := map[string]types.Type{}
	for _, v := range d.Values {
		values[v.Name] = tc.freshenHoles(v.Type)
	}
	return types.InterfaceBound{
		Name:      d.Name,
		Structure: types.NewStructure(methods, values, types.Exact),
	}
}

// varWithValueType builds the curried function type a VarWithValue's
// signature describes from its argument and output annotations, replacing
// any unannotated parameter or output (types.Hole) with a fresh variable —
// a default method body whose argument types are inferred rather than
// declared still needs a concrete shape to sit inside the bound's Record.
func (tc *TypeContext) varWithValueType(v ast.VarWithValue) types.Type {
	parts := make([]types.Type, 0, len(v.Args)+1)
	for _, p := range v.Args {
		parts = append(parts, tc.freshenHoles(p.Type))
	}
	if v.OutType != nil {
		parts = append(parts, tc.freshenHoles(v.OutType))
	} else {
		parts = append(parts, tc.genVar())
	}
	t, err := types.CollectFuncType(parts)
	if err != nil {
		return types.Hole{}
	}
	return t
}

// checkStatement type-checks one top-level statement after declarations
// have already been registered by registerDeclarations.
func (tc *TypeContext) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		tc.infer(s.Expr)
	case *ast.EnumDecl, *ast.StructDecl:
		// Already registered; declarations carry no executable body.
	case *ast.InterfaceDecl:
		tc.checkInterfaceDecl(s)
	case *ast.InterfaceImpl:
		tc.checkInterfaceImpl(s)
	case *ast.ErrorStatement:
		tc.recordError(s.Span(), s.Message)
	}
}

// checkInterfaceDecl type-checks every default method body an interface
// provides. Method names are scoped to the interface, not the program, so
// bindings are popped immediately after each body is checked.
func (tc *TypeContext) checkInterfaceDecl(d *ast.InterfaceDecl) {
	for _, m := range d.ImplMethods {
		_, pop := tc.bindFunction(m)
		pop()
	}
}

// checkInterfaceImpl type-checks an impl block's method bodies and
// attribute setters, then, if it names an interface, verifies the impl's
// methods satisfy that interface's bound.
func (tc *TypeContext) checkInterfaceImpl(s *ast.InterfaceImpl) {
	if _, ok := tc.Structs[s.ForStruct]; !ok {
		tc.recordError(s.Span(), fmt.Sprintf("unknown type constructor %q in impl", s.ForStruct))
	}

	methods := map[string]types.Type{}
	for _, m := range s.MethodImpls {
		resolved, pop := tc.bindFunction(m)
		pop()
		methods[m.Name] = resolved
	}
	for _, a := range s.AttrSets {
		tc.infer(a.NewExpr)
	}

	if s.ImplementedInterface == "" {
		return
	}
	bound, ok := tc.Bounds[s.ImplementedInterface]
	if !ok {
		tc.recordError(s.Span(), fmt.Sprintf("unknown interface %q", s.ImplementedInterface))
		return
	}
	implType := types.Record{Structure: types.NewStructure(methods, nil, types.Exact)}
	if !bound.IsSatisfiedBy(implType, tc.Subst) {
		tc.recordError(s.Span(), fmt.Sprintf(
			"struct %q does not satisfy interface %q", s.ForStruct, s.ImplementedInterface))
	}
}
