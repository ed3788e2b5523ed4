package typecheck

import (
	"fmt"

	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/types"
)

// bindPattern infers the shape a pattern requires of its scrutinee and
// binds every identifier the pattern introduces, returning pop closures
// (in push order) that undo those bindings once the arm body has been
// checked.
func (tc *TypeContext) bindPattern(pat ast.Pattern) (types.Type, []func()) {
	switch p := pat.(type) {
	case ast.WildcardPattern:
		return tc.genVar(), nil

	case ast.IntPattern:
		return types.Int{}, nil

	case ast.FloatPattern:
		return types.Float{}, nil

	case ast.StringPattern:
		return types.String{}, nil

	case ast.IdentifierPattern:
		v := tc.genVar()
		return v, []func(){tc.pushBinding(p.Name, v)}

	case ast.TypeVariantPattern:
		return tc.bindTypeVariantPattern(p)

	case ast.ListConsPattern:
		elem := tc.genVar()
		pops := []func(){
			tc.pushBinding(p.Head, elem),
			tc.pushBinding(p.Tail, types.List{Elem: elem}),
		}
		return types.List{Elem: elem}, pops

	case ast.EmptyListPattern:
		return types.List{Elem: tc.genVar()}, nil

	case ast.ListPattern:
		elem := tc.genVar()
		var pops []func()
		for _, sub := range p.Elems {
			subType, subPops := tc.bindPattern(sub)
			tc.unify(sub.Span(), elem, subType)
			pops = append(pops, subPops...)
		}
		return types.List{Elem: types.ApplySubst(tc.Subst, elem)}, pops

	case ast.TuplePattern:
		elems := make([]types.Type, len(p.Elems))
		var pops []func()
		for i, sub := range p.Elems {
			subType, subPops := tc.bindPattern(sub)
			elems[i] = subType
			pops = append(pops, subPops...)
		}
		return types.Tuple{Elems: elems}, pops

	case ast.UnionPattern:
		shape := tc.genVar()
		for _, alt := range p.Alternatives {
			altType, altPops := tc.bindPattern(alt)
			tc.unify(alt.Span(), shape, altType)
			// Alternatives may bind different names inconsistently, so a
			// union pattern never exposes bindings to its arm body.
			for i := len(altPops) - 1; i >= 0; i-- {
				altPops[i]()
			}
		}
		return types.ApplySubst(tc.Subst, shape), nil

	case ast.ComplementPattern:
		innerType, innerPops := tc.bindPattern(p.Inner)
		for i := len(innerPops) - 1; i >= 0; i-- {
			innerPops[i]()
		}
		return innerType, nil

	case ast.GuardedPattern:
		innerType, innerPops := tc.bindPattern(p.Inner)
		guardType := tc.infer(p.Guard)
		tc.unify(p.Guard.Span(), guardType, types.BoolType())
		return innerType, innerPops

	case ast.CasePattern:
		condType := tc.infer(p.Condition)
		tc.unify(p.Condition.Span(), condType, types.BoolType())
		return types.None{}, nil

	case ast.ErrorPattern:
		return tc.genVar(), nil

	default:
		tc.recordError(pat.Span(), fmt.Sprintf("internal error: no pattern rule for %T", pat))
		return tc.genVar(), nil
	}
}

// bindTypeVariantPattern resolves TypeName.Variant against the program's
// declared enums, instantiating the enum's polytype parameters with fresh
// variables and binding Bind (if present) to the variant's payload type.
func (tc *TypeContext) bindTypeVariantPattern(p ast.TypeVariantPattern) (types.Type, []func()) {
	decl, ok := tc.Enums[p.TypeName]
	if !ok {
		tc.recordError(p.Span(), fmt.Sprintf("unknown type constructor %q in a variant pattern", p.TypeName))
		return tc.genVar(), nil
	}

	var variant *ast.EnumVariantDecl
	for i := range decl.Variants {
		if decl.Variants[i].Name == p.Variant {
			variant = &decl.Variants[i]
			break
		}
	}
	if variant == nil {
		tc.recordError(p.Span(), fmt.Sprintf("enum %q has no variant %q", p.TypeName, p.Variant))
		return tc.genVar(), nil
	}

	mapping := make(map[string]types.Type, len(decl.PolytypeVars))
	args := make([]types.Type, len(decl.PolytypeVars))
	for i, pv := range decl.PolytypeVars {
		v := tc.genVarBound(pv.Bound)
		mapping[pv.Name] = v
		args[i] = v
	}
	result := types.TypeID{Name: decl.Name, Args: args}

	if p.Bind == "" {
		return result, nil
	}
	if variant.Field == nil {
		tc.recordError(p.Span(), fmt.Sprintf("variant %s.%s carries no payload to bind", p.TypeName, p.Variant))
		return result, nil
	}
	fieldType := substPolyNames(variant.Field, mapping)
	return result, []func(){tc.pushBinding(p.Bind, fieldType)}
}
