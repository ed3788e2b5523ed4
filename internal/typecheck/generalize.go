package typecheck

import (
	"fmt"

	"github.com/wye-lang/wye/internal/types"
)

// generalizedPolyPrefix marks a Poly synthesised by generalize (as opposed
// to one written directly in source as a rigid parameter/field annotation).
// Only these are re-instantiated to fresh variables on Identifier lookup;
// a source-written Poly stays rigid for the lifetime of the definition that
// introduced it, per spec.md §4.3's "rigid inside the definition" rule.
const generalizedPolyPrefix = "g"

// substPolyNames walks t, replacing every Poly whose Name is a key of
// mapping with its image. It is the Poly-keyed counterpart of
// types.ApplySubst, which only replaces Variable nodes.
func substPolyNames(t types.Type, mapping map[string]types.Type) types.Type {
	switch v := t.(type) {
	case types.Poly:
		if repl, ok := mapping[v.Name]; ok {
			return repl
		}
		return v
	case types.TypeID:
		args := make([]types.Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = substPolyNames(a, mapping)
		}
		return types.TypeID{Name: v.Name, Args: args}
	case types.List:
		return types.List{Elem: substPolyNames(v.Elem, mapping)}
	case types.Tuple:
		elems := make([]types.Type, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = substPolyNames(e, mapping)
		}
		return types.Tuple{Elems: elems}
	case types.Function:
		return types.Function{Arg: substPolyNames(v.Arg, mapping), Ret: substPolyNames(v.Ret, mapping)}
	case types.Record:
		methods := make(map[string]types.Type, len(v.Structure.Methods))
		for k, mt := range v.Structure.Methods {
			methods[k] = substPolyNames(mt, mapping)
		}
		values := make(map[string]types.Type, len(v.Structure.Values))
		for k, vt := range v.Structure.Values {
			values[k] = substPolyNames(vt, mapping)
		}
		return types.Record{Structure: types.NewStructure(methods, values, v.Structure.Flex)}
	default:
		return t
	}
}

// freshenHoles walks an annotation type as written in source, replacing
// every Hole ("_", or a parameter with no annotation at all — parseParam
// fills in types.Hole{} rather than leaving Type nil) with its own fresh
// inference variable. Unify has no case for Hole, so every annotation must
// pass through this before it reaches bindFunction's unification calls.
func (tc *TypeContext) freshenHoles(t types.Type) types.Type {
	switch v := t.(type) {
	case types.Hole:
		return tc.genVar()
	case types.TypeID:
		args := make([]types.Type, len(v.Args))
		for i, a := range v.Args {
			args[i] = tc.freshenHoles(a)
		}
		return types.TypeID{Name: v.Name, Args: args}
	case types.List:
		return types.List{Elem: tc.freshenHoles(v.Elem)}
	case types.Tuple:
		elems := make([]types.Type, len(v.Elems))
		for i, e := range v.Elems {
			elems[i] = tc.freshenHoles(e)
		}
		return types.Tuple{Elems: elems}
	case types.Function:
		return types.Function{Arg: tc.freshenHoles(v.Arg), Ret: tc.freshenHoles(v.Ret)}
	case types.Record:
		methods := make(map[string]types.Type, len(v.Structure.Methods))
		for k, mt := range v.Structure.Methods {
			methods[k] = tc.freshenHoles(mt)
		}
		values := make(map[string]types.Type, len(v.Structure.Values))
		for k, vt := range v.Structure.Values {
			values[k] = tc.freshenHoles(vt)
		}
		return types.Record{Structure: types.NewStructure(methods, values, v.Structure.Flex)}
	default:
		return t
	}
}

// collectVars gathers every Variable id occurring in t.
func collectVars(t types.Type, out map[int]bool) {
	switch v := t.(type) {
	case types.Variable:
		out[v.ID] = true
	case types.List:
		collectVars(v.Elem, out)
	case types.Tuple:
		for _, e := range v.Elems {
			collectVars(e, out)
		}
	case types.Function:
		collectVars(v.Arg, out)
		collectVars(v.Ret, out)
	case types.TypeID:
		for _, a := range v.Args {
			collectVars(a, out)
		}
	case types.Record:
		for _, m := range v.Structure.Methods {
			collectVars(m, out)
		}
		for _, val := range v.Structure.Values {
			collectVars(val, out)
		}
	}
}

// collectGeneralizedPolys gathers the (name -> bound) of every Poly in t
// whose name carries generalizedPolyPrefix.
func collectGeneralizedPolys(t types.Type, out map[string]string) {
	switch v := t.(type) {
	case types.Poly:
		if len(v.Name) > 0 && v.Name[:1] == generalizedPolyPrefix {
			out[v.Name] = v.Bound
		}
	case types.TypeID:
		for _, a := range v.Args {
			collectGeneralizedPolys(a, out)
		}
	case types.List:
		collectGeneralizedPolys(v.Elem, out)
	case types.Tuple:
		for _, e := range v.Elems {
			collectGeneralizedPolys(e, out)
		}
	case types.Function:
		collectGeneralizedPolys(v.Arg, out)
		collectGeneralizedPolys(v.Ret, out)
	case types.Record:
		for _, m := range v.Structure.Methods {
			collectGeneralizedPolys(m, out)
		}
		for _, val := range v.Structure.Values {
			collectGeneralizedPolys(val, out)
		}
	}
}

// instantiate replaces every generalized Poly in t (one produced by a prior
// generalize call at a let-in boundary) with a fresh inference variable,
// one fresh variable per distinct polytype name so that e.g. `id 3` and
// `id "s"` against the same generalised `∀g0. g0 -> g0` get independent
// instantiations. Poly nodes written directly in source (rigid parameter
// or field annotations) are left untouched.
func (tc *TypeContext) instantiate(t types.Type) types.Type {
	polys := map[string]string{}
	collectGeneralizedPolys(t, polys)
	if len(polys) == 0 {
		return t
	}
	mapping := make(map[string]types.Type, len(polys))
	for name, bound := range polys {
		mapping[name] = tc.genVarBound(bound)
	}
	return substPolyNames(t, mapping)
}

// generalize converts every inference variable still free in t, but not
// free anywhere in envSnapshot (the environment as it stood outside the
// let being generalised), into a fresh Poly — let-generalisation at a
// let-in boundary, per spec.md §4.4.
func (tc *TypeContext) generalize(t types.Type, envSnapshot map[string]types.Type) types.Type {
	resolved := types.ApplySubst(tc.Subst, t)

	freeInType := map[int]bool{}
	collectVars(resolved, freeInType)

	freeInEnv := map[int]bool{}
	for _, et := range envSnapshot {
		collectVars(types.ApplySubst(tc.Subst, et), freeInEnv)
	}

	genSubst := types.Substitution{}
	for id := range freeInType {
		if !freeInEnv[id] {
			genSubst[id] = types.Poly{Name: fmt.Sprintf("%s%d", generalizedPolyPrefix, id)}
		}
	}
	if len(genSubst) == 0 {
		return resolved
	}
	return types.ApplySubst(genSubst, resolved)
}
