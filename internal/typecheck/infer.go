package typecheck

import (
	"fmt"

	"github.com/wye-lang/wye/internal/ast"
	"github.com/wye-lang/wye/internal/span"
	"github.com/wye-lang/wye/internal/types"
)

// infer dispatches on the expression's concrete form, returning its
// inferred type resolved against tc.Subst as of the moment it returns
// (every nested call has already mutated tc.Subst in place, so applying it
// once more at the boundary picks up everything learned along the way).
func (tc *TypeContext) infer(expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case ast.Nothing:
		return types.None{}
	case ast.IntLiteral:
		return types.Int{}
	case ast.FloatLiteral:
		return types.Float{}
	case ast.StringLiteral:
		return types.String{}
	case ast.ListExpr:
		return tc.inferList(e)
	case ast.TupleExpr:
		return types.ApplySubst(tc.Subst, tc.inferTuple(e))
	case ast.StructRecordExpr:
		return types.ApplySubst(tc.Subst, tc.inferRecord(e.Fields, types.Permissive))
	case ast.NominalRecordExpr:
		return types.ApplySubst(tc.Subst, tc.inferRecord(e.Fields, types.Exact))
	case ast.Identifier:
		return tc.inferIdentifier(e)
	case ast.BinaryOpExpr:
		return tc.inferBinaryOp(e)
	case ast.Print:
		return types.Function{Arg: tc.genVar(), Ret: types.None{}}
	case ast.Fail:
		return types.Function{Arg: types.String{}, Ret: tc.genVar()}
	case ast.EnumVariant:
		return tc.inferEnumVariant(e)
	case ast.Projection:
		return tc.inferFieldAccess(e.Entity, e.Field, e.Span(), false)
	case ast.MethodAccess:
		return tc.inferFieldAccess(e.Entity, e.Method, e.Span(), true)
	case ast.FuncApplication:
		return tc.inferApplication(e)
	case ast.NamedArgsFuncApp:
		return tc.inferNamedArgsApplication(e)
	case ast.MatchConstruct:
		return tc.inferMatch(e)
	case ast.Conditional:
		return tc.inferConditional(e)
	case ast.Lambda:
		return tc.inferLambda(e)
	case ast.Let:
		resolved, _ := tc.bindFunction(e.Binding)
		return resolved
	case ast.LetIn:
		return tc.inferLetIn(e)
	case ast.SetExpr:
		tc.inferAttrSet(e.Attr)
		return types.None{}
	case ast.SetIn:
		tc.inferAttrSet(e.Attr)
		return tc.infer(e.Body)
	case ast.ErrorExpr:
		tc.recordError(e.Span(), e.Message)
		return tc.genVar()
	default:
		tc.recordError(expr.Span(), fmt.Sprintf("internal error: no inference rule for %T", expr))
		return tc.genVar()
	}
}

func (tc *TypeContext) inferList(e ast.ListExpr) types.Type {
	if len(e.Elems) == 0 {
		return types.List{Elem: tc.genVar()}
	}
	elemType := tc.infer(e.Elems[0])
	for _, el := range e.Elems[1:] {
		next := tc.infer(el)
		tc.unify(el.Span(), elemType, next)
		elemType = types.ApplySubst(tc.Subst, elemType)
	}
	return types.List{Elem: elemType}
}

func (tc *TypeContext) inferTuple(e ast.TupleExpr) types.Type {
	elems := make([]types.Type, len(e.Elems))
	for i, el := range e.Elems {
		elems[i] = tc.infer(el)
	}
	return types.Tuple{Elems: elems}
}

func (tc *TypeContext) inferRecord(fields []ast.RecordField, flex types.Flex) types.Type {
	values := make(map[string]types.Type, len(fields))
	for _, f := range fields {
		values[f.Name] = tc.infer(f.Expr)
	}
	return types.Record{Structure: types.StructureFromValues(values, flex)}
}

func (tc *TypeContext) inferIdentifier(e ast.Identifier) types.Type {
	t, ok := tc.Typings[e.Name]
	if !ok {
		tc.recordError(e.Span(), fmt.Sprintf("unbound identifier %q", e.Name))
		return tc.genVar()
	}
	resolved := types.ApplySubst(tc.Subst, t)
	return tc.instantiate(resolved)
}

func (tc *TypeContext) inferBinaryOp(e ast.BinaryOpExpr) types.Type {
	if e.Left == nil && e.Right == nil {
		return tc.operatorValueType(e.Op)
	}
	if e.Left == nil || e.Right == nil {
		tc.recordError(e.Span(), "binary operator applied with a missing operand")
		return tc.genVar()
	}
	leftType := tc.infer(e.Left)
	rightType := tc.infer(e.Right)
	return tc.checkBinaryOp(e.Op, leftType, rightType, e.Span())
}

// operatorValueType is the type of a bare, unapplied operator used as a
// first-class function value, e.g. `(+)`.
func (tc *TypeContext) operatorValueType(op types.BinaryOp) types.Type {
	if types.IsComparison(op) {
		a := tc.genVar()
		return types.Function{Arg: a, Ret: types.Function{Arg: a, Ret: types.BoolType()}}
	}
	if op == types.Cons {
		elem := tc.genVar()
		return types.Function{Arg: elem, Ret: types.Function{Arg: types.List{Elem: elem}, Ret: types.List{Elem: elem}}}
	}
	if sig, ok := types.LookupOperator(op, types.Int{}, types.Int{}); ok {
		return types.Function{Arg: sig.Left, Ret: types.Function{Arg: sig.Right, Ret: sig.Result}}
	}
	a := tc.genVar()
	return types.Function{Arg: a, Ret: types.Function{Arg: a, Ret: a}}
}

// checkBinaryOp infers the result of applying op to already-inferred
// operand types, per spec.md §4.4: comparisons and Cons are polymorphic
// and handled directly here (LookupOperator only covers the fixed
// arithmetic table), everything else is a table lookup.
func (tc *TypeContext) checkBinaryOp(op types.BinaryOp, left, right types.Type, sp span.Option) types.Type {
	if types.IsComparison(op) {
		if !tc.unify(sp, left, right) {
			return tc.genVar()
		}
		return types.BoolType()
	}
	if op == types.Cons {
		if !tc.unify(sp, right, types.List{Elem: left}) {
			return tc.genVar()
		}
		return types.ApplySubst(tc.Subst, types.List{Elem: left})
	}

	resolvedLeft := types.ApplySubst(tc.Subst, left)
	resolvedRight := types.ApplySubst(tc.Subst, right)
	if sig, ok := types.LookupOperator(op, resolvedLeft, resolvedRight); ok {
		return sig.Result
	}

	// Neither operand is concrete enough for a direct table hit (e.g. a
	// lambda parameter used as `x + 1`): try unifying both operands against
	// each candidate signature in turn and commit the first that succeeds.
	// arithmetic operators never overlap across Int/Float/String, so once
	// either operand is concrete at most one candidate can unify both; when
	// both are unresolved every candidate does, and the first in table
	// order (Int for +) is committed.
	for _, sig := range types.OperatorsFor(op) {
		trial := cloneSubst(tc.Subst)
		if err := types.Unify(resolvedLeft, sig.Left, trial); err != nil {
			continue
		}
		if err := types.Unify(resolvedRight, sig.Right, trial); err != nil {
			continue
		}
		tc.Subst = trial
		return types.ApplySubst(tc.Subst, sig.Result)
	}

	tc.recordError(sp, fmt.Sprintf(
		"no overload of %s for operand types %s and %s", op, resolvedLeft, resolvedRight))
	return tc.genVar()
}

func cloneSubst(s types.Substitution) types.Substitution {
	out := make(types.Substitution, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

func (tc *TypeContext) inferEnumVariant(e ast.EnumVariant) types.Type {
	decl, ok := tc.Enums[e.EnumName]
	if !ok {
		tc.recordError(e.Span(), fmt.Sprintf("unknown type constructor %q in a variant field", e.EnumName))
		return tc.genVar()
	}

	var variant *ast.EnumVariantDecl
	for i := range decl.Variants {
		if decl.Variants[i].Name == e.Variant {
			variant = &decl.Variants[i]
			break
		}
	}
	if variant == nil {
		tc.recordError(e.Span(), fmt.Sprintf("enum %q has no variant %q", e.EnumName, e.Variant))
		return tc.genVar()
	}

	mapping := make(map[string]types.Type, len(decl.PolytypeVars))
	args := make([]types.Type, len(decl.PolytypeVars))
	for i, pv := range decl.PolytypeVars {
		v := tc.genVarBound(pv.Bound)
		mapping[pv.Name] = v
		args[i] = v
	}
	result := types.TypeID{Name: decl.Name, Args: args}

	switch {
	case variant.Field == nil && e.Field != nil:
		tc.recordError(e.Span(), fmt.Sprintf("variant %s.%s carries no payload", e.EnumName, e.Variant))
	case variant.Field != nil && e.Field == nil:
		tc.recordError(e.Span(), fmt.Sprintf("variant %s.%s requires a payload", e.EnumName, e.Variant))
	case variant.Field != nil && e.Field != nil:
		fieldType := substPolyNames(variant.Field, mapping)
		actualType := tc.infer(e.Field)
		tc.unify(e.Span(), actualType, fieldType)
	}
	return types.ApplySubst(tc.Subst, result)
}

// inferFieldAccess handles both Projection and MethodAccess: the entity is
// constrained to have a record type with (at least) the requested field,
// via a freshly-introduced CollectExact single-field record.
func (tc *TypeContext) inferFieldAccess(entity ast.Expression, field string, sp span.Option, method bool) types.Type {
	entityType := tc.infer(entity)
	fieldVar := tc.genVar()

	var structure types.Structure
	if method {
		structure = types.NewStructure(map[string]types.Type{field: fieldVar}, nil, types.CollectExact)
	} else {
		structure = types.NewStructure(nil, map[string]types.Type{field: fieldVar}, types.CollectExact)
	}
	constraint := types.Record{Structure: structure}
	if !tc.unify(sp, entityType, constraint) {
		return tc.genVar()
	}
	return types.ApplySubst(tc.Subst, fieldVar)
}

func (tc *TypeContext) inferApplication(e ast.FuncApplication) types.Type {
	fnType := tc.infer(e.Func)
	argType := tc.infer(e.Arg)
	retVar := tc.genVar()
	expected := types.Function{Arg: argType, Ret: retVar}
	if !tc.unify(e.Span(), fnType, expected) {
		return tc.genVar()
	}
	return types.ApplySubst(tc.Subst, retVar)
}

// inferNamedArgsApplication applies each named argument's expression
// positionally in the order written, since Wye's Function type carries no
// argument names to match against; named syntax is a surface-level
// convenience the checker treats structurally like positional application.
func (tc *TypeContext) inferNamedArgsApplication(e ast.NamedArgsFuncApp) types.Type {
	fnType := tc.infer(e.Func)
	for _, arg := range e.Args {
		argType := tc.infer(arg.Expr)
		retVar := tc.genVar()
		expected := types.Function{Arg: argType, Ret: retVar}
		if !tc.unify(e.Span(), fnType, expected) {
			return tc.genVar()
		}
		fnType = types.ApplySubst(tc.Subst, retVar)
	}
	return fnType
}

func (tc *TypeContext) inferMatch(e ast.MatchConstruct) types.Type {
	matchandType := tc.infer(e.Matchand)
	resultVar := tc.genVar()

	for _, arm := range e.Arms {
		patType, pops := tc.bindPattern(arm.Pattern)
		tc.unify(arm.Pattern.Span(), matchandType, patType)
		armType := tc.infer(arm.Expr)
		tc.unify(arm.Expr.Span(), resultVar, armType)
		for i := len(pops) - 1; i >= 0; i-- {
			pops[i]()
		}
	}
	return types.ApplySubst(tc.Subst, resultVar)
}

func (tc *TypeContext) inferConditional(e ast.Conditional) types.Type {
	condType := tc.infer(e.Cond)
	tc.unify(e.Cond.Span(), condType, types.BoolType())
	thenType := tc.infer(e.Then)
	elseType := tc.infer(e.Else)
	tc.unify(e.Span(), thenType, elseType)
	return types.ApplySubst(tc.Subst, thenType)
}

func (tc *TypeContext) inferLambda(e ast.Lambda) types.Type {
	argTypes := make([]types.Type, len(e.Args))
	pops := make([]func(), len(e.Args))
	for i, name := range e.Args {
		v := tc.genVar()
		argTypes[i] = v
		pops[i] = tc.pushBinding(name, v)
	}

	bodyType := tc.infer(e.Expr)

	for i := len(pops) - 1; i >= 0; i-- {
		pops[i]()
	}

	chain := append(append([]types.Type{}, argTypes...), bodyType)
	ft, err := types.CollectFuncType(chain)
	if err != nil {
		return bodyType
	}
	return types.ApplySubst(tc.Subst, ft)
}

// bindFunction type-checks a VarWithValue (a `let name args = expr` shape,
// shared by Let, LetIn, and method implementations): fresh variables for
// every argument and the output, the function name bound to the assembled
// curried type before the body is checked (recursion is the default,
// spec.md §4.4), and the body's type unified with the declared output.
// It returns the resolved function type and a closure that undoes the
// name's binding; the caller decides whether to call it (LetIn and the
// interface/impl method checks do; Let does not, leaving the resolved type
// installed under the name).
func (tc *TypeContext) bindFunction(v ast.VarWithValue) (types.Type, func()) {
	argTypes := make([]types.Type, len(v.Args))
	popArgs := make([]func(), len(v.Args))
	for i, p := range v.Args {
		at := tc.freshenHoles(p.Type)
		argTypes[i] = at
		popArgs[i] = tc.pushBinding(p.Name, at)
	}

	var outT types.Type
	if v.OutType != nil {
		outT = tc.freshenHoles(v.OutType)
	} else {
		outT = tc.genVar()
	}

	chain := append(append([]types.Type{}, argTypes...), outT)
	funcType, err := types.CollectFuncType(chain)
	if err != nil {
		funcType = outT
	}
	popName := tc.pushBinding(v.Name, funcType)

	if v.Expr != nil {
		bodyType := tc.infer(v.Expr)
		tc.unify(v.Expr.Span(), bodyType, outT)
	}

	for i := len(popArgs) - 1; i >= 0; i-- {
		popArgs[i]()
	}

	resolved := types.ApplySubst(tc.Subst, funcType)
	tc.Typings[v.Name] = resolved
	return resolved, popName
}

// inferLetIn generalises the bound value's type relative to the
// environment as it stood before the binding, then checks the `in` body
// with the generalised scheme in scope, popping the binding afterward so
// it does not leak past the LetIn expression.
func (tc *TypeContext) inferLetIn(e ast.LetIn) types.Type {
	envSnapshot := make(map[string]types.Type, len(tc.Typings))
	for k, v := range tc.Typings {
		envSnapshot[k] = v
	}

	resolved, popName := tc.bindFunction(e.Binding)
	scheme := tc.generalize(resolved, envSnapshot)
	tc.Typings[e.Binding.Name] = scheme

	bodyType := tc.infer(e.Body)
	popName()
	return bodyType
}

func (tc *TypeContext) inferAttrSet(a ast.AttrSet) {
	entityType, ok := tc.Typings[a.Entity]
	if !ok {
		tc.recordError(a.Span(), fmt.Sprintf("unbound identifier %q", a.Entity))
		return
	}
	var valType types.Type
	if a.NewExpr != nil {
		valType = tc.infer(a.NewExpr)
	} else {
		valType = tc.genVar()
	}
	fieldVar := tc.genVar()
	structure := types.NewStructure(nil, map[string]types.Type{a.Attribute: fieldVar}, types.CollectExact)
	if tc.unify(a.Span(), entityType, types.Record{Structure: structure}) {
		tc.unify(a.Span(), fieldVar, valType)
	}
}
