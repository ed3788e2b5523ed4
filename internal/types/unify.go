package types

import "fmt"

// UnifyError is returned when two types cannot be made equal under any
// substitution.
type UnifyError struct {
	Left, Right Type
	Reason      string
}

func (e *UnifyError) Error() string {
	return fmt.Sprintf("cannot unify %s with %s: %s", e.Left.String(), e.Right.String(), e.Reason)
}

// Unify attempts to make t1 and t2 equal, recording any new bindings into
// subst (which is mutated in place). It is symmetric: unify(a, b, s) and
// unify(b, a, s) succeed or fail together and agree on every variable both
// bind.
func Unify(t1, t2 Type, subst Substitution) error {
	t1 = resolve(subst, t1)
	t2 = resolve(subst, t2)

	if v1, ok := t1.(Variable); ok {
		return bindVariable(v1, t2, subst)
	}
	if v2, ok := t2.(Variable); ok {
		return bindVariable(v2, t1, subst)
	}

	switch a := t1.(type) {
	case None:
		if _, ok := t2.(None); ok {
			return nil
		}
	case Int:
		if _, ok := t2.(Int); ok {
			return nil
		}
	case Float:
		if _, ok := t2.(Float); ok {
			return nil
		}
	case String:
		if _, ok := t2.(String); ok {
			return nil
		}
	case List:
		if b, ok := t2.(List); ok {
			return Unify(a.Elem, b.Elem, subst)
		}
	case Tuple:
		if b, ok := t2.(Tuple); ok {
			if len(a.Elems) != len(b.Elems) {
				return &UnifyError{t1, t2, "tuples of different arity"}
			}
			for i := range a.Elems {
				if err := Unify(a.Elems[i], b.Elems[i], subst); err != nil {
					return err
				}
			}
			return nil
		}
	case Function:
		if b, ok := t2.(Function); ok {
			if err := Unify(a.Arg, b.Arg, subst); err != nil {
				return err
			}
			// Apply what unifying the argument learned before tackling
			// the return type, per spec.md §4.4 rule 4.
			return Unify(ApplySubst(subst, a.Ret), ApplySubst(subst, b.Ret), subst)
		}
	case TypeID:
		if b, ok := t2.(TypeID); ok {
			if a.Name != b.Name || len(a.Args) != len(b.Args) {
				return &UnifyError{t1, t2, "mismatched type constructor or arity"}
			}
			for i := range a.Args {
				if err := Unify(a.Args[i], b.Args[i], subst); err != nil {
					return err
				}
			}
			return nil
		}
	case Record:
		if b, ok := t2.(Record); ok {
			return unifyRecords(a.Structure, b.Structure, subst)
		}
	case Poly:
		if b, ok := t2.(Poly); ok && a.Name == b.Name {
			return nil
		}
		return &UnifyError{t1, t2, "a rigid polytype unifies only with itself"}
	}

	return &UnifyError{t1, t2, "incompatible types"}
}

func resolve(subst Substitution, t Type) Type {
	for {
		v, ok := t.(Variable)
		if !ok {
			return t
		}
		img, bound := subst[v.ID]
		if !bound {
			return t
		}
		t = img
	}
}

func bindVariable(v Variable, t Type, subst Substitution) error {
	if other, ok := t.(Variable); ok && other.ID == v.ID {
		return nil
	}
	if occurs(v.ID, t, subst) {
		return &UnifyError{v, t, "occurs check failed"}
	}
	subst[v.ID] = t
	return nil
}

// occurs reports whether variable id appears free anywhere inside t, after
// resolving any variables already bound in subst. This is the check that
// keeps unification from building infinite types.
func occurs(id int, t Type, subst Substitution) bool {
	t = resolve(subst, t)
	switch v := t.(type) {
	case Variable:
		return v.ID == id
	case List:
		return occurs(id, v.Elem, subst)
	case Tuple:
		for _, e := range v.Elems {
			if occurs(id, e, subst) {
				return true
			}
		}
		return false
	case Function:
		return occurs(id, v.Arg, subst) || occurs(id, v.Ret, subst)
	case TypeID:
		for _, a := range v.Args {
			if occurs(id, a, subst) {
				return true
			}
		}
		return false
	case Record:
		for _, m := range v.Structure.Methods {
			if occurs(id, m, subst) {
				return true
			}
		}
		for _, val := range v.Structure.Values {
			if occurs(id, val, subst) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// unifyRecords implements spec.md §4.4 rule 6: the behaviour depends on
// the flex of each side.
func unifyRecords(a, b Structure, subst Substitution) error {
	switch {
	case a.Flex == Exact && b.Flex == Exact:
		if len(a.Methods) != len(b.Methods) || len(a.Values) != len(b.Values) || !a.IsSubsetOf(b) {
			return &UnifyError{Record{a}, Record{b}, "exact records must share the same field set"}
		}
		return unifyFieldwise(a, b, unionFieldNames(a, b), subst)

	case a.Flex == Permissive && b.Flex == Permissive:
		// Shared fields unify; UnifyRecordsMerged builds the union.
		return unifyFieldwise(a, b, intersectFieldNames(a, b), subst)

	case a.Flex == Exact && (b.Flex == Permissive || b.Flex == CollectExact):
		if !b.IsSubsetOf(a) {
			return &UnifyError{Record{a}, Record{b}, "permissive side has fields the exact side lacks"}
		}
		return unifyFieldwise(a, b, unionFieldNames(shrinkTo(a, b), b), subst)

	case b.Flex == Exact && (a.Flex == Permissive || a.Flex == CollectExact):
		if !a.IsSubsetOf(b) {
			return &UnifyError{Record{a}, Record{b}, "permissive side has fields the exact side lacks"}
		}
		return unifyFieldwise(a, b, unionFieldNames(a, shrinkTo(b, a)), subst)

	default:
		// Both CollectExact, or one CollectExact/one Permissive: treat as
		// a union merge of whichever fields overlap, consistent with
		// §4.4's subset/union rules (spec.md §9 Open Question).
		return unifyFieldwise(a, b, intersectFieldNames(a, b), subst)
	}
}

// UnifyRecordsMerged unifies two record structures and additionally
// returns the merged Structure that should replace both sides, following
// the Permissive/Permissive union rule and the Exact-side-wins rule for
// mixed flex: the merged type as the result of record unification, not
// just a success/failure verdict. Unify and internal/typecheck do not call
// it; they use unifyRecords' verdict alone.
func UnifyRecordsMerged(a, b Structure, subst Substitution) (Structure, error) {
	if err := unifyRecords(a, b, subst); err != nil {
		return Structure{}, err
	}
	switch {
	case a.Flex == Exact:
		return applySubstStructure(subst, a), nil
	case b.Flex == Exact:
		return applySubstStructure(subst, b), nil
	default:
		methods := map[string]Type{}
		values := map[string]Type{}
		for k, v := range a.Methods {
			methods[k] = v
		}
		for k, v := range b.Methods {
			methods[k] = v
		}
		for k, v := range a.Values {
			values[k] = v
		}
		for k, v := range b.Values {
			values[k] = v
		}
		merged := Structure{Methods: methods, Values: values, Flex: Permissive}
		return applySubstStructure(subst, merged), nil
	}
}

func unifyFieldwise(a, b Structure, names []string, subst Substitution) error {
	for _, name := range names {
		at, aok := a.HasField(name)
		bt, bok := b.HasField(name)
		if !aok || !bok {
			continue
		}
		if err := Unify(at, bt, subst); err != nil {
			return err
		}
	}
	return nil
}

func unionFieldNames(a, b Structure) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, s := range [...]Structure{a, b} {
		for _, name := range s.SortedMethodNames() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				out = append(out, name)
			}
		}
		for _, name := range s.SortedValueNames() {
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				out = append(out, name)
			}
		}
	}
	return out
}

func intersectFieldNames(a, b Structure) []string {
	var out []string
	for _, name := range unionFieldNames(a, b) {
		_, inA := a.HasField(name)
		_, inB := b.HasField(name)
		if inA && inB {
			out = append(out, name)
		}
	}
	return out
}

// shrinkTo is a no-op placeholder that documents intent: the exact side's
// fields outside the permissive side's requested subset are irrelevant to
// field-wise unification, so unifyFieldwise already skips them via
// HasField's per-name lookup. Kept as a named step for readability.
func shrinkTo(exact, permissive Structure) Structure {
	return exact
}
