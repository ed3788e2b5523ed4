package types

// InterfaceBound is the structural requirement an interface declaration
// imposes: a set of method/value signatures a type must provide (and be
// unifiable against) to satisfy the interface (Wye's
// interfaces-as-structural-bounds model, spec.md §2.3).
type InterfaceBound struct {
	Name      string
	Structure Structure
}

// IsSatisfiedBy reports whether t, under subst, provides every field
// InterfaceBound.Structure requires, with field types unifiable against
// the bound's (not merely present). subst is mutated with whatever
// bindings satisfying the bound required, mirroring the behaviour of
// Unify itself.
func (b InterfaceBound) IsSatisfiedBy(t Type, subst Substitution) bool {
	rec, ok := resolve(subst, t).(Record)
	if !ok {
		return false
	}
	for _, name := range b.Structure.SortedMethodNames() {
		want := b.Structure.Methods[name]
		got, ok := rec.Structure.HasField(name)
		if !ok {
			return false
		}
		if err := Unify(want, got, subst); err != nil {
			return false
		}
	}
	for _, name := range b.Structure.SortedValueNames() {
		want := b.Structure.Values[name]
		got, ok := rec.Structure.HasField(name)
		if !ok {
			return false
		}
		if err := Unify(want, got, subst); err != nil {
			return false
		}
	}
	return true
}

// SetBound is the other polytype-constraint shape: an explicit closed set
// of permitted concrete types, used for numeric-literal-style bounds
// rather than structural ones.
type SetBound struct {
	Members []Type
}

// IsSatisfiedBy reports whether t equals (Equal) one of the bound's member
// types.
func (b SetBound) IsSatisfiedBy(t Type) bool {
	for _, m := range b.Members {
		if Equal(m, t) {
			return true
		}
	}
	return false
}
