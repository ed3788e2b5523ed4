package types

// Substitution maps an inference-variable id to the type it has been
// resolved to. Composition and application make no assumption about the
// order in which variable ids were handed out.
type Substitution map[int]Type

// EmptySubst returns a fresh, empty substitution.
func EmptySubst() Substitution {
	return Substitution{}
}

// ApplySubst returns a fresh type with every Variable bound in s replaced
// by its image, recursively.
func ApplySubst(s Substitution, t Type) Type {
	switch v := t.(type) {
	case Variable:
		if img, ok := s[v.ID]; ok {
			return ApplySubst(s, img)
		}
		return v
	case TypeID:
		return TypeID{Name: v.Name, Args: applySubstSlice(s, v.Args)}
	case List:
		return List{Elem: ApplySubst(s, v.Elem)}
	case Tuple:
		return Tuple{Elems: applySubstSlice(s, v.Elems)}
	case Function:
		return Function{Arg: ApplySubst(s, v.Arg), Ret: ApplySubst(s, v.Ret)}
	case Record:
		return Record{Structure: applySubstStructure(s, v.Structure)}
	default:
		// None, Int, Float, String, Poly carry no substitutable children.
		return t
	}
}

func applySubstSlice(s Substitution, ts []Type) []Type {
	out := make([]Type, len(ts))
	for i, t := range ts {
		out[i] = ApplySubst(s, t)
	}
	return out
}

func applySubstStructure(s Substitution, st Structure) Structure {
	methods := make(map[string]Type, len(st.Methods))
	for k, v := range st.Methods {
		methods[k] = ApplySubst(s, v)
	}
	values := make(map[string]Type, len(st.Values))
	for k, v := range st.Values {
		values[k] = ApplySubst(s, v)
	}
	return Structure{Methods: methods, Values: values, Flex: st.Flex}
}

// ApplySubstEnv applies s pointwise over a name -> type environment,
// returning a new map.
func ApplySubstEnv(s Substitution, env map[string]Type) map[string]Type {
	out := make(map[string]Type, len(env))
	for name, t := range env {
		out[name] = ApplySubst(s, t)
	}
	return out
}

// Compose returns the substitution equivalent to applying oldSub then
// newSub: every image in oldSub is first normalised against newSub, then
// entries unique to newSub are added. Colliding keys take newSub's
// (already-normalised) image. Compose is associative; see
// internal/types/subst_test.go for the law.
func Compose(newSub, oldSub Substitution) Substitution {
	out := make(Substitution, len(oldSub)+len(newSub))
	for id, t := range oldSub {
		out[id] = ApplySubst(newSub, t)
	}
	for id, t := range newSub {
		// newSub always wins on collision: its image is already expressed
		// in terms of the variables it was solved against.
		out[id] = t
	}
	return out
}
