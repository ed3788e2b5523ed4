package types

import "strings"

// Flex describes a record's match discipline during unification.
type Flex int

const (
	// Permissive records act as a lower bound: the actual value must have
	// at least these fields. Struct-record expressions ({ x: 1 }) produce
	// Permissive records.
	Permissive Flex = iota
	// CollectExact is the tentative-exact state used while a record's
	// field set is still being accumulated during inference (e.g. a
	// projection's freshly-introduced single-field constraint).
	CollectExact
	// Exact records must match exactly on unification: nominal records
	// ({| x: 1 |}) and fully-known struct declarations.
	Exact
)

func (f Flex) String() string {
	switch f {
	case Permissive:
		return "permissive"
	case CollectExact:
		return "collect-exact"
	case Exact:
		return "exact"
	default:
		return "unknown-flex"
	}
}

// Structure is the field-set (methods + values) and flex of a record type,
// shared by struct records, nominal records, and interface bounds.
type Structure struct {
	Methods map[string]Type
	Values  map[string]Type
	Flex    Flex
}

// NewStructure builds a Structure from explicit methods/values maps.
func NewStructure(methods, values map[string]Type, flex Flex) Structure {
	if methods == nil {
		methods = map[string]Type{}
	}
	if values == nil {
		values = map[string]Type{}
	}
	return Structure{Methods: methods, Values: values, Flex: flex}
}

// StructureFromValues builds a value-only Structure (no methods), as
// produced by struct/nominal record expressions.
func StructureFromValues(values map[string]Type, flex Flex) Structure {
	return NewStructure(nil, values, flex)
}

// EmptyStructure is the Permissive structure with no fields, the starting
// point for inferring an unconstrained record.
func EmptyStructure() Structure {
	return NewStructure(nil, nil, Permissive)
}

// SortedMethodNames returns Methods' keys in canonical (sorted) order.
func (s Structure) SortedMethodNames() []string {
	return sortedKeys(s.Methods)
}

// SortedValueNames returns Values' keys in canonical (sorted) order.
func (s Structure) SortedValueNames() []string {
	return sortedKeys(s.Values)
}

// Equal reports structural equality: same flex, same field names, and
// pointwise-equal field types. Field order never matters.
func (s Structure) Equal(o Structure) bool {
	if s.Flex != o.Flex {
		return false
	}
	if len(s.Methods) != len(o.Methods) || len(s.Values) != len(o.Values) {
		return false
	}
	for name, t := range s.Methods {
		ot, ok := o.Methods[name]
		if !ok || !Equal(t, ot) {
			return false
		}
	}
	for name, t := range s.Values {
		ot, ok := o.Values[name]
		if !ok || !Equal(t, ot) {
			return false
		}
	}
	return true
}

// HasField reports whether name is present in either Methods or Values.
func (s Structure) HasField(name string) (Type, bool) {
	if t, ok := s.Methods[name]; ok {
		return t, true
	}
	if t, ok := s.Values[name]; ok {
		return t, true
	}
	return nil, false
}

// IsSubsetOf reports whether every field name of s is present in o, methods
// among o's methods and values among o's values — the "own fields are a
// subset of the other's" relation used by record unification. Field types
// are not compared; InterfaceBound.IsSatisfiedBy (bound.go) instead walks
// SortedMethodNames / SortedValueNames and unifies each field individually.
func (s Structure) IsSubsetOf(o Structure) bool {
	for name := range s.Methods {
		if _, ok := o.Methods[name]; !ok {
			return false
		}
	}
	for name := range s.Values {
		if _, ok := o.Values[name]; !ok {
			return false
		}
	}
	return true
}

func (s Structure) String() string {
	var b strings.Builder
	open, close := "{ ", " }"
	if s.Flex == Exact {
		open, close = "{| ", " |}"
	}
	b.WriteString(open)
	first := true
	for _, name := range s.SortedMethodNames() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString("method ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(s.Methods[name].String())
	}
	for _, name := range s.SortedValueNames() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(s.Values[name].String())
	}
	b.WriteString(close)
	return b.String()
}
