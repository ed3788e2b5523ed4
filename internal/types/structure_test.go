package types

import "testing"

func TestStructureEqualIgnoresFieldOrder(t *testing.T) {
	a := StructureFromValues(map[string]Type{"x": Int{}, "y": String{}}, Exact)
	b := StructureFromValues(map[string]Type{"y": String{}, "x": Int{}}, Exact)
	if !a.Equal(b) {
		t.Fatal("expected field order to not affect Structure.Equal")
	}
}

func TestStructureIsSubsetOf(t *testing.T) {
	small := StructureFromValues(map[string]Type{"x": Int{}}, Permissive)
	big := StructureFromValues(map[string]Type{"x": Int{}, "y": Int{}}, Exact)

	if !small.IsSubsetOf(big) {
		t.Fatal("expected small to be a subset of big")
	}
	if big.IsSubsetOf(small) {
		t.Fatal("expected big to not be a subset of small")
	}
}

func TestStructureStringExactVsPermissive(t *testing.T) {
	exact := StructureFromValues(map[string]Type{"x": Int{}}, Exact)
	permissive := StructureFromValues(map[string]Type{"x": Int{}}, Permissive)

	if got := exact.String(); got != "{| x: int |}" {
		t.Fatalf("got %q", got)
	}
	if got := permissive.String(); got != "{ x: int }" {
		t.Fatalf("got %q", got)
	}
}

func TestHasFieldChecksMethodsThenValues(t *testing.T) {
	s := NewStructure(
		map[string]Type{"show": Function{Arg: None{}, Ret: String{}}},
		map[string]Type{"name": String{}},
		Permissive,
	)
	if _, ok := s.HasField("show"); !ok {
		t.Fatal("expected to find method show")
	}
	if _, ok := s.HasField("name"); !ok {
		t.Fatal("expected to find value name")
	}
	if _, ok := s.HasField("missing"); ok {
		t.Fatal("expected missing field to be absent")
	}
}
