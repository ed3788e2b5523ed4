package types

import "testing"

func TestInterfaceBoundIsSatisfiedBy(t *testing.T) {
	bound := InterfaceBound{
		Name: "Showable",
		Structure: Structure{
			Methods: map[string]Type{"show": Function{Arg: None{}, Ret: String{}}},
			Flex:    Permissive,
		},
	}

	rec := Record{Structure: Structure{
		Methods: map[string]Type{"show": Function{Arg: None{}, Ret: String{}}},
		Values:  map[string]Type{"name": String{}},
		Flex:    Exact,
	}}

	s := EmptySubst()
	if !bound.IsSatisfiedBy(rec, s) {
		t.Fatal("expected record with matching show method to satisfy the bound")
	}
}

func TestInterfaceBoundRejectsMissingMethod(t *testing.T) {
	bound := InterfaceBound{
		Name: "Showable",
		Structure: Structure{
			Methods: map[string]Type{"show": Function{Arg: None{}, Ret: String{}}},
			Flex:    Permissive,
		},
	}
	rec := Record{Structure: StructureFromValues(map[string]Type{"name": String{}}, Exact)}

	s := EmptySubst()
	if bound.IsSatisfiedBy(rec, s) {
		t.Fatal("expected record without show method to fail the bound")
	}
}

func TestInterfaceBoundRejectsNonRecord(t *testing.T) {
	bound := InterfaceBound{Structure: EmptyStructure()}
	s := EmptySubst()
	if bound.IsSatisfiedBy(Int{}, s) {
		t.Fatal("expected a non-record type to never satisfy a structural bound")
	}
}

func TestSetBoundIsSatisfiedBy(t *testing.T) {
	bound := SetBound{Members: []Type{Int{}, Float{}}}
	if !bound.IsSatisfiedBy(Float{}) {
		t.Fatal("expected float to be a member")
	}
	if bound.IsSatisfiedBy(String{}) {
		t.Fatal("expected string to not be a member")
	}
}
