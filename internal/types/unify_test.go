package types

import "testing"

func TestUnifyBasic(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Type
		wantErr bool
	}{
		{"int/int", Int{}, Int{}, false},
		{"int/float", Int{}, Float{}, true},
		{"list elementwise", List{Elem: Int{}}, List{Elem: Int{}}, false},
		{"list elementwise mismatch", List{Elem: Int{}}, List{Elem: String{}}, true},
		{
			"tuple arity mismatch",
			Tuple{Elems: []Type{Int{}}},
			Tuple{Elems: []Type{Int{}, Int{}}},
			true,
		},
		{
			"typeid name mismatch",
			TypeID{Name: "Option", Args: []Type{Int{}}},
			TypeID{Name: "Result", Args: []Type{Int{}}},
			true,
		},
		{"poly same name", Poly{Name: "a"}, Poly{Name: "a"}, false},
		{"poly different name", Poly{Name: "a"}, Poly{Name: "b"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := EmptySubst()
			err := Unify(tt.a, tt.b, s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unify(%s, %s) error = %v, wantErr %v", tt.a, tt.b, err, tt.wantErr)
			}
		})
	}
}

func TestUnifyBindsVariable(t *testing.T) {
	s := EmptySubst()
	v := Variable{ID: 0}
	if err := Unify(v, Int{}, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(ApplySubst(s, v), Int{}) {
		t.Fatalf("expected variable 0 bound to int, got %s", ApplySubst(s, v))
	}
}

func TestUnifyOccursCheck(t *testing.T) {
	s := EmptySubst()
	v := Variable{ID: 0}
	self := List{Elem: v}
	if err := Unify(v, self, s); err == nil {
		t.Fatal("expected occurs-check failure for t0 = [t0]")
	}
}

func TestUnifyFunctionPropagatesArgSubst(t *testing.T) {
	s := EmptySubst()
	v := Variable{ID: 0}
	// (t0 -> t0) unified with (int -> int) must bind t0 = int on both sides.
	f1 := Function{Arg: v, Ret: v}
	f2 := Function{Arg: Int{}, Ret: Int{}}
	if err := Unify(f1, f2, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !Equal(ApplySubst(s, v), Int{}) {
		t.Fatalf("expected t0 = int, got %s", ApplySubst(s, v))
	}
}

func TestUnifyFunctionArgMismatchPropagates(t *testing.T) {
	s := EmptySubst()
	v := Variable{ID: 0}
	f1 := Function{Arg: v, Ret: v}
	f2 := Function{Arg: Int{}, Ret: String{}}
	if err := Unify(f1, f2, s); err == nil {
		t.Fatal("expected error: t0 cannot be both int and string")
	}
}

func TestUnifyExactRecordsRequireSameFields(t *testing.T) {
	a := Record{Structure: StructureFromValues(map[string]Type{"x": Int{}}, Exact)}
	b := Record{Structure: StructureFromValues(map[string]Type{"x": Int{}, "y": Int{}}, Exact)}
	s := EmptySubst()
	if err := Unify(a, b, s); err == nil {
		t.Fatal("expected error: exact records differ in field set")
	}
}

func TestUnifyExactPermissiveSubset(t *testing.T) {
	exact := Structure{Values: map[string]Type{"x": Int{}, "y": Int{}}, Flex: Exact}
	permissive := Structure{Values: map[string]Type{"x": Int{}}, Flex: Permissive}
	s := EmptySubst()
	if err := Unify(Record{exact}, Record{permissive}, s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUnifyExactPermissiveRejectsMissingField(t *testing.T) {
	exact := Structure{Values: map[string]Type{"x": Int{}}, Flex: Exact}
	permissive := Structure{Values: map[string]Type{"x": Int{}, "z": Int{}}, Flex: Permissive}
	s := EmptySubst()
	if err := Unify(Record{exact}, Record{permissive}, s); err == nil {
		t.Fatal("expected error: exact side lacks field z")
	}
}

func TestUnifyRecordsMergedUnionsPermissiveSides(t *testing.T) {
	a := Structure{Values: map[string]Type{"x": Int{}}, Flex: Permissive}
	b := Structure{Values: map[string]Type{"y": String{}}, Flex: Permissive}
	s := EmptySubst()
	merged, err := UnifyRecordsMerged(a, b, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := merged.HasField("x"); !ok {
		t.Fatal("expected merged structure to contain x")
	}
	if _, ok := merged.HasField("y"); !ok {
		t.Fatal("expected merged structure to contain y")
	}
}
