package types

import "testing"

func TestCollectFuncType(t *testing.T) {
	tests := []struct {
		name string
		in   []Type
		want Type
	}{
		{"single", []Type{Int{}}, Int{}},
		{"two", []Type{Int{}, String{}}, Function{Arg: Int{}, Ret: String{}}},
		{
			"three, right-associative",
			[]Type{Int{}, Float{}, String{}},
			Function{Arg: Int{}, Ret: Function{Arg: Float{}, Ret: String{}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectFuncType(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !Equal(got, tt.want) {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestCollectFuncTypeEmpty(t *testing.T) {
	if _, err := CollectFuncType(nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Type
		want bool
	}{
		{"int == int", Int{}, Int{}, true},
		{"int != float", Int{}, Float{}, false},
		{"list[int] == list[int]", List{Elem: Int{}}, List{Elem: Int{}}, true},
		{"list[int] != list[float]", List{Elem: Int{}}, List{Elem: Float{}}, false},
		{
			"tuple elementwise",
			Tuple{Elems: []Type{Int{}, String{}}},
			Tuple{Elems: []Type{Int{}, String{}}},
			true,
		},
		{
			"typeid name+args",
			TypeID{Name: "Option", Args: []Type{Int{}}},
			TypeID{Name: "Option", Args: []Type{Int{}}},
			true,
		},
		{
			"typeid differing arity",
			TypeID{Name: "Option", Args: []Type{Int{}}},
			TypeID{Name: "Option"},
			false,
		},
		{
			"record field order independent",
			Record{Structure: StructureFromValues(map[string]Type{"x": Int{}, "y": Float{}}, Exact)},
			Record{Structure: StructureFromValues(map[string]Type{"y": Float{}, "x": Int{}}, Exact)},
			true,
		},
		{
			"record differing flex",
			Record{Structure: StructureFromValues(map[string]Type{"x": Int{}}, Exact)},
			Record{Structure: StructureFromValues(map[string]Type{"x": Int{}}, Permissive)},
			false,
		},
		{"poly same name", Poly{Name: "a"}, Poly{Name: "a"}, true},
		{"poly different name", Poly{Name: "a"}, Poly{Name: "b"}, false},
		{"variable same id", Variable{ID: 1}, Variable{ID: 1}, true},
		{"variable different id", Variable{ID: 1}, Variable{ID: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Fatalf("Equal(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestFunctionStringParenthesizesFunctionArg(t *testing.T) {
	ft := Function{Arg: Function{Arg: Int{}, Ret: Int{}}, Ret: Int{}}
	want := "(int -> int) -> int"
	if got := ft.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
