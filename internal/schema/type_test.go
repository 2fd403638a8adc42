package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTypeString(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Type
	}{
		{"leaf", "integer", Leaf{"integer"}},
		{"list sugar", "integer[]", List{Leaf{"integer"}}},
		{"list", "list<string>", List{Leaf{"string"}}},
		{"set", "set<double>", Set{Leaf{"double"}}},
		{"map", "map<string;integer>", Map{Leaf{"string"}, Leaf{"integer"}}},
		{"nested map of list", "map<string;list<integer>>", Map{Leaf{"string"}, List{Leaf{"integer"}}}},
		{"heterogeneous tuple", "tuple<integer|string>", Tuple{[]Type{Leaf{"integer"}, Leaf{"string"}}}},
		{"homogeneous tuple collapses to list", "tuple<integer|integer>", List{Leaf{"integer"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypeString(tt.in)
			if err != nil {
				t.Fatalf("ParseTypeString(%q) error: %v", tt.in, err)
			}
			if !Equal(got, tt.want) {
				t.Errorf("ParseTypeString(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseTypeStringErrors(t *testing.T) {
	for _, in := range []string{"", "bogus", "list<bogus>", "map<string>", "tuple<>"} {
		if _, err := ParseTypeString(in); err == nil {
			t.Errorf("ParseTypeString(%q) expected error, got nil", in)
		}
	}
}

func TestParseTypeStringRoundTrip(t *testing.T) {
	in := "map<string;set<list<integer>>>"
	got, err := ParseTypeString(in)
	if err != nil {
		t.Fatal(err)
	}
	if got.String() != in {
		t.Errorf("round trip mismatch: got %q, want %q", got.String(), in)
	}
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		a, b string
		want string
		ok   bool
	}{
		{"double", "float", "double", true},
		{"double", "integer", "double", true},
		{"double", "long", "double", true},
		{"float", "integer", "float", true},
		{"long", "integer", "long", true},
		{"string", "character", "string", true},
		{"integer", "float", "float", true},
		{"boolean", "integer", "", false},
	}
	for _, tt := range tests {
		a, _ := ParseTypeString(tt.a)
		b, _ := ParseTypeString(tt.b)
		got, ok := Reconcile(a, b)
		if ok != tt.ok {
			t.Errorf("Reconcile(%s, %s) ok=%v, want %v", tt.a, tt.b, ok, tt.ok)
			continue
		}
		if ok && got.String() != tt.want {
			t.Errorf("Reconcile(%s, %s) = %s, want %s", tt.a, tt.b, got.String(), tt.want)
		}
	}
}

func TestReconcileCommutative(t *testing.T) {
	pairs := [][2]string{
		{"double", "float"}, {"double", "integer"}, {"float", "integer"},
		{"string", "character"}, {"boolean", "integer"}, {"null", "double"},
	}
	for _, p := range pairs {
		a, _ := ParseTypeString(p[0])
		b, _ := ParseTypeString(p[1])
		ab, abOK := Reconcile(a, b)
		ba, baOK := Reconcile(b, a)
		if abOK != baOK {
			t.Fatalf("Reconcile(%s,%s) ok=%v but Reconcile(%s,%s) ok=%v", p[0], p[1], abOK, p[1], p[0], baOK)
		}
		if abOK && !Equal(ab, ba) {
			t.Errorf("Reconcile(%s,%s)=%s != Reconcile(%s,%s)=%s", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestReconcileAssociative(t *testing.T) {
	// integer -> long -> double is a valid widening chain either way
	// it is associated: reconcile(reconcile(a,b),c) == reconcile(a,reconcile(b,c)).
	a, _ := ParseTypeString("integer")
	b, _ := ParseTypeString("long")
	c, _ := ParseTypeString("double")

	ab, ok := Reconcile(a, b)
	if !ok {
		t.Fatal("reconcile(integer, long) should succeed")
	}
	left, ok := Reconcile(ab, c)
	if !ok {
		t.Fatal("reconcile(reconcile(integer,long), double) should succeed")
	}

	bc, ok := Reconcile(b, c)
	if !ok {
		t.Fatal("reconcile(long, double) should succeed")
	}
	right, ok := Reconcile(a, bc)
	if !ok {
		t.Fatal("reconcile(integer, reconcile(long,double)) should succeed")
	}

	if !Equal(left, right) {
		t.Errorf("associativity violated: %s != %s", left, right)
	}
}

func TestReconcileNullWildcard(t *testing.T) {
	expected, _ := ParseTypeString("double")
	nullT, _ := ParseTypeString("null")
	got, ok := Reconcile(expected, nullT)
	if !ok || got.String() != "double" {
		t.Errorf("null should reconcile to the other leaf: got=%v ok=%v", got, ok)
	}
}

func TestReconcileContainers(t *testing.T) {
	a, _ := ParseTypeString("list<integer>")
	b, _ := ParseTypeString("list<double>")
	got, ok := Reconcile(a, b)
	if !ok || got.String() != "list<double>" {
		t.Errorf("Reconcile(list<integer>, list<double>) = %v, %v; want list<double>, true", got, ok)
	}

	badArity, _ := ParseTypeString("tuple<integer|string>")
	other, _ := ParseTypeString("tuple<integer|string|boolean>")
	if _, ok := Reconcile(badArity, other); ok {
		t.Error("tuples of differing arity should not reconcile")
	}
}

func TestCoerceValue(t *testing.T) {
	listT, _ := ParseTypeString("list<integer>")
	got, err := CoerceValue(listT, []any{float64(1), float64(2), float64(3)})
	if err != nil {
		t.Fatal(err)
	}
	want := []any{int64(1), int64(2), int64(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CoerceValue mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerceValueMapIntegerKeys(t *testing.T) {
	mapT, _ := ParseTypeString("map<integer;string>")
	got, err := CoerceValue(mapT, map[string]any{"1": "a", "2": "b"})
	if err != nil {
		t.Fatal(err)
	}
	entries, ok := got.([]MapEntry)
	if !ok || len(entries) != 2 {
		t.Fatalf("expected 2 map entries, got %v", got)
	}
	for _, e := range entries {
		if _, ok := e.Key.(int64); !ok {
			t.Errorf("expected int64 key, got %T", e.Key)
		}
	}
}

func TestCoerceValueRejectsNullForNumericLeaf(t *testing.T) {
	for _, name := range []string{"integer", "long", "float", "double", "boolean"} {
		lt, _ := ParseTypeString(name)
		if _, err := CoerceValue(lt, nil); err == nil {
			t.Errorf("CoerceValue(%s, nil) should reject null", name)
		}
	}
}

func TestCoerceValueAllowsNullForStringAndContainers(t *testing.T) {
	stringT, _ := ParseTypeString("string")
	if _, err := CoerceValue(stringT, nil); err != nil {
		t.Errorf("CoerceValue(string, nil) should be permitted: %v", err)
	}
	charT, _ := ParseTypeString("character")
	if _, err := CoerceValue(charT, nil); err != nil {
		t.Errorf("CoerceValue(character, nil) should be permitted: %v", err)
	}
	listT, _ := ParseTypeString("list<integer>")
	if _, err := CoerceValue(listT, nil); err != nil {
		t.Errorf("CoerceValue(list<integer>, nil) should be permitted: %v", err)
	}
}

func TestGenericEqualNullWildcard(t *testing.T) {
	intT, _ := ParseTypeString("integer")
	if !GenericEqual(intT, nil, int64(5)) {
		t.Error("null should equal any value")
	}
	if !GenericEqual(intT, int64(5), nil) {
		t.Error("any value should equal null")
	}
}

func TestGenericEqualSetOrderIndependent(t *testing.T) {
	setT, _ := ParseTypeString("set<integer>")
	a := []any{int64(1), int64(2), int64(3)}
	b := []any{int64(3), int64(1), int64(2)}
	if !GenericEqual(setT, a, b) {
		t.Error("sets should compare equal regardless of order")
	}
	c := []any{int64(1), int64(2), int64(4)}
	if GenericEqual(setT, a, c) {
		t.Error("sets with different elements should not compare equal")
	}
}

func TestGenericEqualMapDeep(t *testing.T) {
	mapT, _ := ParseTypeString("map<string;list<integer>>")
	a, _ := CoerceValue(mapT, map[string]any{"x": []any{float64(1), float64(2)}})
	b, _ := CoerceValue(mapT, map[string]any{"x": []any{float64(1), float64(2)}})
	if !GenericEqual(mapT, a, b) {
		t.Error("deeply equal maps should compare equal")
	}
}
