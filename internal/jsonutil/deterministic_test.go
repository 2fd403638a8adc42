package jsonutil

import "testing"

func TestMarshalDeterministicSortsKeys(t *testing.T) {
	v := map[string]any{"z": 1, "a": 2, "m": 3}
	got, err := MarshalDeterministic(v)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":2,"m":3,"z":1}`
	if string(got) != want {
		t.Errorf("MarshalDeterministic = %s, want %s", got, want)
	}
}

func TestMarshalDeterministicStable(t *testing.T) {
	v := map[string]any{"b": []any{map[string]any{"y": 1, "x": 2}}, "a": "value"}
	first, err := MarshalDeterministic(v)
	if err != nil {
		t.Fatal(err)
	}
	second, err := MarshalDeterministic(v)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Errorf("expected stable output across calls: %s vs %s", first, second)
	}
	want := `{"a":"value","b":[{"x":2,"y":1}]}`
	if string(first) != want {
		t.Errorf("MarshalDeterministic = %s, want %s", first, want)
	}
}

func TestMarshalDeterministicNonObject(t *testing.T) {
	got, err := MarshalDeterministic([]int{3, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[3,1,2]" {
		t.Errorf("MarshalDeterministic = %s, want [3,1,2]", got)
	}
}
