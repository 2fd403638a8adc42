package schema

import (
	"fmt"
	"math"

	"github.com/google-research/babelcode-go/internal/errkit"
)

// CoerceError reports that a decoded JSON value cannot be made to fit
// a declared Type.
type CoerceError struct{ errkit.BaseError }

func newCoerceError(format string, args ...any) CoerceError {
	return CoerceError{errkit.NewBase(errkit.SCH010, format, args...)}
}

// CoerceValue validates and normalizes a value decoded from JSON
// (json.Unmarshal into `any` yields float64 for every JSON number,
// map[string]any for every JSON object) against a declared Type,
// mirroring schema_type.py:validate_correct_type. It:
//
//   - accepts nil only for "string"/"character" leaves and for any
//     container (list/set/map/tuple); nil is rejected up front for
//     every other leaf ("integer", "long", "float", "double",
//     "boolean");
//   - casts JSON numbers to int64 for "integer"/"long", leaving
//     float64 untouched for "float"/"double";
//   - recasts a map's string keys back to int64 when the declared key
//     type is "integer"/"long" (JSON object keys are always strings);
//   - recurses into list/set/map/tuple elements.
func CoerceValue(t Type, v any) (any, error) {
	if v == nil {
		if !nullableType(t) {
			return nil, newCoerceError("null is not permitted for type %q", t.String())
		}
		return nil, nil
	}

	switch lt := t.(type) {
	case Leaf:
		return coerceLeaf(lt.Name, v)
	case List:
		return coerceSequence(lt.Elem, v)
	case Set:
		return coerceSequence(lt.Elem, v)
	case Map:
		return coerceMap(lt.Key, lt.Value, v)
	case Tuple:
		seq, ok := v.([]any)
		if !ok || len(seq) != len(lt.Elems) {
			return nil, newCoerceError("expected tuple of arity %d, got %v", len(lt.Elems), v)
		}
		out := make([]any, len(seq))
		for i, elem := range seq {
			coerced, err := CoerceValue(lt.Elems[i], elem)
			if err != nil {
				return nil, err
			}
			out[i] = coerced
		}
		return out, nil
	default:
		return nil, newCoerceError("unsupported type %q", t.String())
	}
}

// nullableType reports whether t may take a nil value, per
// schema_type.py:validate_correct_type's null handling: only
// "string"/"character" leaves and container types accept null;
// numeric and boolean leaves do not.
func nullableType(t Type) bool {
	switch lt := t.(type) {
	case Leaf:
		return lt.Name == "string" || lt.Name == "character" || lt.Name == "null"
	case List, Set, Map, Tuple:
		return true
	default:
		return false
	}
}

func coerceLeaf(name string, v any) (any, error) {
	switch name {
	case "integer", "long":
		switch n := v.(type) {
		case float64:
			if n != math.Trunc(n) {
				return nil, newCoerceError("value %v is not an integer", v)
			}
			return int64(n), nil
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		}
		return nil, newCoerceError("value %v is not numeric", v)
	case "float", "double":
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		case int:
			return float64(n), nil
		}
		return nil, newCoerceError("value %v is not numeric", v)
	case "boolean":
		b, ok := v.(bool)
		if !ok {
			return nil, newCoerceError("value %v is not boolean", v)
		}
		return b, nil
	case "string", "character":
		s, ok := v.(string)
		if !ok {
			return nil, newCoerceError("value %v is not a string", v)
		}
		return s, nil
	case "null":
		if v != nil {
			return nil, newCoerceError("expected null, got %v", v)
		}
		return nil, nil
	default:
		return nil, newCoerceError("unknown leaf type %q", name)
	}
}

func coerceSequence(elem Type, v any) ([]any, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, newCoerceError("expected list/set, got %v", v)
	}
	out := make([]any, len(seq))
	for i, item := range seq {
		coerced, err := CoerceValue(elem, item)
		if err != nil {
			return nil, err
		}
		out[i] = coerced
	}
	return out, nil
}

// MapEntry is an order-preserving key/value pair, used in place of a
// native Go map since a declared key type of "integer"/"long" must
// round-trip through a JSON string key.
type MapEntry struct {
	Key   any
	Value any
}

func coerceMap(keyType, valType Type, v any) ([]MapEntry, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, newCoerceError("expected map, got %v", v)
	}
	out := make([]MapEntry, 0, len(m))
	for k, val := range m {
		var key any = k
		if leaf, ok := keyType.(Leaf); ok && (leaf.Name == "integer" || leaf.Name == "long") {
			var n int64
			if _, err := fmt.Sscanf(k, "%d", &n); err != nil {
				return nil, newCoerceError("map key %q is not an integer", k)
			}
			key = n
		}
		coercedVal, err := CoerceValue(valType, val)
		if err != nil {
			return nil, err
		}
		out = append(out, MapEntry{Key: key, Value: coercedVal})
	}
	return out, nil
}

// GenericEqual implements null-tolerant generic equality: null compares
// equal to any leaf value, list/tuple equality is positional, set
// equality is order-independent, map equality is key-for-key.
func GenericEqual(t Type, a, b any) bool {
	if a == nil || b == nil {
		return true
	}

	switch lt := t.(type) {
	case Leaf:
		return leafEqual(lt.Name, a, b)
	case List:
		return sequenceEqual(lt.Elem, a, b, false)
	case Set:
		return sequenceEqual(lt.Elem, a, b, true)
	case Map:
		return mapEqual(lt.Value, a, b)
	case Tuple:
		as, aok := a.([]any)
		bs, bok := b.([]any)
		if !aok || !bok || len(as) != len(bs) || len(as) != len(lt.Elems) {
			return false
		}
		for i := range as {
			if !GenericEqual(lt.Elems[i], as[i], bs[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func leafEqual(name string, a, b any) bool {
	switch name {
	case "float", "double":
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		return aok && bok && af == bf
	case "integer", "long":
		ai, aok := toInt(a)
		bi, bok := toInt(b)
		return aok && bok && ai == bi
	default:
		return a == b
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

func sequenceEqual(elem Type, a, b any, orderIndependent bool) bool {
	as, aok := a.([]any)
	bs, bok := b.([]any)
	if !aok || !bok || len(as) != len(bs) {
		return false
	}
	if !orderIndependent {
		for i := range as {
			if !GenericEqual(elem, as[i], bs[i]) {
				return false
			}
		}
		return true
	}

	used := make([]bool, len(bs))
	for _, av := range as {
		found := false
		for j, bv := range bs {
			if used[j] {
				continue
			}
			if GenericEqual(elem, av, bv) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func mapEqual(valType Type, a, b any) bool {
	am, aok := a.([]MapEntry)
	bm, bok := b.([]MapEntry)
	if !aok || !bok || len(am) != len(bm) {
		return false
	}
	for _, ae := range am {
		found := false
		for _, be := range bm {
			if ae.Key == be.Key {
				found = GenericEqual(valType, ae.Value, be.Value)
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
