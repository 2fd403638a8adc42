package schema

// ReconcilableTypes mirrors schema_parsing/utils.py:RECONCILABLE_TYPES:
// for a wider leaf type (the map key), the set of narrower leaf types
// it can be widened from without losing information (e.g. "double" is
// wide enough for "float", "integer", or "long").
var ReconcilableTypes = map[string]map[string]bool{
	"float":  {"integer": true},
	"double": {"float": true, "integer": true, "long": true},
	"long":   {"integer": true},
	"string": {"character": true},
}

// IsReconcilable reports whether narrower can be widened to wider
// without loss (e.g. an "integer" literal widens to a "double" slot).
func IsReconcilable(wider, narrower string) bool {
	if wider == narrower {
		return true
	}
	set, ok := ReconcilableTypes[wider]
	return ok && set[narrower]
}

// Reconcile is the commutative widening operation: reconcile(a, b)
// returns the common type both a and b can be coerced to, recursing
// point-wise over identical container structures and leaf-wise by
// ReconcilableTypes, mirroring schema_type.py:reconcile_type. It holds
// reconcile(a, b) == reconcile(b, a) and is associative over a chain
// of widening candidates. Leaves of type "null" always reconcile to
// the other side, since null is the universal wildcard leaf. Returns
// (nil, false) when no common type exists (e.g. "boolean" vs
// "integer", or mismatched container shapes/arities).
func Reconcile(a, b Type) (Type, bool) {
	if Equal(a, b) {
		return a, true
	}

	if al, ok := a.(Leaf); ok {
		bl, ok := b.(Leaf)
		if !ok {
			return nil, false
		}
		switch {
		case al.Name == "null":
			return b, true
		case bl.Name == "null":
			return a, true
		case IsReconcilable(al.Name, bl.Name):
			return a, true
		case IsReconcilable(bl.Name, al.Name):
			return b, true
		default:
			return nil, false
		}
	}

	switch at := a.(type) {
	case List:
		bt, ok := b.(List)
		if !ok {
			return nil, false
		}
		elem, ok := Reconcile(at.Elem, bt.Elem)
		if !ok {
			return nil, false
		}
		return List{Elem: elem}, true
	case Set:
		bt, ok := b.(Set)
		if !ok {
			return nil, false
		}
		elem, ok := Reconcile(at.Elem, bt.Elem)
		if !ok {
			return nil, false
		}
		return Set{Elem: elem}, true
	case Map:
		bt, ok := b.(Map)
		if !ok {
			return nil, false
		}
		key, ok := Reconcile(at.Key, bt.Key)
		if !ok {
			return nil, false
		}
		val, ok := Reconcile(at.Value, bt.Value)
		if !ok {
			return nil, false
		}
		return Map{Key: key, Value: val}, true
	case Tuple:
		bt, ok := b.(Tuple)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return nil, false
		}
		elems := make([]Type, len(at.Elems))
		for i := range at.Elems {
			e, ok := Reconcile(at.Elems[i], bt.Elems[i])
			if !ok {
				return nil, false
			}
			elems[i] = e
		}
		return Tuple{Elems: elems}, true
	default:
		return nil, false
	}
}
