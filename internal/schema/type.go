// Package schema implements the TypeExpr algebra: the generic,
// language-agnostic type grammar used to describe question parameters
// and return values, its parser, its cross-primitive reconciliation
// table, and generic (null-tolerant) value equality.
package schema

import (
	"fmt"
	"strings"

	"github.com/google-research/babelcode-go/internal/errkit"
)

// Type is a generic TypeExpr node. Concrete shapes are Leaf, List, Set,
// Map, and Tuple. This algebra is flat: every node is fully concrete
// once parsed, there is no unification, no type variables, and no
// effects.
type Type interface {
	// String renders the type back to its generic type-string form.
	String() string
	isType()
}

// Leaf is a primitive type: one of PrimitiveTypes.
type Leaf struct {
	Name string
}

func (l Leaf) String() string { return l.Name }
func (Leaf) isType()          {}

// List is a homogeneous, ordered container.
type List struct {
	Elem Type
}

func (t List) String() string { return fmt.Sprintf("list<%s>", t.Elem.String()) }
func (List) isType()          {}

// Set is a homogeneous, order-independent container.
type Set struct {
	Elem Type
}

func (t Set) String() string { return fmt.Sprintf("set<%s>", t.Elem.String()) }
func (Set) isType()          {}

// Map is a homogeneous key/value container.
type Map struct {
	Key   Type
	Value Type
}

func (t Map) String() string { return fmt.Sprintf("map<%s;%s>", t.Key.String(), t.Value.String()) }
func (Map) isType()          {}

// Tuple is a fixed-arity, heterogeneous container. A tuple parsed from
// elements that are all the same type collapses to a List, matching
// from_generic_type_string's behavior.
type Tuple struct {
	Elems []Type
}

func (t Tuple) String() string {
	parts := make([]string, len(t.Elems))
	for i, e := range t.Elems {
		parts[i] = e.String()
	}
	return fmt.Sprintf("tuple<%s>", strings.Join(parts, "|"))
}
func (Tuple) isType() {}

// PrimitiveTypes are the eight leaf type names recognized by the grammar.
var PrimitiveTypes = map[string]bool{
	"boolean": true, "integer": true, "long": true, "float": true,
	"double": true, "character": true, "string": true, "null": true,
}

// ContainerTypes are the recognized container type names.
var ContainerTypes = map[string]bool{"list": true, "set": true, "map": true, "tuple": true}

// ParseError reports a malformed generic type string.
type ParseError struct{ errkit.BaseError }

func newParseError(code, format string, args ...any) ParseError {
	return ParseError{errkit.NewBase(code, format, args...)}
}

// ParseTypeString parses a generic type string into a Type.
//
// Grammar:
//
//	type       := leaf | container | sugar
//	sugar      := type "[]"                   -- equivalent to "list<"type">"
//	container  := "list<" type ">"
//	           |  "set<" type ">"
//	           |  "map<" type ";" type ">"
//	           |  "tuple<" type ("|" type)* ">"
//	leaf       := one of PrimitiveTypes
func ParseTypeString(raw string) (Type, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, newParseError(errkit.SCH001, "empty type string")
	}

	if strings.HasSuffix(s, "[]") {
		elem, err := ParseTypeString(s[:len(s)-2])
		if err != nil {
			return nil, err
		}
		return List{Elem: elem}, nil
	}

	if idx := strings.IndexByte(s, '<'); idx >= 0 {
		if !strings.HasSuffix(s, ">") {
			return nil, newParseError(errkit.SCH001, "type %q missing closing '>'", raw)
		}
		container := s[:idx]
		inner := s[idx+1 : len(s)-1]

		switch container {
		case "list":
			elem, err := ParseTypeString(inner)
			if err != nil {
				return nil, err
			}
			return List{Elem: elem}, nil
		case "set":
			elem, err := ParseTypeString(inner)
			if err != nil {
				return nil, err
			}
			return Set{Elem: elem}, nil
		case "map":
			parts := splitTopLevel(inner, ';')
			if len(parts) != 2 {
				return nil, newParseError(errkit.SCH003, "map type %q must have exactly one ';'-separated key/value pair", raw)
			}
			key, err := ParseTypeString(parts[0])
			if err != nil {
				return nil, err
			}
			val, err := ParseTypeString(parts[1])
			if err != nil {
				return nil, err
			}
			return Map{Key: key, Value: val}, nil
		case "tuple":
			parts := splitTopLevel(inner, '|')
			if len(parts) == 0 {
				return nil, newParseError(errkit.SCH003, "tuple type %q has no elements", raw)
			}
			elems := make([]Type, len(parts))
			for i, p := range parts {
				elem, err := ParseTypeString(p)
				if err != nil {
					return nil, err
				}
				elems[i] = elem
			}
			if allSameType(elems) {
				return List{Elem: elems[0]}, nil
			}
			return Tuple{Elems: elems}, nil
		default:
			return nil, newParseError(errkit.SCH001, "unknown container type %q in %q", container, raw)
		}
	}

	if !PrimitiveTypes[s] {
		return nil, newParseError(errkit.SCH002, "unknown primitive type %q", s)
	}
	return Leaf{Name: s}, nil
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// matching '<'/'>' pairs, the way map/tuple argument lists need to be
// split without breaking on a nested container's own separators.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			depth++
		case '>':
			depth--
		default:
			if s[i] == sep && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}

func allSameType(elems []Type) bool {
	for _, e := range elems[1:] {
		if !Equal(elems[0], e) {
			return false
		}
	}
	return true
}

// Equal reports whether two Type trees describe the same generic shape.
func Equal(a, b Type) bool {
	switch at := a.(type) {
	case Leaf:
		bt, ok := b.(Leaf)
		return ok && at.Name == bt.Name
	case List:
		bt, ok := b.(List)
		return ok && Equal(at.Elem, bt.Elem)
	case Set:
		bt, ok := b.(Set)
		return ok && Equal(at.Elem, bt.Elem)
	case Map:
		bt, ok := b.(Map)
		return ok && Equal(at.Key, bt.Key) && Equal(at.Value, bt.Value)
	case Tuple:
		bt, ok := b.(Tuple)
		if !ok || len(at.Elems) != len(bt.Elems) {
			return false
		}
		for i := range at.Elems {
			if !Equal(at.Elems[i], bt.Elems[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// IsLeaf reports whether t is a Leaf (primitive) type.
func IsLeaf(t Type) bool {
	_, ok := t.(Leaf)
	return ok
}
