package langpack

import (
	"fmt"

	"github.com/google-research/babelcode-go/internal/errkit"
	"github.com/google-research/babelcode-go/internal/schema"
)

// TranslationError reports that a value could not be rendered as a
// literal in the target language, e.g. a non-finite float.
type TranslationError struct{ errkit.BaseError }

func newTranslationError(format string, args ...any) TranslationError {
	return TranslationError{errkit.NewBase(errkit.GEN002, format, args...)}
}

// LiteralConfig renders decoded schema values (the any-typed output of
// schema.CoerceValue) as target-language source literals, composed the
// way translation/literal_translator.py's LiteralTranslator base class
// is overridden per language. The container formatters receive the
// container's own rendered LangType string so they can prepend it to
// the literal the way a composite-literal-typed language requires
// (go.py:GoLiteralTranslator.convert_array_like_type prepends
// generic_type.lang_type to every array/map/set literal).
type LiteralConfig struct {
	Null           string
	True, False    string
	FormatList     func(langType string, elems []string) string
	FormatSet      func(langType string, elems []string) string
	FormatMap      func(langType string, entries []string) string
	FormatMapEntry func(key, value string) string
	FormatTuple    func(langType string, elems []string) string
	FormatString   func(s string) string
	FormatChar     func(s string) string
	FormatFloat    func(f float64) string
	FormatInt      func(i int64) string
}

// RenderLiteral converts a coerced value into this language's literal
// source text, mirroring LiteralTranslator.convert_var_to_literal /
// convert_array_like_type / convert_map. Container literals are
// rendered with this Pack's LangType for t prepended, so languages
// requiring an explicit composite-literal type (Go's `[]int64{1, 2}`,
// C++'s `std::vector<int>{1, 2}`) produce code that compiles.
func (p *Pack) RenderLiteral(t schema.Type, v any) (string, error) {
	c := p.Literals
	if v == nil {
		return c.Null, nil
	}

	switch lt := t.(type) {
	case schema.Leaf:
		return c.renderLeaf(lt.Name, v)
	case schema.List:
		seq, ok := v.([]any)
		if !ok {
			return "", newTranslationError("expected list value, got %v", v)
		}
		elems, err := p.renderAll(lt.Elem, seq)
		if err != nil {
			return "", err
		}
		langType, err := p.LangType(t)
		if err != nil {
			return "", err
		}
		return c.FormatList(langType, elems), nil
	case schema.Set:
		seq, ok := v.([]any)
		if !ok {
			return "", newTranslationError("expected set value, got %v", v)
		}
		deduped := dedupeSet(seq)
		elems, err := p.renderAll(lt.Elem, deduped)
		if err != nil {
			return "", err
		}
		langType, err := p.LangType(t)
		if err != nil {
			return "", err
		}
		return c.FormatSet(langType, elems), nil
	case schema.Map:
		entries, ok := v.([]schema.MapEntry)
		if !ok {
			return "", newTranslationError("expected map entries, got %T", v)
		}
		rendered := make([]string, len(entries))
		for i, e := range entries {
			key, err := p.RenderLiteral(lt.Key, e.Key)
			if err != nil {
				return "", err
			}
			val, err := p.RenderLiteral(lt.Value, e.Value)
			if err != nil {
				return "", err
			}
			rendered[i] = c.FormatMapEntry(key, val)
		}
		langType, err := p.LangType(t)
		if err != nil {
			return "", err
		}
		return c.FormatMap(langType, rendered), nil
	case schema.Tuple:
		seq, ok := v.([]any)
		if !ok || len(seq) != len(lt.Elems) {
			return "", newTranslationError("expected tuple of arity %d, got %v", len(lt.Elems), v)
		}
		elems := make([]string, len(seq))
		for i, item := range seq {
			rendered, err := p.RenderLiteral(lt.Elems[i], item)
			if err != nil {
				return "", err
			}
			elems[i] = rendered
		}
		langType, err := p.LangType(t)
		if err != nil {
			return "", err
		}
		return c.FormatTuple(langType, elems), nil
	default:
		return "", newTranslationError("unsupported type %q", t.String())
	}
}

func (p *Pack) renderAll(elem schema.Type, items []any) ([]string, error) {
	out := make([]string, len(items))
	for i, item := range items {
		rendered, err := p.RenderLiteral(elem, item)
		if err != nil {
			return nil, err
		}
		out[i] = rendered
	}
	return out, nil
}

func (c LiteralConfig) renderLeaf(name string, v any) (string, error) {
	switch name {
	case "boolean":
		b, _ := v.(bool)
		if b {
			return c.True, nil
		}
		return c.False, nil
	case "integer", "long":
		i, ok := toInt64(v)
		if !ok {
			return "", newTranslationError("value %v is not an integer", v)
		}
		return c.FormatInt(i), nil
	case "float", "double":
		f, ok := toFloat64(v)
		if !ok {
			return "", newTranslationError("value %v is not a float", v)
		}
		return c.FormatFloat(f), nil
	case "string":
		s, ok := v.(string)
		if !ok {
			return "", newTranslationError("value %v is not a string", v)
		}
		return c.FormatString(s), nil
	case "character":
		s, ok := v.(string)
		if !ok {
			return "", newTranslationError("value %v is not a character", v)
		}
		return c.FormatChar(s), nil
	default:
		return "", newTranslationError("unknown leaf type %q", name)
	}
}

func toInt64(v any) (int64, bool) {
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

func toFloat64(v any) (float64, bool) {
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

// dedupeSet removes duplicate scalar elements, preserving first-seen
// order (SPEC_FULL.md §11: deterministic for golden tests, matching
// the spirit of the original's list(set(...))).
func dedupeSet(items []any) []any {
	seen := make(map[string]bool, len(items))
	out := make([]any, 0, len(items))
	for _, item := range items {
		key := fmt.Sprintf("%v", item)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, item)
	}
	return out
}
