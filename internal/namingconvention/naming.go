// Package namingconvention renames identifiers between snake_case,
// camelCase, and PascalCase, grounded on
// original_source/babelcode/utils/naming_convention.py.
package namingconvention

import (
	"strings"
)

// Convention selects the output casing for Format.
type Convention int

const (
	SnakeCase Convention = iota
	CamelCase
	PascalCase
)

// tokenize splits an identifier on case and underscore boundaries,
// e.g. "maxValue_2" -> ["max", "Value", "2"].
func tokenize(name string) []string {
	var out []string
	var cur strings.Builder
	runes := []rune(name)
	isUpper := func(r rune) bool { return r >= 'A' && r <= 'Z' }
	isLower := func(r rune) bool { return r >= 'a' && r <= 'z' || (r >= '0' && r <= '9') }

	for i, r := range runes {
		if r == '_' {
			if cur.Len() > 0 {
				out = append(out, cur.String())
				cur.Reset()
			}
			continue
		}
		if i > 0 && isUpper(r) {
			prev := runes[i-1]
			nextIsLower := i+1 < len(runes) && isLowerRune(runes[i+1])
			if isLower(prev) || nextIsLower {
				if cur.Len() > 0 {
					out = append(out, cur.String())
					cur.Reset()
				}
			}
		}
		cur.WriteRune(r)
	}
	if cur.Len() > 0 {
		out = append(out, cur.String())
	}
	return out
}

func isLowerRune(r rune) bool { return r >= 'a' && r <= 'z' }

// ToSnake renders tokens as snake_case.
func ToSnake(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = strings.ToLower(t)
	}
	return strings.Join(parts, "_")
}

func firstAndRest(tokens []string) (string, []string) {
	if len(tokens) == 0 {
		return "", nil
	}
	return tokens[0], tokens[1:]
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = []rune(strings.ToUpper(string(r[0])))[0]
	return string(r)
}

// ToCamel renders tokens as camelCase.
func ToCamel(tokens []string) string {
	first, rest := firstAndRest(tokens)
	if len(rest) == 0 {
		return strings.ToLower(first)
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(first))
	for _, t := range rest {
		b.WriteString(titleCase(t))
	}
	return b.String()
}

// ToPascal renders tokens as PascalCase.
func ToPascal(tokens []string) string {
	first, rest := firstAndRest(tokens)
	var b strings.Builder
	b.WriteString(titleCase(first))
	for _, t := range rest {
		b.WriteString(titleCase(t))
	}
	return b.String()
}

// Format converts name into the requested Convention.
func Format(c Convention, name string) string {
	tokens := tokenize(name)
	switch c {
	case CamelCase:
		return ToCamel(tokens)
	case PascalCase:
		return ToPascal(tokens)
	default:
		return ToSnake(tokens)
	}
}
