package langpack

import (
	"strconv"
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on original_source/babelcode/languages/lang_implementations/go.py
// and schema_parsing/languages.py's Go LanguageSchemaSpec. Go has no
// native tuple type; FormatTuple renders an anonymous struct with
// positional field names; the generated driver's EVALUATION template
// compares such values with reflect.DeepEqual like any other
// non-float return.
func init() {
	Register(&Pack{
		Name:       "Go",
		FileExt:    ".go",
		Convention: namingconvention.PascalCase,
		Reserved:   goReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "bool", "integer": "int32", "long": "int64",
				"float": "float32", "double": "float64", "character": "rune", "string": "string",
			},
			FormatList: func(e string) string { return "[]" + e },
			FormatSet:  func(e string) string { return "map[" + e + "]struct{}" },
			FormatMap:  func(k, v string) string { return "map[" + k + "]" + v },
			FormatTuple: func(es []string) string {
				s := "struct{"
				for i, e := range es {
					s += "Field" + strconv.Itoa(i) + " " + e + "; "
				}
				return s + "}"
			},
		},
		Literals: LiteralConfig{
			Null: "nil", True: "true", False: "false",
			// Grounded on go.py:GoLiteralTranslator.convert_array_like_type,
			// which prepends generic_type.lang_type to every array/map/set
			// literal so the result is a valid Go composite literal
			// (a bare `{1, 2}` is a syntax error without a type prefix).
			FormatList: func(langType string, es []string) string { return langType + join("{", ", ", "}", es) },
			FormatSet: func(langType string, es []string) string {
				s := langType + "{"
				for i, e := range es {
					if i > 0 {
						s += ", "
					}
					s += e + ": {}"
				}
				return s + "}"
			},
			FormatMap:      func(langType string, es []string) string { return langType + join("{", ", ", "}", es) },
			FormatMapEntry: func(k, v string) string { return k + ": " + v },
			FormatTuple:    func(langType string, es []string) string { return langType + join("{", ", ", "}", es) },
			FormatString:   func(s string) string { return strconv.Quote(s) },
			FormatChar:     func(s string) string { return strconv.QuoteRune([]rune(s)[0]) },
			FormatFloat:    defaultFormatFloat,
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `func {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}} {{$p.Type}}{{end}}) {{.Return}} {`,
			DocPrefix:         "",
			DocLine:           "// ",
			DocSuffix:         "",
			WordReplacements:  map[string]string{"list": "slice"},
		},
		// Grounded on lang_implementations/go.py:make_commands: a build
		// step producing a fixed binary name, then a run step.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"go", "build", "-o", "main.exe", fileName}, Timeout: 10 * time.Second},
				{Argv: []string{"./main.exe"}, Timeout: 10 * time.Second},
			}
		},
	})
}

var goReserved = keywordSet(
	"break", "default", "func", "interface", "select", "case", "defer",
	"go", "map", "struct", "chan", "else", "goto", "package", "switch",
	"const", "fallthrough", "if", "range", "type", "continue", "for",
	"import", "return", "var",
)
