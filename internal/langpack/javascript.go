package langpack

import (
	"strconv"
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// JavaScript is dynamically typed; PrimitiveMap values are used only
// in generated doc comments (JSDoc-style), not in actual declarations.
// Grounded on schema_parsing/languages.py's JavaScript LanguageSchemaSpec.
func init() {
	Register(&Pack{
		Name:       "JavaScript",
		FileExt:    ".js",
		Convention: namingconvention.CamelCase,
		Reserved:   jsReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "boolean", "integer": "number", "long": "number",
				"float": "number", "double": "number", "character": "string", "string": "string",
			},
			FormatList:  func(e string) string { return "Array<" + e + ">" },
			FormatSet:   func(e string) string { return "Set<" + e + ">" },
			FormatMap:   func(k, v string) string { return "Map<" + k + ", " + v + ">" },
			FormatTuple: func(es []string) string { return join("[", ", ", "]", es) },
		},
		Literals: LiteralConfig{
			Null: "null", True: "true", False: "false",
			FormatList:     func(_ string, es []string) string { return join("[", ", ", "]", es) },
			FormatSet:      func(_ string, es []string) string { return join("new Set([", ", ", "])", es) },
			FormatMap:      func(_ string, es []string) string { return join("new Map([", ", ", "])", es) },
			FormatMapEntry: func(k, v string) string { return "[" + k + ", " + v + "]" },
			FormatTuple:    func(_ string, es []string) string { return join("[", ", ", "]", es) },
			FormatString:   func(s string) string { return strconv.Quote(s) },
			FormatChar:     func(s string) string { return strconv.Quote(s) },
			FormatFloat:    defaultFormatFloat,
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `function {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}}{{end}}) {`,
			DocPrefix:         "/**",
			DocLine:           " * ",
			DocSuffix:         " */",
			WordReplacements:  map[string]string{"list": "array"},
		},
		// Grounded on lang_implementations/javascript.py's command_fn: a
		// single node invocation, no compile step.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"node", fileName}, Timeout: 10 * time.Second},
			}
		},
	})
}

var jsReserved = keywordSet(
	"break", "case", "catch", "class", "const", "continue", "debugger",
	"default", "delete", "do", "else", "export", "extends", "finally",
	"for", "function", "if", "import", "in", "instanceof", "new",
	"return", "super", "switch", "this", "throw", "try", "typeof",
	"var", "void", "while", "with", "yield", "let", "static", "async",
	"await",
)
