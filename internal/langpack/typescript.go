package langpack

import (
	"strconv"
	"strings"
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on schema_parsing/languages.py's TypeScript LanguageSchemaSpec;
// TypeScript's tuple type syntax ("[T1, T2]") is reused directly, unlike
// plain JavaScript which has no static type annotations at all.
func init() {
	Register(&Pack{
		Name:       "TypeScript",
		FileExt:    ".ts",
		Convention: namingconvention.CamelCase,
		Reserved:   jsReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "boolean", "integer": "number", "long": "number",
				"float": "number", "double": "number", "character": "string", "string": "string",
			},
			FormatList:  func(e string) string { return e + "[]" },
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
			SignatureTemplate: `function {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}}: {{$p.Type}}{{end}}): {{.Return}} {`,
			DocPrefix:         "/**",
			DocLine:           " * ",
			DocSuffix:         " */",
			WordReplacements:  map[string]string{"list": "array"},
		},
		// Grounded on lang_implementations/typescript.py's command_fn:
		// tsc compiles to a same-stem .js file, which node then runs.
		Commands: func(fileName string) []execpkg.Command {
			stem := strings.TrimSuffix(fileName, ".ts")
			return []execpkg.Command{
				{Argv: []string{"tsc", "--target", "es2020", "--lib", "es5,dom,es2015,es2020", fileName}, Timeout: 15 * time.Second},
				{Argv: []string{"node", stem + ".js"}, Timeout: 10 * time.Second},
			}
		},
	})
}
