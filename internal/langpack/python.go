package langpack

import (
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on original_source/babelcode/languages/lang_implementations/py3.py
// and schema_parsing/languages.py's Python LanguageSchemaSpec.
func init() {
	Register(&Pack{
		Name:       "Python",
		FileExt:    ".py",
		Convention: namingconvention.SnakeCase,
		Reserved:   pythonReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "bool", "integer": "int", "long": "int",
				"float": "float", "double": "float", "character": "str", "string": "str",
			},
			FormatList:  func(e string) string { return "List[" + e + "]" },
			FormatSet:   func(e string) string { return "Set[" + e + "]" },
			FormatMap:   func(k, v string) string { return "Dict[" + k + ", " + v + "]" },
			FormatTuple: func(es []string) string { return join("Tuple[", ", ", "]", es) },
		},
		Literals: LiteralConfig{
			Null: "None", True: "True", False: "False",
			FormatList:     func(_ string, es []string) string { return join("[", ", ", "]", es) },
			FormatSet:      func(_ string, es []string) string { return join("{", ", ", "}", es) },
			FormatMap:      func(_ string, es []string) string { return join("{", ", ", "}", es) },
			FormatMapEntry: func(k, v string) string { return k + ": " + v },
			FormatTuple:    func(_ string, es []string) string { return join("(", ", ", ")", es) },
			FormatString:   func(s string) string { return quote(s) },
			FormatChar:     func(s string) string { return quote(s) },
			FormatFloat:    defaultFormatFloat,
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `def {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}}: {{$p.Type}}{{end}}) -> {{.Return}}:`,
			DocPrefix:         `    """`,
			DocLine:           "    ",
			DocSuffix:         `    """`,
			WordReplacements:  map[string]string{"array": "list"},
		},
		// Grounded on lang_implementations/py3.py's command_fn: one
		// interpreter invocation, no compile step.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"python3", fileName}, Timeout: 10 * time.Second},
			}
		},
	})
}

var pythonReserved = keywordSet(
	"False", "None", "True", "and", "as", "assert", "async", "await",
	"break", "class", "continue", "def", "del", "elif", "else", "except",
	"finally", "for", "from", "global", "if", "import", "in", "is",
	"lambda", "nonlocal", "not", "or", "pass", "raise", "return", "try",
	"while", "with", "yield",
)

func keywordSet(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}
