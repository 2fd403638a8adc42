package langpack

import (
	"strconv"
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on schema_parsing/languages.py's Kotlin LanguageSchemaSpec.
// Kotlin has native Pair/Triple for arity 2/3; higher arities fall
// back to a TupleN type name, as the Java pack does; no TupleN class
// is emitted into the driver.
func init() {
	Register(&Pack{
		Name:       "Kotlin",
		FileExt:    ".kt",
		Convention: namingconvention.CamelCase,
		Reserved:   kotlinReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "Boolean", "integer": "Int", "long": "Long",
				"float": "Float", "double": "Double", "character": "Char", "string": "String",
			},
			FormatList:  func(e string) string { return "List<" + e + ">" },
			FormatSet:   func(e string) string { return "Set<" + e + ">" },
			FormatMap:   func(k, v string) string { return "Map<" + k + ", " + v + ">" },
			FormatTuple: kotlinTupleType,
		},
		Literals: LiteralConfig{
			Null: "null", True: "true", False: "false",
			FormatList:     func(_ string, es []string) string { return join("listOf(", ", ", ")", es) },
			FormatSet:      func(_ string, es []string) string { return join("setOf(", ", ", ")", es) },
			FormatMap:      func(_ string, es []string) string { return join("mapOf(", ", ", ")", es) },
			FormatMapEntry: func(k, v string) string { return k + " to " + v },
			FormatTuple:    kotlinTupleLiteral,
			FormatString:   func(s string) string { return strconv.Quote(s) },
			FormatChar:     func(s string) string { return "'" + cLikeEscape(s) + "'" },
			FormatFloat:    func(f float64) string { return defaultFormatFloat(f) + "f" },
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `fun {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}}: {{$p.Type}}{{end}}): {{.Return}} {`,
			DocPrefix:         "/**",
			DocLine:           " * ",
			DocSuffix:         " */",
			WordReplacements:  map[string]string{"array": "list"},
		},
		// Grounded on lang_implementations/kotlin.py's command_fn: a
		// single kotlinc script invocation, no separate jar-run step.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"kotlinc", "-script", fileName, "-no-reflect", "-nowarn"}, Timeout: 30 * time.Second},
			}
		},
	})
}

func kotlinTupleType(es []string) string {
	switch len(es) {
	case 2:
		return join("Pair<", ", ", ">", es)
	case 3:
		return join("Triple<", ", ", ">", es)
	default:
		return join("Tuple"+itoa(len(es))+"<", ", ", ">", es)
	}
}

func kotlinTupleLiteral(_ string, es []string) string {
	switch len(es) {
	case 2:
		return es[0] + " to " + es[1]
	case 3:
		return join("Triple(", ", ", ")", es)
	default:
		return join("Tuple"+itoa(len(es))+"(", ", ", ")", es)
	}
}

var kotlinReserved = keywordSet(
	"as", "break", "class", "continue", "do", "else", "false", "for",
	"fun", "if", "in", "interface", "is", "null", "object", "package",
	"return", "super", "this", "throw", "true", "try", "typealias",
	"typeof", "val", "var", "when", "while",
)
