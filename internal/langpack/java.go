package langpack

import (
	"strconv"
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on schema_parsing/languages.py's Java LanguageSchemaSpec.
func init() {
	Register(&Pack{
		Name:       "Java",
		FileExt:    ".java",
		Convention: namingconvention.CamelCase,
		Reserved:   javaReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "Boolean", "integer": "Integer", "long": "Long",
				"float": "Float", "double": "Double", "character": "Character", "string": "String",
			},
			FormatList:  func(e string) string { return "List<" + e + ">" },
			FormatSet:   func(e string) string { return "Set<" + e + ">" },
			FormatMap:   func(k, v string) string { return "Map<" + k + ", " + v + ">" },
			FormatTuple: func(es []string) string { return join("Tuple"+itoa(len(es))+"<", ", ", ">", es) },
		},
		Literals: LiteralConfig{
			Null: "null", True: "true", False: "false",
			FormatList:     func(_ string, es []string) string { return join("Arrays.asList(", ", ", ")", es) },
			FormatSet:      func(_ string, es []string) string { return join("new HashSet<>(Arrays.asList(", ", ", "))", es) },
			FormatMap:      func(_ string, es []string) string { return join("Map.ofEntries(", ", ", ")", es) },
			FormatMapEntry: func(k, v string) string { return "Map.entry(" + k + ", " + v + ")" },
			FormatTuple:    func(_ string, es []string) string { return join("new Tuple"+itoa(len(es))+"<>(", ", ", ")", es) },
			FormatString:   func(s string) string { return strconv.Quote(s) },
			FormatChar:     func(s string) string { return "'" + cLikeEscape(s) + "'" },
			FormatFloat:    func(f float64) string { return defaultFormatFloat(f) + "d" },
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `public static {{.Return}} {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Type}} {{$p.Name}}{{end}}) {`,
			DocPrefix:         "    /**",
			DocLine:           "     * ",
			DocSuffix:         "     */",
			WordReplacements:  map[string]string{"array": "List"},
		},
		// Grounded on lang_implementations/java.py's command_fn: a single
		// `java <file>.java` invocation, relying on the JDK's single-file
		// source-code launcher rather than a separate javac step.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"java", fileName}, Timeout: 15 * time.Second},
			}
		},
	})
}

func itoa(n int) string { return strconv.Itoa(n) }

var javaReserved = keywordSet(
	"abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double",
	"else", "enum", "extends", "final", "finally", "float", "for",
	"goto", "if", "implements", "import", "instanceof", "int",
	"interface", "long", "native", "new", "package", "private",
	"protected", "public", "return", "short", "static", "strictfp",
	"super", "switch", "synchronized", "this", "throw", "throws",
	"transient", "try", "void", "volatile", "while",
)
