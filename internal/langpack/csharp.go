package langpack

import (
	"strconv"
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on schema_parsing/languages.py's CSharp LanguageSchemaSpec.
func init() {
	Register(&Pack{
		Name:       "CSharp",
		FileExt:    ".cs",
		Convention: namingconvention.PascalCase,
		Reserved:   csharpReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "bool", "integer": "int", "long": "long",
				"float": "float", "double": "double", "character": "char", "string": "string",
			},
			FormatList:  func(e string) string { return "List<" + e + ">" },
			FormatSet:   func(e string) string { return "HashSet<" + e + ">" },
			FormatMap:   func(k, v string) string { return "Dictionary<" + k + ", " + v + ">" },
			FormatTuple: func(es []string) string { return join("(", ", ", ")", es) },
		},
		Literals: LiteralConfig{
			Null: "null", True: "true", False: "false",
			FormatList:     func(_ string, es []string) string { return join("new List<object> { ", ", ", " }", es) },
			FormatSet:      func(_ string, es []string) string { return join("new HashSet<object> { ", ", ", " }", es) },
			FormatMap:      func(_ string, es []string) string { return join("new Dictionary<object, object> { ", ", ", " }", es) },
			FormatMapEntry: func(k, v string) string { return "{ " + k + ", " + v + " }" },
			FormatTuple:    func(_ string, es []string) string { return join("(", ", ", ")", es) },
			FormatString:   func(s string) string { return strconv.Quote(s) },
			FormatChar:     func(s string) string { return "'" + cLikeEscape(s) + "'" },
			FormatFloat:    func(f float64) string { return defaultFormatFloat(f) + "d" },
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `public static {{.Return}} {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Type}} {{$p.Name}}{{end}}) {`,
			DocPrefix:         "/// <summary>",
			DocLine:           "/// ",
			DocSuffix:         "/// </summary>",
			WordReplacements:  map[string]string{"array": "List"},
		},
		// Grounded on lang_implementations/csharp.py's command_fn:
		// mono-csc compiles with the System.Web and System.Web.Extensions
		// assemblies referenced, then mono runs it.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"mono-csc", "-r:System.Web.dll", "-r:System.Web.Extensions.dll", fileName, "-o", "main.exe"}, Timeout: 10 * time.Second},
				{Argv: []string{"mono", "main.exe"}, Timeout: 10 * time.Second},
			}
		},
	})
}

var csharpReserved = keywordSet(
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
	"char", "checked", "class", "const", "continue", "decimal",
	"default", "delegate", "do", "double", "else", "enum", "event",
	"explicit", "extern", "false", "finally", "fixed", "float", "for",
	"foreach", "goto", "if", "implicit", "in", "int", "interface",
	"internal", "is", "lock", "long", "namespace", "new", "null",
	"object", "operator", "out", "override", "params", "private",
	"protected", "public", "readonly", "ref", "return", "sbyte",
	"sealed", "short", "sizeof", "stackalloc", "static", "string",
	"struct", "switch", "this", "throw", "true", "try", "typeof",
	"uint", "ulong", "unchecked", "unsafe", "ushort", "using",
	"virtual", "void", "volatile", "while",
)
