package langpack

import (
	"strconv"
	"strings"
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on schema_parsing/languages.py's Rust LanguageSchemaSpec.
func init() {
	Register(&Pack{
		Name:       "Rust",
		FileExt:    ".rs",
		Convention: namingconvention.SnakeCase,
		Reserved:   rustReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "bool", "integer": "i32", "long": "i64",
				"float": "f32", "double": "f64", "character": "char", "string": "String",
			},
			FormatList:  func(e string) string { return "Vec<" + e + ">" },
			FormatSet:   func(e string) string { return "HashSet<" + e + ">" },
			FormatMap:   func(k, v string) string { return "HashMap<" + k + ", " + v + ">" },
			FormatTuple: func(es []string) string { return join("(", ", ", ")", es) },
		},
		Literals: LiteralConfig{
			Null: "None", True: "true", False: "false",
			FormatList:     func(_ string, es []string) string { return join("vec![", ", ", "]", es) },
			FormatSet:      func(_ string, es []string) string { return join("HashSet::from([", ", ", "])", es) },
			FormatMap:      func(_ string, es []string) string { return join("HashMap::from([", ", ", "])", es) },
			FormatMapEntry: func(k, v string) string { return "(" + k + ", " + v + ")" },
			FormatTuple:    func(_ string, es []string) string { return join("(", ", ", ")", es) },
			FormatString:   func(s string) string { return strconv.Quote(s) + ".to_string()" },
			FormatChar:     func(s string) string { return "'" + cLikeEscape(s) + "'" },
			FormatFloat:    defaultFormatFloat,
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `fn {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Name}}: {{$p.Type}}{{end}}) -> {{.Return}} {`,
			DocPrefix:         "",
			DocLine:           "/// ",
			DocSuffix:         "",
			WordReplacements:  map[string]string{"list": "vector"},
		},
		// Grounded on lang_implementations/rust.py's command_fn: rustc
		// then the resulting binary, named after the source file's stem.
		Commands: func(fileName string) []execpkg.Command {
			stem := strings.TrimSuffix(fileName, ".rs")
			return []execpkg.Command{
				{Argv: []string{"rustc", fileName, "-o", stem}, Timeout: 15 * time.Second},
				{Argv: []string{"./" + stem}, Timeout: 10 * time.Second},
			}
		},
	})
}

var rustReserved = keywordSet(
	"as", "break", "const", "continue", "crate", "else", "enum",
	"extern", "false", "fn", "for", "if", "impl", "in", "let", "loop",
	"match", "mod", "move", "mut", "pub", "ref", "return", "self",
	"Self", "static", "struct", "super", "trait", "true", "type",
	"unsafe", "use", "where", "while", "async", "await", "dyn",
)
