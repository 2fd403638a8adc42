package langpack

import (
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on schema_parsing/languages.py's Haskell LanguageSchemaSpec.
func init() {
	Register(&Pack{
		Name:       "Haskell",
		FileExt:    ".hs",
		Convention: namingconvention.CamelCase,
		Reserved:   haskellReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "Bool", "integer": "Int", "long": "Integer",
				"float": "Float", "double": "Double", "character": "Char", "string": "String",
			},
			FormatList:  func(e string) string { return "[" + e + "]" },
			FormatSet:   func(e string) string { return "Set " + e },
			FormatMap:   func(k, v string) string { return "Map " + k + " " + v },
			FormatTuple: func(es []string) string { return join("(", ", ", ")", es) },
		},
		Literals: LiteralConfig{
			Null: "Nothing", True: "True", False: "False",
			FormatList:     func(_ string, es []string) string { return join("[", ", ", "]", es) },
			FormatSet:      func(_ string, es []string) string { return join("Set.fromList [", ", ", "]", es) },
			FormatMap:      func(_ string, es []string) string { return join("Map.fromList [", ", ", "]", es) },
			FormatMapEntry: func(k, v string) string { return "(" + k + ", " + v + ")" },
			FormatTuple:    func(_ string, es []string) string { return join("(", ", ", ")", es) },
			FormatString:   func(s string) string { return quote(s) },
			FormatChar:     func(s string) string { return "'" + s + "'" },
			FormatFloat:    defaultFormatFloat,
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `{{.FnName}} :: {{range .Params}}{{.Type}} -> {{end}}{{.Return}}`,
			DocPrefix:         "",
			DocLine:           "-- | ",
			DocSuffix:         "",
			WordReplacements:  map[string]string{"array": "list"},
		},
		// Grounded on lang_implementations/haskell.py's command_fn: ghc
		// then the resulting binary.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"ghc", "-o", "main.exe", fileName}, Timeout: 20 * time.Second},
				{Argv: []string{"./main.exe"}, Timeout: 10 * time.Second},
			}
		},
	})
}

var haskellReserved = keywordSet(
	"case", "class", "data", "default", "deriving", "do", "else",
	"foreign", "if", "import", "in", "infix", "infixl", "infixr",
	"instance", "let", "module", "newtype", "of", "then", "type",
	"where",
)
