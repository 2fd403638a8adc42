package langpack

import (
	"time"

	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
)

// Grounded on schema_parsing/languages.py's C++ LanguageSchemaSpec.
func init() {
	Register(&Pack{
		Name:       "C++",
		FileExt:    ".cpp",
		Convention: namingconvention.SnakeCase,
		Reserved:   cppReserved,
		Schema: SchemaSpec{
			PrimitiveMap: map[string]string{
				"boolean": "bool", "integer": "int32_t", "long": "int64_t",
				"float": "float", "double": "double", "character": "char", "string": "std::string",
			},
			FormatList:  func(e string) string { return "std::vector<" + e + ">" },
			FormatSet:   func(e string) string { return "std::unordered_set<" + e + ">" },
			FormatMap:   func(k, v string) string { return "std::unordered_map<" + k + ", " + v + ">" },
			FormatTuple: func(es []string) string { return join("std::tuple<", ", ", ">", es) },
		},
		Literals: LiteralConfig{
			Null: "nullptr", True: "true", False: "false",
			// Braced-init-list literals are prefixed with their LangType: an
			// `auto expected = {1, 2};` declaration deduces
			// std::initializer_list<T> instead of the container type, which
			// then fails to compare against a std::vector/unordered_set/
			// unordered_map return value (go.py's convert_array_like_type
			// prepends the same way for Golang's composite literals).
			FormatList:     func(langType string, es []string) string { return langType + join("{", ", ", "}", es) },
			FormatSet:      func(langType string, es []string) string { return langType + join("{", ", ", "}", es) },
			FormatMap:      func(langType string, es []string) string { return langType + join("{", ", ", "}", es) },
			FormatMapEntry: func(k, v string) string { return "{" + k + ", " + v + "}" },
			FormatTuple:    func(langType string, es []string) string { return join("std::make_tuple(", ", ", ")", es) },
			FormatString:   func(s string) string { return `"` + cLikeEscape(s) + `"` },
			FormatChar:     func(s string) string { return "'" + cLikeEscape(s) + "'" },
			FormatFloat:    func(f float64) string { return defaultFormatFloat(f) },
			FormatInt:      defaultFormatInt,
		},
		Prompts: PromptConfig{
			SignatureTemplate: `{{.Return}} {{.FnName}}({{range $i, $p := .Params}}{{if $i}}, {{end}}{{$p.Type}} {{$p.Name}}{{end}}) {`,
			DocPrefix:         "/**",
			DocLine:           " * ",
			DocSuffix:         " */",
			WordReplacements:  map[string]string{"list": "vector"},
		},
		// Grounded on lang_implementations/cpp.py's command_fn: g++ then
		// the resulting binary.
		Commands: func(fileName string) []execpkg.Command {
			return []execpkg.Command{
				{Argv: []string{"g++", fileName, "-o", "main.exe"}, Timeout: 10 * time.Second},
				{Argv: []string{"./main.exe"}, Timeout: 10 * time.Second},
			}
		},
	})
}

var cppReserved = keywordSet(
	"alignas", "alignof", "and", "asm", "auto", "bool", "break", "case",
	"catch", "char", "class", "const", "constexpr", "continue",
	"decltype", "default", "delete", "do", "double", "else", "enum",
	"explicit", "export", "extern", "false", "float", "for", "friend",
	"goto", "if", "inline", "int", "long", "mutable", "namespace",
	"new", "noexcept", "nullptr", "operator", "private", "protected",
	"public", "register", "return", "short", "signed", "sizeof",
	"static", "struct", "switch", "template", "this", "throw", "true",
	"try", "typedef", "typeid", "typename", "union", "unsigned",
	"using", "virtual", "void", "volatile", "while",
)
