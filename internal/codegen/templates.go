// Package codegen implements the code generation pipeline: tolerance
// selection, test-case literal translation, HEADER/MAIN/EVALUATION
// template rendering, and sentinel substitution, as described in
// SPEC_FULL.md §4.
package codegen

import (
	"embed"
	"io/fs"
	"text/template"

	"github.com/google-research/babelcode-go/internal/errkit"
)

//go:embed templates
var templateFS embed.FS

// RequiredTemplates are the three named templates every language must
// provide, mirroring code_generator.py:REQUIRED_TEMPLATES.
var RequiredTemplates = []string{"header", "main", "evaluation"}

// MissingTemplateError reports a language missing one of RequiredTemplates.
type MissingTemplateError struct{ errkit.BaseError }

func newMissingTemplateError(format string, args ...any) MissingTemplateError {
	return MissingTemplateError{errkit.NewBase(errkit.GEN001, format, args...)}
}

// templateDirs maps a langpack.Pack name to its templates/ subdirectory.
var templateDirs = map[string]string{
	"Python":     "python",
	"Go":         "go",
	"Java":       "java",
	"JavaScript": "javascript",
	"TypeScript": "typescript",
	"C++":        "cpp",
	"Rust":       "rust",
	"Kotlin":     "kotlin",
	"CSharp":     "csharp",
	"Haskell":    "haskell",
}

// TemplateSet holds the three loaded templates for one language.
type TemplateSet struct {
	Header     *template.Template
	Main       *template.Template
	Evaluation *template.Template
}

var loaded = make(map[string]*TemplateSet)

// LoadTemplates parses every registered language's template trio once,
// at process start, mirroring code_generator.py:load_template_map and
// loading static assets once rather than per-call.
func LoadTemplates() error {
	for lang, dir := range templateDirs {
		set, err := loadOne(dir)
		if err != nil {
			return newMissingTemplateError("language %q: %v", lang, err)
		}
		loaded[lang] = set
	}
	return nil
}

func loadOne(dir string) (*TemplateSet, error) {
	sub, err := fs.Sub(templateFS, "templates/"+dir)
	if err != nil {
		return nil, err
	}
	parse := func(name string) (*template.Template, error) {
		data, err := fs.ReadFile(sub, name+".tmpl")
		if err != nil {
			return nil, err
		}
		return template.New(dir + "-" + name).Option("missingkey=error").Parse(string(data))
	}
	header, err := parse("header")
	if err != nil {
		return nil, err
	}
	main, err := parse("main")
	if err != nil {
		return nil, err
	}
	evaluation, err := parse("evaluation")
	if err != nil {
		return nil, err
	}
	return &TemplateSet{Header: header, Main: main, Evaluation: evaluation}, nil
}

// Templates returns the loaded TemplateSet for a language, requiring
// LoadTemplates to have run first.
func Templates(lang string) (*TemplateSet, error) {
	set, ok := loaded[lang]
	if !ok {
		return nil, newMissingTemplateError("templates for %q not loaded (call LoadTemplates first)", lang)
	}
	return set, nil
}
