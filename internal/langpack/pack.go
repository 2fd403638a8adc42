// Package langpack supplies one Pack per supported target language:
// its primitive/container type mapping, its literal renderer, and its
// prompt/signature renderer, composed the way
// original_source/babelcode/languages.py and
// schema_parsing/languages.py split the same concerns.
package langpack

import (
	"sort"
	"sync"
	"text/template"

	"github.com/google-research/babelcode-go/internal/errkit"
	execpkg "github.com/google-research/babelcode-go/internal/exec"
	"github.com/google-research/babelcode-go/internal/namingconvention"
	"github.com/google-research/babelcode-go/internal/schema"
)

// SchemaSpec binds the generic TypeExpr algebra to one language's
// concrete type syntax, mirroring languages.py:LanguageSchemaSpec.
type SchemaSpec struct {
	// PrimitiveMap maps a generic leaf name ("integer", "string", ...)
	// to the language's own primitive type spelling ("int32", "String").
	PrimitiveMap map[string]string
	FormatList   func(elemLangType string) string
	FormatSet    func(elemLangType string) string
	FormatMap    func(keyLangType, valueLangType string) string
	FormatTuple  func(elemLangTypes []string) string
}

// Pack is everything needed to generate and run code in one target
// language.
type Pack struct {
	Name       string
	FileExt    string
	Convention namingconvention.Convention
	Schema     SchemaSpec
	Literals   LiteralConfig
	Prompts    PromptConfig
	Reserved   map[string]bool
	// Templates is a slot for the three named templates
	// (HEADER/MAIN/EVALUATION); nothing populates it. internal/codegen
	// keeps its loaded templates in its own per-language TemplateSet
	// (see codegen.Templates).
	Templates map[string]*template.Template
	// Commands builds the OS command vector needed to run a driver file
	// with the given name (compile step(s) then a run step, for
	// compiled languages), mirroring each lang_implementations/*.py
	// module's command_fn/make_commands.
	Commands func(fileName string) []execpkg.Command
}

// LangType resolves a generic Type to this language's concrete type
// string, recursing through containers, mirroring
// schema_parsing/parsing.py:parse_language_schema's convert_schema_type.
func (p *Pack) LangType(t schema.Type) (string, error) {
	switch tt := t.(type) {
	case schema.Leaf:
		lt, ok := p.Schema.PrimitiveMap[tt.Name]
		if !ok {
			return "", newUnsupportedTypeError("leaf type %q is not supported by %s", tt.Name, p.Name)
		}
		return lt, nil
	case schema.List:
		elem, err := p.LangType(tt.Elem)
		if err != nil {
			return "", err
		}
		return p.Schema.FormatList(elem), nil
	case schema.Set:
		elem, err := p.LangType(tt.Elem)
		if err != nil {
			return "", err
		}
		return p.Schema.FormatSet(elem), nil
	case schema.Map:
		key, err := p.LangType(tt.Key)
		if err != nil {
			return "", err
		}
		val, err := p.LangType(tt.Value)
		if err != nil {
			return "", err
		}
		return p.Schema.FormatMap(key, val), nil
	case schema.Tuple:
		elems := make([]string, len(tt.Elems))
		for i, e := range tt.Elems {
			lt, err := p.LangType(e)
			if err != nil {
				return "", err
			}
			elems[i] = lt
		}
		return p.Schema.FormatTuple(elems), nil
	default:
		return "", newUnsupportedTypeError("%v is not supported by %s", t, p.Name)
	}
}

// UnsupportedTypeError reports a leaf type with no mapping in a pack.
type UnsupportedTypeError struct{ errkit.BaseError }

func newUnsupportedTypeError(format string, args ...any) UnsupportedTypeError {
	return UnsupportedTypeError{errkit.NewBase(errkit.LNG001, format, args...)}
}

// NotRegisteredError reports a lookup for an unregistered language.
type NotRegisteredError struct{ errkit.BaseError }

func newNotRegisteredError(name string) NotRegisteredError {
	return NotRegisteredError{errkit.NewBase(errkit.LNG002, "language %q is not registered", name)}
}

// Registry is a process-wide, concurrency-safe map of language name to
// Pack, mirroring the singleton-registry shape of
// internal/schema/registry.go (teacher) and languages.py:LanguageRegistry.
type Registry struct {
	mu    sync.RWMutex
	packs map[string]*Pack
}

var defaultRegistry = &Registry{packs: make(map[string]*Pack)}

// Register adds a Pack to the default registry, compiling its
// signature template up front so a malformed template fails at
// process start (init() time) rather than on first use. Intended to
// be called from each per-language file's init().
func Register(p *Pack) {
	if err := p.Prompts.CompileSignatureTemplate(p.Name); err != nil {
		panic(err)
	}
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.packs[p.Name] = p
}

// Get looks up a registered Pack by name.
func Get(name string) (*Pack, error) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	p, ok := defaultRegistry.packs[name]
	if !ok {
		return nil, newNotRegisteredError(name)
	}
	return p, nil
}

// Names returns every registered language name, sorted.
func Names() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	names := make([]string, 0, len(defaultRegistry.packs))
	for n := range defaultRegistry.packs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// RenameReservedParams renames any parameter colliding with this pack's
// reserved keywords, its entry name, or an already-renamed parameter to
// "<name>_arg<i>", where i is the parameter's position in params,
// mirroring dataset_conversion/question_parsing.py:498's
// `new_arg_name = f'{arg}_arg{i}'`.
func RenameReservedParams(p *Pack, entryName string, params []string) []string {
	used := map[string]bool{entryName: true}
	out := make([]string, len(params))
	for i, name := range params {
		renamed := name
		for p.Reserved[renamed] || used[renamed] {
			renamed = name + "_arg" + itoa(i)
		}
		used[renamed] = true
		out[i] = renamed
	}
	return out
}
