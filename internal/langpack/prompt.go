package langpack

import (
	"strings"
	"text/template"

	"github.com/google-research/babelcode-go/internal/errkit"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// SigParam is one rendered parameter for a signature template: its
// renamed identifier and its resolved language type.
type SigParam struct {
	Name string
	Type string
}

// signatureData is the template context for PromptConfig.SignatureTemplate,
// the Go analogue of translation/prompt_translator.py:translate_signature's
// Jinja2 render context.
type signatureData struct {
	FnName string
	ClsName string
	Params  []SigParam
	Return  string
}

// PromptConfig renders question text and entry-point signatures into a
// target language's convention, mirroring
// translation/prompt_translator.py:PromptTranslator.
type PromptConfig struct {
	// SignatureTemplate is parsed once at pack-construction time with
	// Option("missingkey=error"), the Go analogue of Jinja2's
	// StrictUndefined: an unset field reference fails loudly instead of
	// silently rendering empty.
	SignatureTemplate string
	// DocPrefix/DocLine/DocSuffix wrap translated question text into
	// this language's doc-comment convention (e.g. Python's triple
	// quotes vs. Java's /** ... */ block).
	DocPrefix, DocLine, DocSuffix string
	// WordReplacements substitutes source-agnostic vocabulary
	// ("array" -> "list") the way word_replacement_map does.
	WordReplacements map[string]string

	tmpl *template.Template
}

// CompileSignatureTemplate parses SignatureTemplate once; Register
// calls this for every pack so a malformed template fails at process
// start rather than on first use.
func (p *PromptConfig) CompileSignatureTemplate(name string) error {
	t, err := template.New(name + "-signature").Option("missingkey=error").Parse(p.SignatureTemplate)
	if err != nil {
		return errkit.NewBase(errkit.GEN001, "signature template for %s: %v", name, err)
	}
	p.tmpl = t
	return nil
}

// RenderSignature renders the entry-point signature for fnName/clsName
// with the given (already reserved-keyword-renamed) params and return
// type, mirroring translate_signature.
func (p *PromptConfig) RenderSignature(fnName, clsName string, params []SigParam, ret string) (string, error) {
	var b strings.Builder
	data := signatureData{FnName: fnName, ClsName: clsName, Params: params, Return: ret}
	if err := p.tmpl.Execute(&b, data); err != nil {
		return "", errkit.NewBase(errkit.GEN001, "rendering signature: %v", err)
	}
	return b.String(), nil
}

// RenderDocstring wraps already-translated question text in this
// language's doc-comment convention, one DocLine-prefixed line per
// input line, mirroring format_docstring_for_lang.
func (p *PromptConfig) RenderDocstring(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	var b strings.Builder
	if p.DocPrefix != "" {
		b.WriteString(p.DocPrefix)
		b.WriteByte('\n')
	}
	for _, line := range lines {
		b.WriteString(p.DocLine)
		b.WriteString(line)
		b.WriteByte('\n')
	}
	if p.DocSuffix != "" {
		b.WriteString(p.DocSuffix)
		b.WriteByte('\n')
	}
	return b.String()
}

// formatFns mirrors translate_prompt's formatting_functions list
// (str.title, str.lower, str.upper): every word-replacement pass runs
// once per casing so "Vector"/"vector"/"VECTOR" in the source prompt
// all resolve to the correspondingly-cased replacement.
var formatFns = []func(string) string{
	titleCaser.String,
	strings.ToLower,
	strings.ToUpper,
}

// TranslateWords substitutes every occurrence of a source-agnostic
// vocabulary word with this language's equivalent, mirroring
// translate_prompt's word-replacement pass. Matching is whole-word,
// tried in title/lower/upper case so the source word's casing in the
// prompt is preserved in the replacement, and a trailing plural "s" on
// the matched word is carried over to the replacement.
func (p *PromptConfig) TranslateWords(text string) string {
	for from, to := range p.WordReplacements {
		for _, format := range formatFns {
			text = replaceWholeWord(text, format(from), format(to))
		}
	}
	return text
}

func replaceWholeWord(text, from, to string) string {
	var b strings.Builder
	i := 0
	for i < len(text) {
		idx := strings.Index(text[i:], from)
		if idx < 0 {
			b.WriteString(text[i:])
			break
		}
		start := i + idx
		end := start + len(from)
		plural := end < len(text) && text[end] == 's'
		if plural {
			end++
		}
		before := start == 0 || !isWordByte(text[start-1])
		after := end == len(text) || !isWordByte(text[end])
		b.WriteString(text[i:start])
		switch {
		case !before || !after:
			b.WriteString(text[start:end])
		case plural:
			b.WriteString(to + "s")
		default:
			b.WriteString(to)
		}
		i = end
	}
	return b.String()
}

func isWordByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}
