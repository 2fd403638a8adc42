package codegen

import (
	"github.com/google-research/babelcode-go/internal/langpack"
	"github.com/google-research/babelcode-go/internal/model"
)

// PromptInfo is the text handed to a code-generating model: the
// translated question text plus the signature it must fill in,
// mirroring drivers.py:generate_prompt_info.
type PromptInfo struct {
	Docstring string
	Signature string
}

// GeneratePromptInfo composes a question's prompt text (read from its
// metadata under the "text" key, if present) and its rendered entry
// signature for one language. Unlike GenerateDriver, the signature
// here carries DefaultEntryName ("solve") and the class name
// "Solution" (the question itself carries no entry name to read)
// rather than the PLACEHOLDER_FN_NAME sentinel, since this text is
// meant to be shown to whatever generates the candidate solution, not
// embedded in a driver skeleton.
func GeneratePromptInfo(pack *langpack.Pack, q model.Question) (PromptInfo, error) {
	renamed := langpack.RenameReservedParams(pack, DefaultEntryName, q.ParamOrder)
	sigParams := make([]langpack.SigParam, len(q.Params))
	for i, p := range q.Params {
		lt, err := pack.LangType(p.Type)
		if err != nil {
			return PromptInfo{}, err
		}
		sigParams[i] = langpack.SigParam{Name: renamed[i], Type: lt}
	}
	returnLangType, err := pack.LangType(q.Return)
	if err != nil {
		return PromptInfo{}, err
	}
	signature, err := pack.Prompts.RenderSignature(DefaultEntryName, "Solution", sigParams, returnLangType)
	if err != nil {
		return PromptInfo{}, err
	}

	text := q.Metadata["text"]
	translated := pack.Prompts.TranslateWords(text)
	doc := pack.Prompts.RenderDocstring(translated)

	return PromptInfo{Docstring: doc, Signature: signature}, nil
}
