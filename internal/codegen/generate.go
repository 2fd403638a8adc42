package codegen

import (
	"bytes"
	"strings"

	"github.com/google-research/babelcode-go/internal/errkit"
	"github.com/google-research/babelcode-go/internal/langpack"
	"github.com/google-research/babelcode-go/internal/model"
	"github.com/google-research/babelcode-go/internal/schema"
)

// Sentinel tokens left untouched by template rendering and substituted
// afterward by a plain string replace, matching SPEC_FULL.md §4 and
// drivers.py:setup_language_code_dirs's post-render substitution.
const (
	SentinelCodeBody = "PLACEHOLDER_CODE_BODY"
	SentinelFnName   = "PLACEHOLDER_FN_NAME"
	SentinelClsName  = "PLACEHOLDER_CLS_NAME"
)

// DefaultEntryName is used when the prediction supplies no entry
// function name; the question's metadata is not consulted.
const DefaultEntryName = "solve"

// renderedTestCase is the per-test-case MAIN-template render context.
type renderedTestCase struct {
	ID              string
	ParamArgs       string
	ExpectedLiteral string
}

// evaluationData is the EVALUATION-template render context: it is
// rendered once per question, parametrized on that question's return
// type, since a statically-typed target language needs a concretely
// typed comparison function rather than one generic helper.
type evaluationData struct {
	ReturnType      string
	ReturnKind      string // generic leaf name ("float", "double", "integer", ...) or "container"
	FloatPrecision  string
	DoublePrecision string
}

// mainData is the MAIN-template render context.
type mainData struct {
	Signature          string
	EvaluationFunction string
	TestCases          []renderedTestCase
	FloatPrecision     string
	DoublePrecision    string
}

// GenerationError reports a failure generating code for one question,
// carrying the qid so batch generation can isolate it rather than
// aborting, matching drivers.py:generate_code_for_questions.
type GenerationError struct {
	errkit.BaseError
	QID string
}

func newGenerationError(qid, format string, args ...any) GenerationError {
	return GenerationError{BaseError: errkit.NewBase(errkit.GEN002, format, args...), QID: qid}
}

// GenerateDriver renders the complete HEADER+MAIN source for one
// question in one language, with its entry point still carrying the
// PLACEHOLDER_FN_NAME/PLACEHOLDER_CLS_NAME sentinels (substitution
// into a concrete prediction happens in SubstitutePrediction, since
// the same generated driver skeleton is reused for every prediction
// of a question in a language — mirroring
// drivers.py:_generate_question_code followed by
// setup_language_code_dirs's per-prediction substitution pass).
func GenerateDriver(pack *langpack.Pack, q model.Question) (string, error) {
	req := DetermineRequirements(q)
	floatTol := pack.Literals.FormatFloat(req.FloatPrecision)
	doubleTol := pack.Literals.FormatFloat(req.DoublePrecision)

	renamed := langpack.RenameReservedParams(pack, SentinelFnName, q.ParamOrder)
	sigParams := make([]langpack.SigParam, len(q.Params))
	paramLangType := make(map[string]string, len(q.Params))
	for i, p := range q.Params {
		lt, err := pack.LangType(p.Type)
		if err != nil {
			return "", newGenerationError(q.ID, "param %q: %v", p.Name, err)
		}
		sigParams[i] = langpack.SigParam{Name: renamed[i], Type: lt}
		paramLangType[p.Name] = lt
	}
	returnLangType, err := pack.LangType(q.Return)
	if err != nil {
		return "", newGenerationError(q.ID, "return type: %v", err)
	}

	signature, err := pack.Prompts.RenderSignature(SentinelFnName, SentinelClsName, sigParams, returnLangType)
	if err != nil {
		return "", newGenerationError(q.ID, "signature: %v", err)
	}

	set, err := Templates(pack.Name)
	if err != nil {
		return "", newGenerationError(q.ID, "templates: %v", err)
	}

	var evalBuf bytes.Buffer
	if err := set.Evaluation.Execute(&evalBuf, evaluationData{
		ReturnType:      returnLangType,
		ReturnKind:      returnKind(q.Return),
		FloatPrecision:  floatTol,
		DoublePrecision: doubleTol,
	}); err != nil {
		return "", newGenerationError(q.ID, "evaluation template: %v", err)
	}

	renderedCases := make([]renderedTestCase, len(q.TestCases))
	for i, tc := range q.TestCases {
		args := make([]string, len(q.ParamOrder))
		for j, name := range q.ParamOrder {
			lit, err := pack.RenderLiteral(paramType(q, name), tc.Input[name])
			if err != nil {
				return "", newGenerationError(q.ID, "test case %s param %q: %v", tc.ID, name, err)
			}
			args[j] = lit
		}
		expected, err := pack.RenderLiteral(q.Return, tc.Output)
		if err != nil {
			return "", newGenerationError(q.ID, "test case %s expected value: %v", tc.ID, err)
		}
		renderedCases[i] = renderedTestCase{ID: tc.ID, ParamArgs: strings.Join(args, ", "), ExpectedLiteral: expected}
	}

	var headerBuf bytes.Buffer
	if err := set.Header.Execute(&headerBuf, struct{}{}); err != nil {
		return "", newGenerationError(q.ID, "header template: %v", err)
	}

	var mainBuf bytes.Buffer
	if err := set.Main.Execute(&mainBuf, mainData{
		Signature:          signature,
		EvaluationFunction: evalBuf.String(),
		TestCases:          renderedCases,
		FloatPrecision:     floatTol,
		DoublePrecision:    doubleTol,
	}); err != nil {
		return "", newGenerationError(q.ID, "main template: %v", err)
	}

	return headerBuf.String() + "\n\n" + mainBuf.String(), nil
}

// returnKind reports the generic leaf name of t, or "container" for
// any non-leaf shape, letting EVALUATION templates pick a
// tolerance-aware comparison only where a float/double is actually
// the top-level return value.
func returnKind(t schema.Type) string {
	if leaf, ok := t.(schema.Leaf); ok {
		return leaf.Name
	}
	return "container"
}

func paramType(q model.Question, name string) schema.Type {
	for _, p := range q.Params {
		if p.Name == name {
			return p.Type
		}
	}
	return nil
}

// SubstitutePrediction replaces the sentinel tokens in a generated
// driver skeleton with one prediction's code body and entry names,
// matching drivers.py:setup_language_code_dirs's post-render string
// replace (never re-run through text/template, so the prediction's
// own source text is never subject to template escaping).
func SubstitutePrediction(driver string, pred model.Prediction) string {
	fnName := pred.EntryFnName
	if fnName == "" {
		fnName = DefaultEntryName
	}
	replacer := strings.NewReplacer(
		SentinelCodeBody, pred.Code,
		SentinelFnName, fnName,
		SentinelClsName, pred.EntryClsName,
	)
	return replacer.Replace(driver)
}

// GenerateCodeForQuestions generates one driver skeleton per question
// in batch, isolating per-question failures into a slice instead of
// aborting, matching drivers.py:generate_code_for_questions.
func GenerateCodeForQuestions(pack *langpack.Pack, questions []model.Question) (map[string]string, []GenerationError) {
	drivers := make(map[string]string, len(questions))
	var failures []GenerationError
	for _, q := range questions {
		driver, err := GenerateDriver(pack, q)
		if err != nil {
			if genErr, ok := err.(GenerationError); ok {
				failures = append(failures, genErr)
				continue
			}
			failures = append(failures, newGenerationError(q.ID, "%v", err))
			continue
		}
		drivers[q.ID] = driver
	}
	return drivers, failures
}
