// Package model holds the engine's input data types, Question and
// Prediction, from the data model in SPEC_FULL.md §10; ExecutionResult
// lives in internal/exec and PredictionResult in internal/results.
package model

import (
	"encoding/json"
	"fmt"

	"github.com/google-research/babelcode-go/internal/schema"
)

// ExpectedKeyName is the reserved schema key holding the return value's
// type, matching data_types/question.py:EXPECTED_KEY_NAME.
const ExpectedKeyName = "expected"

// Param is one named, typed parameter in a question's signature.
type Param struct {
	Name string
	Type schema.Type
}

// TestCase is one input/output pair for a question, already decoded
// (via schema.CoerceValue) against the question's schema.
type TestCase struct {
	ID     string
	Input  map[string]any
	Output any
}

// Question is an immutable, language-agnostic coding problem: its
// parameter schema, return type, and test cases. Nothing here is
// language-specific — that translation happens in internal/langpack
// and internal/codegen.
type Question struct {
	ID         string
	Params     []Param
	ParamOrder []string
	Return     schema.Type
	TestCases  []TestCase
	Metadata   map[string]string
}

// rawQuestion mirrors the on-disk JSONL shape read by
// ParseQuestionJSON, patterned on data_types/question.py:from_dict /
// REQUIRED_KEYS.
type rawQuestion struct {
	QID    string `json:"qid"`
	Schema struct {
		Params []struct {
			Name string `json:"name"`
			Type string `json:"type"`
		} `json:"params"`
		Return struct {
			Type string `json:"type"`
		} `json:"return"`
	} `json:"schema"`
	TestCases []struct {
		ID     string         `json:"id"`
		Input  map[string]any `json:"input"`
		Output any            `json:"output"`
	} `json:"test_cases"`
	Metadata map[string]string `json:"metadata"`
}

// ParseQuestionJSON parses one JSONL line into a Question, resolving
// every declared type string and coercing every test case's values
// against the parsed schema. Returns an error identifying the qid on
// any malformed row, so a caller doing batch ingestion (SPEC_FULL.md
// §7.2) can skip just that row.
func ParseQuestionJSON(line []byte) (Question, error) {
	var raw rawQuestion
	if err := json.Unmarshal(line, &raw); err != nil {
		return Question{}, fmt.Errorf("question: invalid JSON: %w", err)
	}
	if raw.QID == "" {
		return Question{}, fmt.Errorf("question: missing qid")
	}

	q := Question{ID: raw.QID, Metadata: raw.Metadata}
	for _, p := range raw.Schema.Params {
		t, err := schema.ParseTypeString(p.Type)
		if err != nil {
			return Question{}, fmt.Errorf("question %s: param %q: %w", raw.QID, p.Name, err)
		}
		q.Params = append(q.Params, Param{Name: p.Name, Type: t})
		q.ParamOrder = append(q.ParamOrder, p.Name)
	}
	retType, err := schema.ParseTypeString(raw.Schema.Return.Type)
	if err != nil {
		return Question{}, fmt.Errorf("question %s: return type: %w", raw.QID, err)
	}
	q.Return = retType

	paramByName := make(map[string]schema.Type, len(q.Params))
	for _, p := range q.Params {
		paramByName[p.Name] = p.Type
	}

	for _, tc := range raw.TestCases {
		input := make(map[string]any, len(tc.Input))
		for name, v := range tc.Input {
			pt, ok := paramByName[name]
			if !ok {
				return Question{}, fmt.Errorf("question %s: test case %s: unknown param %q", raw.QID, tc.ID, name)
			}
			coerced, err := schema.CoerceValue(pt, v)
			if err != nil {
				return Question{}, fmt.Errorf("question %s: test case %s: param %q: %w", raw.QID, tc.ID, name, err)
			}
			input[name] = coerced
		}
		output, err := schema.CoerceValue(q.Return, tc.Output)
		if err != nil {
			return Question{}, fmt.Errorf("question %s: test case %s: output: %w", raw.QID, tc.ID, err)
		}
		q.TestCases = append(q.TestCases, TestCase{ID: tc.ID, Input: input, Output: output})
	}

	return q, nil
}

// ReturnParam exposes the question's return type as a Param using the
// reserved ExpectedKeyName, for code paths that iterate params and the
// return type uniformly (mirrors the original's habit of storing the
// return type in the same schema map under "expected").
func (q Question) ReturnParam() Param {
	return Param{Name: ExpectedKeyName, Type: q.Return}
}
