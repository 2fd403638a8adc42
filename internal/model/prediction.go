package model

import (
	"encoding/json"
	"fmt"
)

// Prediction is a candidate solution for one question in one target
// language, bound to the generated driver file once code generation
// has run. Frozen once constructed, matching
// data_types/prediction.py:Prediction's frozen dataclass.
type Prediction struct {
	ID           string
	QID          string
	Lang         string
	Code         string
	FilePath     string
	EntryFnName  string
	EntryClsName string
}

type rawPrediction struct {
	ID           string `json:"id"`
	QID          string `json:"qid"`
	Lang         string `json:"language"`
	Code         string `json:"code"`
	EntryFnName  string `json:"entry_fn_name"`
	EntryClsName string `json:"entry_cls_name"`
}

// ParsePredictionJSON parses one JSONL line into a Prediction.
// defaultLang is used when the row omits "language", matching
// Prediction.from_dict's default_language parameter.
func ParsePredictionJSON(line []byte, defaultLang string) (Prediction, error) {
	var raw rawPrediction
	if err := json.Unmarshal(line, &raw); err != nil {
		return Prediction{}, fmt.Errorf("prediction: invalid JSON: %w", err)
	}
	if raw.ID == "" || raw.QID == "" {
		return Prediction{}, fmt.Errorf("prediction: missing id or qid")
	}
	lang := raw.Lang
	if lang == "" {
		lang = defaultLang
	}
	return Prediction{
		ID:           raw.ID,
		QID:          raw.QID,
		Lang:         lang,
		Code:         raw.Code,
		EntryFnName:  raw.EntryFnName,
		EntryClsName: raw.EntryClsName,
	}, nil
}

// WithFilePath returns a copy of p with FilePath set, used once the
// code generator has written the driver file for this prediction.
func (p Prediction) WithFilePath(path string) Prediction {
	p.FilePath = path
	return p
}

// Key uniquely identifies a prediction's result across resumable runs.
type Key struct {
	QID string
	ID  string
}

func (k Key) String() string { return k.QID + ":" + k.ID }
