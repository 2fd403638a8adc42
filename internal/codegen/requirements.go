package codegen

import (
	"strconv"

	"github.com/google-research/babelcode-go/internal/model"
)

// Default tolerances, matching
// code_generator.py:_determine_question_requirements.
const (
	DefaultFloatPrecision  = 1e-6
	DefaultDoublePrecision = 1e-9
)

// Requirements are the per-question knobs the MAIN/EVALUATION
// templates need beyond the schema and test cases.
type Requirements struct {
	FloatPrecision  float64
	DoublePrecision float64
}

// DetermineRequirements resolves a question's tolerance, honoring a
// per-question override in its metadata ("float_precision" /
// "double_precision") and falling back to the package defaults.
func DetermineRequirements(q model.Question) Requirements {
	r := Requirements{FloatPrecision: DefaultFloatPrecision, DoublePrecision: DefaultDoublePrecision}
	if v, ok := q.Metadata["float_precision"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			r.FloatPrecision = f
		}
	}
	if v, ok := q.Metadata["double_precision"]; ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			r.DoublePrecision = f
		}
	}
	return r
}
