package codegen

import (
	"testing"

	"github.com/google-research/babelcode-go/internal/model"
)

func TestDetermineRequirementsDefaults(t *testing.T) {
	q := model.Question{ID: "q"}
	got := DetermineRequirements(q)
	if got.FloatPrecision != DefaultFloatPrecision || got.DoublePrecision != DefaultDoublePrecision {
		t.Errorf("DetermineRequirements(no metadata) = %+v, want defaults", got)
	}
}

func TestDetermineRequirementsOverride(t *testing.T) {
	q := model.Question{ID: "q", Metadata: map[string]string{
		"float_precision":  "0.01",
		"double_precision": "0.0001",
	}}
	got := DetermineRequirements(q)
	if got.FloatPrecision != 0.01 {
		t.Errorf("FloatPrecision = %v, want 0.01", got.FloatPrecision)
	}
	if got.DoublePrecision != 0.0001 {
		t.Errorf("DoublePrecision = %v, want 0.0001", got.DoublePrecision)
	}
}

func TestDetermineRequirementsIgnoresMalformedOverride(t *testing.T) {
	q := model.Question{ID: "q", Metadata: map[string]string{"float_precision": "not-a-number"}}
	got := DetermineRequirements(q)
	if got.FloatPrecision != DefaultFloatPrecision {
		t.Errorf("expected malformed override to fall back to default, got %v", got.FloatPrecision)
	}
}
