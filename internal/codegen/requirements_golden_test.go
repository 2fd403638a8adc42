package codegen

import (
	"testing"

	"github.com/google-research/babelcode-go/internal/model"
	"github.com/google-research/babelcode-go/testutil"
)

func TestDetermineRequirementsGolden(t *testing.T) {
	q := model.Question{ID: "q"}
	got := DetermineRequirements(q)
	testutil.CompareWithGolden(t, "requirements", "defaults", got)
}
