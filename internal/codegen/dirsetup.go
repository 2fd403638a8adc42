package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google-research/babelcode-go/internal/langpack"
	"github.com/google-research/babelcode-go/internal/model"
)

// SetupPredictionDir creates one subdirectory per prediction, named
// "<qid>_<predictionID>", writes the fully substituted driver source
// into it, and returns the Prediction with FilePath populated,
// matching drivers.py:setup_language_code_dirs's per-prediction
// directory layout.
func SetupPredictionDir(outDir string, pack *langpack.Pack, driver string, pred model.Prediction) (model.Prediction, error) {
	dirName := fmt.Sprintf("%s_%s", pred.QID, pred.ID)
	dir := filepath.Join(outDir, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return pred, fmt.Errorf("codegen: creating prediction dir %s: %w", dir, err)
	}

	source := SubstitutePrediction(driver, pred)
	filename := "driver" + pack.FileExt
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		return pred, fmt.Errorf("codegen: writing driver file %s: %w", path, err)
	}

	return pred.WithFilePath(path), nil
}
