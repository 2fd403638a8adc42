package exec

import (
	"os"

	"github.com/google-research/babelcode-go/internal/errkit"
)

// ExecutionDisabledError reports that the harness was asked to spawn a
// subprocess without the ALLOW_EXECUTION safety gate set, matching
// execution.py:execute_code's ALLOWED_ERRORS env-gate check.
type ExecutionDisabledError struct{ errkit.BaseError }

func newExecutionDisabledError() ExecutionDisabledError {
	return ExecutionDisabledError{errkit.NewBase(errkit.EXE001,
		"execution disabled: set ALLOW_EXECUTION=true to run generated code")}
}

// CheckExecutionAllowed returns ExecutionDisabledError unless the
// ALLOW_EXECUTION environment variable is exactly "true". Every entry
// point that spawns a subprocess must call this first.
func CheckExecutionAllowed() error {
	if os.Getenv("ALLOW_EXECUTION") != "true" {
		return newExecutionDisabledError()
	}
	return nil
}
