package results

import "github.com/google-research/babelcode-go/internal/exec"

// PredictionResult is the classified outcome of one execution,
// carrying the per-test-case token map and the ExecutionResult it was
// derived from, matching spec.md §3's PredictionResult.
type PredictionResult struct {
	QID          string
	PredictionID string
	Outcome      Outcome
	Tokens       map[string]Token
	PassedCount  int
	Execution    exec.ExecutionResult
}

// Classify applies spec.md §4.7's priority-ordered classification to
// an ExecutionResult, given the question's full list of declared
// test-case ids (so a test the driver never printed a line for is
// recorded as MISSING rather than silently absent).
func Classify(result exec.ExecutionResult, declaredTestCaseIDs []string) PredictionResult {
	parsed := ParseTestLines(result.Stdout)

	tokens := make(map[string]Token, len(declaredTestCaseIDs))
	missing := false
	hasRuntimeToken := false
	hasFailed := false

	for _, id := range declaredTestCaseIDs {
		token, ok := parsed[id]
		if !ok {
			tokens[id] = TokenMissing
			missing = true
			continue
		}
		switch token {
		case string(TokenPassed):
			tokens[id] = TokenPassed
		case string(TokenFailed):
			tokens[id] = TokenFailed
			hasFailed = true
		default:
			tokens[id] = Token(token)
			hasRuntimeToken = true
		}
	}

	pr := PredictionResult{
		QID:          result.QID,
		PredictionID: result.PredictionID,
		Tokens:       tokens,
		Execution:    result,
	}

	switch {
	case result.ExitCode != 0:
		pr.Outcome = HadError
	case result.HadError:
		pr.Outcome = HadError
	case result.TimedOut:
		pr.Outcome = TimedOut
	case result.Stdout == "":
		pr.Outcome = HadError
	case missing:
		pr.Outcome = HadError
	case hasRuntimeToken:
		pr.Outcome = HadRuntimeError
	case hasFailed:
		pr.Outcome = FailedTest
	default:
		pr.Outcome = Passed
	}

	for _, tok := range tokens {
		if tok == TokenPassed {
			pr.PassedCount++
		}
	}

	return pr
}
