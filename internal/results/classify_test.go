package results

import (
	"testing"

	"github.com/google-research/babelcode-go/internal/exec"
)

func TestClassifyPassed(t *testing.T) {
	r := exec.ExecutionResult{Stdout: "TEST-0...PASSED\nTEST-1...PASSED\n"}
	pr := Classify(r, []string{"0", "1"})
	if pr.Outcome != Passed {
		t.Errorf("Outcome = %v, want PASSED", pr.Outcome)
	}
	if pr.PassedCount != 2 {
		t.Errorf("PassedCount = %d, want 2", pr.PassedCount)
	}
}

func TestClassifyFailedTest(t *testing.T) {
	r := exec.ExecutionResult{Stdout: "TEST-0...PASSED\nTEST-1...FAILED\n"}
	pr := Classify(r, []string{"0", "1"})
	if pr.Outcome != FailedTest {
		t.Errorf("Outcome = %v, want FAILED_TEST", pr.Outcome)
	}
}

func TestClassifyNonZeroExitTakesPriority(t *testing.T) {
	r := exec.ExecutionResult{ExitCode: 1, Stdout: "TEST-0...PASSED\n"}
	pr := Classify(r, []string{"0"})
	if pr.Outcome != HadError {
		t.Errorf("Outcome = %v, want HAD_ERROR (nonzero exit trumps passing tokens)", pr.Outcome)
	}
}

func TestClassifyTimedOut(t *testing.T) {
	r := exec.ExecutionResult{TimedOut: true, Stdout: ""}
	pr := Classify(r, []string{"0"})
	if pr.Outcome != TimedOut {
		t.Errorf("Outcome = %v, want TIMED_OUT", pr.Outcome)
	}
}

func TestClassifyEmptyStdout(t *testing.T) {
	r := exec.ExecutionResult{Stdout: ""}
	pr := Classify(r, []string{"0"})
	if pr.Outcome != HadError {
		t.Errorf("Outcome = %v, want HAD_ERROR for empty stdout", pr.Outcome)
	}
}

func TestClassifyMissingTestCase(t *testing.T) {
	r := exec.ExecutionResult{Stdout: "TEST-0...PASSED\n"}
	pr := Classify(r, []string{"0", "1"})
	if pr.Outcome != HadError {
		t.Errorf("Outcome = %v, want HAD_ERROR when a declared test is missing", pr.Outcome)
	}
	if pr.Tokens["1"] != TokenMissing {
		t.Errorf("Tokens[1] = %v, want MISSING", pr.Tokens["1"])
	}
}

func TestClassifyRuntimeErrorToken(t *testing.T) {
	r := exec.ExecutionResult{Stdout: "TEST-0...NullPointerException\n"}
	pr := Classify(r, []string{"0"})
	if pr.Outcome != HadRuntimeError {
		t.Errorf("Outcome = %v, want HAD_RUNTIME_ERROR", pr.Outcome)
	}
}

func TestClassifyPriorityOrderHadErrorFlagBeforeMissing(t *testing.T) {
	// had_error flag set but stdout is also missing a declared test:
	// had_error (priority 2) must win over missing (priority 5), though
	// both resolve to HAD_ERROR here so this mostly documents intent.
	r := exec.ExecutionResult{HadError: true, Stdout: "TEST-0...PASSED\n"}
	pr := Classify(r, []string{"0", "1"})
	if pr.Outcome != HadError {
		t.Errorf("Outcome = %v, want HAD_ERROR", pr.Outcome)
	}
}
