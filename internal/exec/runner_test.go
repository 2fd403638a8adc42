package exec

import (
	"os"
	"strings"
	"testing"
	"time"
)

func TestMain(m *testing.M) {
	os.Setenv("ALLOW_EXECUTION", "true")
	os.Exit(m.Run())
}

func TestCheckExecutionAllowedGate(t *testing.T) {
	os.Setenv("ALLOW_EXECUTION", "false")
	defer os.Setenv("ALLOW_EXECUTION", "true")

	gateErr := CheckExecutionAllowed()
	if gateErr == nil {
		t.Fatal("expected ExecutionDisabledError when ALLOW_EXECUTION != true")
	}
	if _, ok := gateErr.(ExecutionDisabledError); !ok {
		t.Errorf("expected ExecutionDisabledError, got %T", gateErr)
	}
}

func TestRunPredictionSuccess(t *testing.T) {
	commands := []Command{{Argv: []string{"sh", "-c", "echo hello"}, Timeout: 2 * time.Second}}
	result, err := RunPrediction("q1", "p1", commands, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if result.HadError || result.TimedOut {
		t.Errorf("unexpected failure flags: %+v", result)
	}
	if !strings.Contains(result.Stdout, "hello") {
		t.Errorf("expected stdout to contain \"hello\", got %q", result.Stdout)
	}
	if !result.AllCommandsRan() {
		t.Error("expected AllCommandsRan true for a single successful command")
	}
}

func TestRunPredictionNonZeroExit(t *testing.T) {
	commands := []Command{{Argv: []string{"sh", "-c", "exit 3"}, Timeout: 2 * time.Second}}
	result, err := RunPrediction("q1", "p1", commands, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !result.HadError {
		t.Error("expected HadError for non-zero exit")
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
}

func TestRunPredictionTimeout(t *testing.T) {
	commands := []Command{{Argv: []string{"sh", "-c", "sleep 2"}, Timeout: 100 * time.Millisecond}}
	result, err := RunPrediction("q1", "p1", commands, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !result.TimedOut {
		t.Error("expected TimedOut true")
	}
}

func TestRunPredictionStopsAfterEarlierFailure(t *testing.T) {
	commands := []Command{
		{Argv: []string{"sh", "-c", "exit 1"}, Timeout: 2 * time.Second},
		{Argv: []string{"sh", "-c", "echo should-not-run"}, Timeout: 2 * time.Second},
	}
	result, err := RunPrediction("q1", "p1", commands, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if result.LastRanCommandIdx != 0 {
		t.Errorf("LastRanCommandIdx = %d, want 0", result.LastRanCommandIdx)
	}
	if result.AllCommandsRan() {
		t.Error("expected AllCommandsRan false after first command failed")
	}
	if strings.Contains(result.Stdout, "should-not-run") {
		t.Error("second command must not have run")
	}
	if len(result.CommandResults) != len(commands) {
		t.Errorf("len(CommandResults) = %d, want %d (one entry per command)", len(result.CommandResults), len(commands))
	}
}

func TestRunPredictionRejectsWhenDisabled(t *testing.T) {
	os.Setenv("ALLOW_EXECUTION", "false")
	defer os.Setenv("ALLOW_EXECUTION", "true")

	_, err := RunPrediction("q1", "p1", []Command{{Argv: []string{"echo", "hi"}, Timeout: time.Second}}, t.TempDir())
	if err == nil {
		t.Error("expected error when execution disabled")
	}
}
