package exec

import (
	"os"
	"path/filepath"
	"testing"
)

func TestJournalAppendAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	j, err := OpenJournal(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := j.Append("q1", "p1", ExecutionResult{QID: "q1", PredictionID: "p1", ExitCode: 0}); err != nil {
		t.Fatal(err)
	}
	if err := j.Append("q1", "p2", ExecutionResult{QID: "q1", PredictionID: "p2", ExitCode: 1, HadError: true}); err != nil {
		t.Fatal(err)
	}
	j.Close()

	seen, err := LoadJournal(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 journaled results, got %d", len(seen))
	}
	if !seen["q1:p2"].HadError {
		t.Error("expected q1:p2 to carry HadError=true")
	}
}

func TestJournalLoadMissingFile(t *testing.T) {
	seen, err := LoadJournal(filepath.Join(t.TempDir(), "does-not-exist.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 0 {
		t.Errorf("expected empty map for missing journal, got %d entries", len(seen))
	}
}

func TestJournalLoadSkipsMalformedTrailingLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	good := `{"qid":"q1","prediction_id":"p1","result":{"exit_code":0}}` + "\n"
	corrupt := `{"qid":"q1","prediction_` // truncated, no trailing newline
	if err := os.WriteFile(path, []byte(good+corrupt), 0o644); err != nil {
		t.Fatal(err)
	}

	seen, err := LoadJournal(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 {
		t.Fatalf("expected 1 well-formed record, got %d", len(seen))
	}
	if _, ok := seen["q1:p1"]; !ok {
		t.Error("expected q1:p1 to be loaded")
	}
}

func TestJournalDedupesByKeepingLastWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	j, err := OpenJournal(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = j.Append("q1", "p1", ExecutionResult{QID: "q1", PredictionID: "p1", ExitCode: 1, HadError: true})
	_ = j.Append("q1", "p1", ExecutionResult{QID: "q1", PredictionID: "p1", ExitCode: 0})
	j.Close()

	seen, err := LoadJournal(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 1 {
		t.Fatalf("expected dedup to one entry for repeated key, got %d", len(seen))
	}
	if seen["q1:p1"].HadError {
		t.Error("expected the later write to win over the earlier one")
	}
}

func TestRewrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.jsonl")
	results := map[string]ExecutionResult{
		"q1:p1": {QID: "q1", PredictionID: "p1", ExitCode: 0},
		"q2:p1": {QID: "q2", PredictionID: "p1", ExitCode: 1, HadError: true},
	}
	if err := Rewrite(path, results); err != nil {
		t.Fatal(err)
	}
	seen, err := LoadJournal(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected 2 entries after rewrite, got %d", len(seen))
	}
}
