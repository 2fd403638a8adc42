package exec

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// journalRecord is the on-disk JSONL shape, generalizing
// internal/eval_harness/metrics.go's one-file-per-result JSON writer
// to one-line-per-result in a single append-only file, per spec.md
// §6's external-interface requirement.
type journalRecord struct {
	QID          string          `json:"qid"`
	PredictionID string          `json:"prediction_id"`
	Result       ExecutionResult `json:"result"`
}

// Journal is an append-only JSONL result log, resumable by skipping
// malformed trailing lines and deduping by (qid, id), matching
// spec.md §4.6's resumability requirement.
type Journal struct {
	path string
	file *os.File
}

// OpenJournal opens path for appending, creating it if absent.
func OpenJournal(path string) (*Journal, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("exec: opening journal %s: %w", path, err)
	}
	return &Journal{path: path, file: f}, nil
}

// Close closes the underlying file.
func (j *Journal) Close() error { return j.file.Close() }

// Append writes one ExecutionResult as a single JSON line.
func (j *Journal) Append(qid, predictionID string, result ExecutionResult) error {
	rec := journalRecord{QID: qid, PredictionID: predictionID, Result: result}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("exec: marshaling journal record: %w", err)
	}
	data = append(data, '\n')
	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("exec: appending to journal %s: %w", j.path, err)
	}
	return nil
}

// LoadJournal reads every well-formed line of an existing journal
// file, silently discarding any trailing line that fails to parse (a
// crash may leave a partial final write) and keeping only the last
// record for any repeated (qid, id) key. It returns the clean set of
// prior results keyed by "qid:id", so a resumed batch can skip any key
// already present.
func LoadJournal(path string) (map[string]ExecutionResult, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return map[string]ExecutionResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("exec: opening journal %s: %w", path, err)
	}
	defer f.Close()

	seen := make(map[string]ExecutionResult)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		var rec journalRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			// Malformed line: either mid-batch corruption or a partial
			// trailing write from a crash. Either way it is dropped, not
			// fatal, matching spec.md §4.6's crash-safety rule.
			continue
		}
		key := rec.QID + ":" + rec.PredictionID
		seen[key] = rec.Result
	}
	return seen, nil
}

// Rewrite replaces the journal file's contents with exactly the given
// results, one per line, restoring a clean file after LoadJournal has
// discarded any malformed trailing data.
func Rewrite(path string, results map[string]ExecutionResult) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("exec: creating journal rewrite %s: %w", tmp, err)
	}

	w := bufio.NewWriter(f)
	for key, result := range results {
		qid, predictionID := splitKey(key)
		rec := journalRecord{QID: qid, PredictionID: predictionID, Result: result}
		data, err := json.Marshal(rec)
		if err != nil {
			f.Close()
			return fmt.Errorf("exec: marshaling journal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			f.Close()
			return fmt.Errorf("exec: writing journal rewrite: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("exec: flushing journal rewrite: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("exec: closing journal rewrite: %w", err)
	}
	return os.Rename(tmp, path)
}

func splitKey(key string) (qid, predictionID string) {
	for i := 0; i < len(key); i++ {
		if key[i] == ':' {
			return key[:i], key[i+1:]
		}
	}
	return key, ""
}
