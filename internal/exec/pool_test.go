package exec

import (
	"sync"
	"testing"
	"time"
)

func TestPoolRunCompletesAllJobs(t *testing.T) {
	dir := t.TempDir()
	jobs := make([]Job, 0, 5)
	for i := 0; i < 5; i++ {
		jobs = append(jobs, Job{
			QID:          "q",
			PredictionID: string(rune('a' + i)),
			Commands:     []Command{{Argv: []string{"sh", "-c", "echo ok"}, Timeout: 2 * time.Second}},
			WorkDir:      dir,
		})
	}

	var mu sync.Mutex
	var lastCompleted, lastTotal int
	pool := NewPool(2)
	pool.OnProgress = func(completed, total int) {
		mu.Lock()
		lastCompleted, lastTotal = completed, total
		mu.Unlock()
	}

	outcomes := pool.Run(jobs)
	if len(outcomes) != len(jobs) {
		t.Fatalf("expected %d outcomes, got %d", len(jobs), len(outcomes))
	}
	for _, o := range outcomes {
		if o.Err != nil {
			t.Errorf("unexpected job error: %v", o.Err)
		}
		if o.Result.HadError {
			t.Errorf("unexpected HadError for job %s:%s", o.QID, o.PredictionID)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if lastTotal != len(jobs) {
		t.Errorf("progress total = %d, want %d", lastTotal, len(jobs))
	}
	if lastCompleted != len(jobs) {
		t.Errorf("final progress completed = %d, want %d", lastCompleted, len(jobs))
	}
}

func TestPoolRunEmpty(t *testing.T) {
	pool := NewPool(3)
	outcomes := pool.Run(nil)
	if len(outcomes) != 0 {
		t.Errorf("expected no outcomes for empty job list, got %d", len(outcomes))
	}
}
