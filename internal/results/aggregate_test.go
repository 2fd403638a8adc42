package results

import "testing"

func TestAggregateCounts(t *testing.T) {
	per := []PredictionResult{
		{Outcome: Passed}, {Outcome: Passed}, {Outcome: FailedTest}, {Outcome: HadError},
	}
	qr := Aggregate("q1", per, 4)
	if qr.Counts[Passed] != 2 {
		t.Errorf("Counts[Passed] = %d, want 2", qr.Counts[Passed])
	}
	if qr.Counts[FailedTest] != 1 || qr.Counts[HadError] != 1 {
		t.Errorf("unexpected counts: %+v", qr.Counts)
	}
	if qr.Missing != 0 {
		t.Errorf("Missing = %d, want 0", qr.Missing)
	}
}

func TestAggregatePadsShortBatch(t *testing.T) {
	per := []PredictionResult{{Outcome: Passed}}
	qr := Aggregate("q1", per, 5)
	if qr.Missing != 4 {
		t.Errorf("Missing = %d, want 4", qr.Missing)
	}
}
