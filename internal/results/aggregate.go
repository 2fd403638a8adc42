package results

// QuestionResult aggregates every prediction's outcome for one
// question into per-outcome counts. When a question received fewer
// predictions than the configured predictions-per-question, the
// shortfall is recorded in Missing (counted as not passed) rather than
// added to Counts, matching spec.md §4.7's final paragraph.
type QuestionResult struct {
	QID     string
	Counts  map[Outcome]int
	Total   int
	Missing int // predictions the batch never produced, padded as failures
}

// Aggregate folds a question's PredictionResults into a QuestionResult,
// padding with Missing (counted as not-passed) up to expectedCount
// when per is short.
func Aggregate(qid string, per []PredictionResult, expectedCount int) QuestionResult {
	qr := QuestionResult{
		QID:    qid,
		Counts: make(map[Outcome]int, 5),
	}
	for _, pr := range per {
		qr.Counts[pr.Outcome]++
		qr.Total++
	}
	if expectedCount > len(per) {
		qr.Missing = expectedCount - len(per)
	}
	return qr
}
