package domain

// BulkFailure records one target that failed inside a bulk batch.
type BulkFailure struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkBatch summarizes a bulk mutation run. A batch with both successes
// and failures is a partial result to inspect, not an error.
type BulkBatch struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Failures     []BulkFailure `json:"failures,omitempty"`
}
