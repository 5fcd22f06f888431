package dto

import "github.com/harbourline/freight_console_app/internal/core/domain"

// BulkFailureResponse is one failed target of a bulk run.
type BulkFailureResponse struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

// BulkBatchResponse summarizes a bulk mutation for the console. A batch
// with successes and failures is reported as-is; the caller decides how
// to present the partial outcome.
type BulkBatchResponse struct {
	SuccessCount int                   `json:"successCount"`
	FailureCount int                   `json:"failureCount"`
	Failures     []BulkFailureResponse `json:"failures,omitempty"`
}

// ToBulkBatchResponse converts a domain.BulkBatch to its response DTO.
func ToBulkBatchResponse(batch domain.BulkBatch) BulkBatchResponse {
	res := BulkBatchResponse{
		SuccessCount: batch.SuccessCount,
		FailureCount: batch.FailureCount,
	}
	for _, f := range batch.Failures {
		res.Failures = append(res.Failures, BulkFailureResponse{ID: f.ID, Error: f.Error})
	}
	return res
}
