package bulk_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/bulk"
)

func ident(id string) string { return id }

// recorder tracks which targets received a mutation call.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) record(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, id)
}

func (r *recorder) called(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.calls {
		if c == id {
			return true
		}
	}
	return false
}

func TestRunContinueAttemptsEveryTarget(t *testing.T) {
	targets := []string{"t1", "t2", "t3", "t4", "t5"}
	rec := &recorder{}

	batch, err := bulk.Run(context.Background(), targets, ident, func(ctx context.Context, id string) error {
		rec.record(id)
		if id == "t3" {
			return assert.AnError
		}
		return nil
	}, bulk.Continue)

	require.NoError(t, err)
	assert.Equal(t, 4, batch.SuccessCount)
	assert.Equal(t, 1, batch.FailureCount)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, "t3", batch.Failures[0].ID)

	// All-settled: every sibling of the failed target was still attempted.
	for _, id := range targets {
		assert.True(t, rec.called(id), "target %s was not attempted", id)
	}
}

func TestRunAbortStopsAtFirstFailure(t *testing.T) {
	targets := []string{"t1", "t2", "t3", "t4", "t5"}
	rec := &recorder{}

	batch, err := bulk.Run(context.Background(), targets, ident, func(ctx context.Context, id string) error {
		rec.record(id)
		if id == "t3" {
			return assert.AnError
		}
		return nil
	}, bulk.Abort)

	require.NoError(t, err)
	assert.Equal(t, 2, batch.SuccessCount)
	assert.Equal(t, 1, batch.FailureCount)

	// Later targets were never tried.
	assert.False(t, rec.called("t4"))
	assert.False(t, rec.called("t5"))
}

func TestRunAbortAllSucceed(t *testing.T) {
	batch, err := bulk.Run(context.Background(), []string{"a", "b"}, ident, func(ctx context.Context, id string) error {
		return nil
	}, bulk.Abort)

	require.NoError(t, err)
	assert.Equal(t, 2, batch.SuccessCount)
	assert.Zero(t, batch.FailureCount)
	assert.Empty(t, batch.Failures)
}

func TestRunEmptyBatchRejected(t *testing.T) {
	_, err := bulk.Run(context.Background(), nil, ident, func(ctx context.Context, id string) error {
		return nil
	}, bulk.Continue)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRunFailureMessagesCarryThrough(t *testing.T) {
	batch, err := bulk.Run(context.Background(), []string{"only"}, ident, func(ctx context.Context, id string) error {
		return apperrors.NewUpstreamError("record is locked")
	}, bulk.Continue)

	require.NoError(t, err)
	require.Len(t, batch.Failures, 1)
	assert.Equal(t, "record is locked", batch.Failures[0].Error)
}
