// Package bulk fans a single-record mutation out over a set of targets
// and reduces the per-target outcomes into one summary. It never
// refetches anything itself; callers resynchronize their list when the
// batch reports successes.
package bulk

import (
	"context"
	"fmt"
	"sync"

	"github.com/harbourline/freight_console_app/internal/apperrors"
	"github.com/harbourline/freight_console_app/internal/core/domain"
)

// Policy selects what happens to the remaining targets when one fails.
type Policy string

const (
	// Continue attempts every target concurrently regardless of sibling
	// failures (all-settled).
	Continue Policy = "continue"
	// Abort runs targets sequentially and stops at the first failure,
	// leaving later targets untried.
	Abort Policy = "abort"
)

// Run applies mutate to every target under the given policy. ident names
// a target in the failure report. The returned error is non-nil only for
// an empty batch; individual mutation failures are data, reported in the
// batch summary.
func Run[T any](ctx context.Context, targets []T, ident func(T) string, mutate func(context.Context, T) error, onError Policy) (domain.BulkBatch, error) {
	if len(targets) == 0 {
		return domain.BulkBatch{}, fmt.Errorf("%w: bulk batch must not be empty", apperrors.ErrValidation)
	}

	if onError == Abort {
		return runSequential(ctx, targets, ident, mutate), nil
	}
	return runAllSettled(ctx, targets, ident, mutate), nil
}

func runSequential[T any](ctx context.Context, targets []T, ident func(T) string, mutate func(context.Context, T) error) domain.BulkBatch {
	var batch domain.BulkBatch
	for _, t := range targets {
		if err := mutate(ctx, t); err != nil {
			batch.FailureCount++
			batch.Failures = append(batch.Failures, domain.BulkFailure{ID: ident(t), Error: err.Error()})
			break
		}
		batch.SuccessCount++
	}
	return batch
}

func runAllSettled[T any](ctx context.Context, targets []T, ident func(T) string, mutate func(context.Context, T) error) domain.BulkBatch {
	errs := make([]error, len(targets))
	var wg sync.WaitGroup
	for i, t := range targets {
		wg.Add(1)
		go func(i int, t T) {
			defer wg.Done()
			errs[i] = mutate(ctx, t)
		}(i, t)
	}
	wg.Wait()

	var batch domain.BulkBatch
	for i, err := range errs {
		if err != nil {
			batch.FailureCount++
			batch.Failures = append(batch.Failures, domain.BulkFailure{ID: ident(targets[i]), Error: err.Error()})
			continue
		}
		batch.SuccessCount++
	}
	return batch
}
