// Package retry provides a generic retrying invoker used to wrap
// flaky external calls and the hand-off between pipeline stages.
package retry

import (
	"context"
	"fmt"
	"time"
)

// DelayFunc computes the backoff before a retry. The attempt number is
// 1-based: it is 1 before the first retry.
type DelayFunc func(attempt int) time.Duration

// Policy is pure retry configuration. MaxRetries counts retries beyond
// the first attempt, so an action runs at most MaxRetries+1 times.
// A nil Retryable predicate retries every error.
type Policy struct {
	MaxRetries int
	Delay      DelayFunc
	Retryable  func(error) bool
}

// ExponentialBackoff returns base * 2^attempt.
func ExponentialBackoff(base time.Duration) DelayFunc {
	return func(attempt int) time.Duration {
		return base * (1 << attempt)
	}
}

// LinearBackoff returns base * attempt.
func LinearBackoff(base time.Duration) DelayFunc {
	return func(attempt int) time.Duration {
		return base * time.Duration(attempt)
	}
}

// InvocationError is returned once a policy's retries are exhausted.
// It carries the correlation id of the run for cross-stage attribution
// and wraps the last underlying cause.
type InvocationError struct {
	CorrelationID string
	Attempts      int
	Cause         error
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("invocation %s failed after %d attempts: %v", e.CorrelationID, e.Attempts, e.Cause)
}

func (e *InvocationError) Unwrap() error {
	return e.Cause
}

// Do executes action under the given policy. Errors rejected by the
// Retryable predicate propagate unchanged; exhausting retries yields an
// InvocationError. Backoff sleeps are cancellable: cancellation stops
// the loop before the next sleep completes and propagates ctx.Err().
func Do[T any](ctx context.Context, policy Policy, correlationID string, action func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error

	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := action(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if policy.Retryable != nil && !policy.Retryable(err) {
			return zero, err
		}
		if attempt == policy.MaxRetries {
			break
		}

		if err := sleep(ctx, policy.Delay(attempt+1)); err != nil {
			return zero, err
		}
	}

	return zero, &InvocationError{
		CorrelationID: correlationID,
		Attempts:      policy.MaxRetries + 1,
		Cause:         lastErr,
	}
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
