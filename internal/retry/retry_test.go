package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFlaky = errors.New("flaky")

func noDelay(int) time.Duration { return 0 }

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	calls := 0
	result, err := Do(context.Background(), Policy{MaxRetries: 2, Delay: noDelay}, "corr-1",
		func(context.Context) (string, error) {
			calls++
			return "ok", nil
		})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)
}

func TestDo_TransientFailuresThenSuccess(t *testing.T) {
	calls := 0
	var delays []int

	policy := Policy{
		MaxRetries: 2,
		Delay: func(attempt int) time.Duration {
			delays = append(delays, attempt)
			return 0
		},
	}

	result, err := Do(context.Background(), policy, "corr-2",
		func(context.Context) (int, error) {
			calls++
			if calls <= 2 {
				return 0, errFlaky
			}
			return 42, nil
		})

	require.NoError(t, err)
	assert.Equal(t, 42, result)
	// Two failures then success: the action runs exactly three times and
	// the delay function runs before each retry, never after the success.
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, delays)
}

func TestDo_ExhaustsRetries(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), Policy{MaxRetries: 2, Delay: noDelay}, "corr-3",
		func(context.Context) (string, error) {
			calls++
			return "", errFlaky
		})

	require.Error(t, err)
	assert.Equal(t, 3, calls)

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, "corr-3", invErr.CorrelationID)
	assert.Equal(t, 3, invErr.Attempts)
	assert.ErrorIs(t, err, errFlaky)
}

func TestDo_NonRetryableFailsImmediately(t *testing.T) {
	fatal := errors.New("malformed document")
	calls := 0

	policy := Policy{
		MaxRetries: 5,
		Delay:      noDelay,
		Retryable:  func(err error) bool { return !errors.Is(err, fatal) },
	}

	_, err := Do(context.Background(), policy, "corr-4",
		func(context.Context) (string, error) {
			calls++
			return "", fatal
		})

	// The fatal error propagates unchanged, not wrapped as exhaustion.
	assert.ErrorIs(t, err, fatal)
	var invErr *InvocationError
	assert.False(t, errors.As(err, &invErr))
	assert.Equal(t, 1, calls)
}

func TestDo_CancelledDuringBackoff(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	policy := Policy{
		MaxRetries: 3,
		Delay:      func(int) time.Duration { return time.Minute },
	}

	calls := 0
	done := make(chan error, 1)
	go func() {
		_, err := Do(ctx, policy, "corr-5", func(context.Context) (string, error) {
			calls++
			return "", errFlaky
		})
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	case <-time.After(time.Second):
		t.Fatal("retry loop did not stop on cancellation")
	}
}

func TestDo_NilRetryableRetriesEverything(t *testing.T) {
	calls := 0
	_, err := Do(context.Background(), Policy{MaxRetries: 1, Delay: noDelay}, "corr-6",
		func(context.Context) (string, error) {
			calls++
			return "", errors.New("anything at all")
		})

	var invErr *InvocationError
	require.ErrorAs(t, err, &invErr)
	assert.Equal(t, 2, calls)
}

func TestBackoffFunctions(t *testing.T) {
	exp := ExponentialBackoff(time.Second)
	assert.Equal(t, 2*time.Second, exp(1))
	assert.Equal(t, 4*time.Second, exp(2))
	assert.Equal(t, 8*time.Second, exp(3))

	lin := LinearBackoff(time.Second)
	assert.Equal(t, time.Second, lin(1))
	assert.Equal(t, 2*time.Second, lin(2))
	assert.Equal(t, 3*time.Second, lin(3))
}
