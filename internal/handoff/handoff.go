// Package handoff delivers normalized resume text to the analysis
// stage. Delivery is fire-and-forget with at-least-once intent: the
// sender waits only for acceptance of the request, never for the
// receiving stage's processing result.
package handoff

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-insights/internal/logging"
	"github.com/jonathan/resume-insights/internal/retry"
	"github.com/jonathan/resume-insights/internal/types"
)

// Hand-off retry policy: linear backoff, every failure retried,
// success defined by the receiver accepting the request.
const (
	handoffMaxRetries  = 2
	handoffBackoffBase = time.Second
)

// Submitter is the downstream acceptance capability. accepted=false
// with a nil error means the receiver rejected the request.
type Submitter interface {
	Submit(ctx context.Context, payload types.InvocationPayload) (accepted bool, err error)
}

// Dispatcher wraps a Submitter in the hand-off retry policy.
type Dispatcher struct {
	submitter   Submitter
	logger      *zap.Logger
	backoffBase time.Duration
}

// NewDispatcher builds a Dispatcher over the given submitter.
func NewDispatcher(submitter Submitter, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		submitter:   submitter,
		logger:      logging.OrNop(logger),
		backoffBase: handoffBackoffBase,
	}
}

// Dispatch submits the payload until it is accepted or retries run
// out. Unlike the OCR policy, every error here is retryable.
func (d *Dispatcher) Dispatch(ctx context.Context, payload types.InvocationPayload) error {
	policy := retry.Policy{
		MaxRetries: handoffMaxRetries,
		Delay:      retry.LinearBackoff(d.backoffBase),
	}

	_, err := retry.Do(ctx, policy, payload.CorrelationID, func(ctx context.Context) (struct{}, error) {
		accepted, err := d.submitter.Submit(ctx, payload)
		if err != nil {
			return struct{}{}, err
		}
		if !accepted {
			return struct{}{}, fmt.Errorf("hand-off not accepted by receiver")
		}
		return struct{}{}, nil
	})
	if err != nil {
		d.logger.Error("hand-off failed", append(
			logging.Run(payload.CorrelationID, payload.ResumeID), zap.Error(err))...)
		return err
	}

	d.logger.Info("hand-off accepted", logging.Run(payload.CorrelationID, payload.ResumeID)...)
	return nil
}

// HTTPSubmitter posts hand-off payloads to the analysis stage over
// JSON/HTTP. Any 2xx status counts as acceptance.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
}

// NewHTTPSubmitter creates a submitter for the given endpoint.
func NewHTTPSubmitter(endpoint string) *HTTPSubmitter {
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Submit posts the payload and reports whether it was accepted.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload types.InvocationPayload) (bool, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return false, fmt.Errorf("failed to encode hand-off payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create hand-off request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("hand-off request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300, nil
}
