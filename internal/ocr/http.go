package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single OCR request.
const DefaultTimeout = 60 * time.Second

// HTTPClient calls an OCR service over JSON/HTTP.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates an OCR client for the given endpoint.
func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
}

type detectRequest struct {
	Bucket string `json:"bucket"`
	Key    string `json:"key"`
}

type detectResponse struct {
	Blocks []TextBlock `json:"blocks"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DetectText submits a stored document for text detection and returns
// the detected blocks. Service failures are classified by status code
// so callers can decide what is worth retrying.
func (c *HTTPClient) DetectText(ctx context.Context, bucket, key string) ([]TextBlock, error) {
	body, err := json.Marshal(detectRequest{Bucket: bucket, Key: key})
	if err != nil {
		return nil, fmt.Errorf("failed to encode OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/detect-text", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create OCR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &Error{Code: CodeServiceUnavailable, Message: "OCR request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Code: CodeInternalError, Message: "failed to read OCR response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyStatus(resp.StatusCode, respBody)
	}

	var detected detectResponse
	if err := json.Unmarshal(respBody, &detected); err != nil {
		return nil, &Error{Code: CodeInternalError, Message: "malformed OCR response", Cause: err}
	}
	return detected.Blocks, nil
}

// classifyStatus maps HTTP failures onto OCR error classes. The service
// may also name its own class in the response body; that takes priority.
func classifyStatus(status int, body []byte) *Error {
	var svcErr errorResponse
	if err := json.Unmarshal(body, &svcErr); err == nil && svcErr.Code != "" {
		return &Error{Code: svcErr.Code, Message: svcErr.Message}
	}

	switch {
	case status == http.StatusTooManyRequests:
		return &Error{Code: CodeThrottling, Message: fmt.Sprintf("HTTP status %d", status)}
	case status == http.StatusServiceUnavailable:
		return &Error{Code: CodeServiceUnavailable, Message: fmt.Sprintf("HTTP status %d", status)}
	case status >= 500:
		return &Error{Code: CodeInternalError, Message: fmt.Sprintf("HTTP status %d", status)}
	default:
		return &Error{Code: CodeBadDocument, Message: fmt.Sprintf("HTTP status %d", status)}
	}
}
