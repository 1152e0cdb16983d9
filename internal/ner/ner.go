// Package ner defines the named-entity-recognition capability used by
// the primary entity extraction path, plus a JSON-over-HTTP adapter.
package ner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// EntityType tags a detected entity.
type EntityType string

// Entity types of interest to the pipeline. The service may return
// others; they are ignored.
const (
	EntityTypePerson       EntityType = "PERSON"
	EntityTypeOrganization EntityType = "ORGANIZATION"
	EntityTypeLocation     EntityType = "LOCATION"
)

// Entity is one detected entity with a confidence score in [0,1].
type Entity struct {
	Type  EntityType `json:"type"`
	Text  string     `json:"text"`
	Score float64    `json:"score"`
}

// Client is the NER call consumed by entity extraction.
type Client interface {
	DetectEntities(ctx context.Context, text string) ([]Entity, error)
}

// DefaultTimeout bounds a single NER request.
const DefaultTimeout = 30 * time.Second

// HTTPClient calls a NER service over JSON/HTTP.
type HTTPClient struct {
	endpoint string
	client   *http.Client
}

// NewHTTPClient creates a NER client for the given endpoint.
func NewHTTPClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: DefaultTimeout},
	}
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Entities []Entity `json:"entities"`
}

// DetectEntities submits text for entity detection.
func (c *HTTPClient) DetectEntities(ctx context.Context, text string) ([]Entity, error) {
	body, err := json.Marshal(detectRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to encode NER request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/detect-entities", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create NER request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NER request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read NER response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("NER service returned HTTP %d", resp.StatusCode)
	}

	var detected detectResponse
	if err := json.Unmarshal(respBody, &detected); err != nil {
		return nil, fmt.Errorf("malformed NER response: %w", err)
	}
	return detected.Entities, nil
}
