// Package recordstore is the HTTP client for the external
// property-document store that serves as the system of record. Calls
// are single-attempt round trips: failures surface on the request that
// made them, with no retry and no circuit state.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"whisperboard/internal/constants"
	"whisperboard/pkg/metrics"
)

type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = constants.DefaultHTTPTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type queryRequest struct {
	Sorts       []SortSpec `json:"sorts,omitempty"`
	StartCursor string     `json:"start_cursor,omitempty"`
}

type queryResponse struct {
	Results    []json.RawMessage `json:"results"`
	HasMore    bool              `json:"has_more"`
	NextCursor string            `json:"next_cursor"`
}

type createRequest struct {
	Parent     parentRef  `json:"parent"`
	Properties Properties `json:"properties"`
}

type parentRef struct {
	DatabaseID string `json:"database_id"`
}

// Query fetches every record of the collection, draining cursor
// pagination so callers always see the complete result set in the
// store's requested sort order.
func (c *Client) Query(ctx context.Context, collectionID string, sorts []SortSpec) ([]DecodedRecord, error) {
	var records []DecodedRecord
	cursor := ""

	for {
		body := queryRequest{Sorts: sorts, StartCursor: cursor}

		var page queryResponse
		err := c.do(ctx, "query", http.MethodPost,
			fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, collectionID), body, &page)
		if err != nil {
			return nil, err
		}

		for _, raw := range page.Results {
			records = append(records, DecodeRecord(raw))
		}

		if !page.HasMore || page.NextCursor == "" {
			break
		}
		cursor = page.NextCursor
	}

	return records, nil
}

// CreateRecord writes one record into the collection and returns its
// opaque identifier together with a direct link when the store
// provides one.
func (c *Client) CreateRecord(ctx context.Context, collectionID string, properties Properties) (*CreateResult, error) {
	body := createRequest{
		Parent:     parentRef{DatabaseID: collectionID},
		Properties: properties,
	}

	var result CreateResult
	err := c.do(ctx, "create", http.MethodPost, c.baseURL+"/v1/pages", body, &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// Ping retrieves the collection metadata; used by the health endpoint.
func (c *Client) Ping(ctx context.Context, collectionID string) error {
	return c.do(ctx, "ping", http.MethodGet,
		fmt.Sprintf("%s/v1/databases/%s", c.baseURL, collectionID), nil, nil)
}

func (c *Client) do(ctx context.Context, operation, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", constants.StoreVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		metrics.ObserveStoreRequest(operation, "error", time.Since(start))
		return fmt.Errorf("store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constants.HTTPStatusOKMin || resp.StatusCode >= constants.HTTPStatusOKMax {
		metrics.ObserveStoreRequest(operation, "error", time.Since(start))
		return c.decodeError(resp)
	}
	metrics.ObserveStoreRequest(operation, "success", time.Since(start))

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	storeErr := &StoreError{Status: resp.StatusCode}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil {
		// Best effort: keep the status even when the body is not the
		// store's usual error shape.
		_ = json.Unmarshal(payload, storeErr)
	}
	if storeErr.Message == "" {
		storeErr.Message = http.StatusText(resp.StatusCode)
	}

	return storeErr
}
