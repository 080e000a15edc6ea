// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the FloatChat backend API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// =============================================================================
// ERROR TYPES
// =============================================================================

// ClientError represents an error from the FloatChat API client.
type ClientError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *ClientError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *ClientError) Unwrap() error {
	return e.Cause
}

// ErrorType categorizes client errors for handling.
type ErrorType int

const (
	ErrTypeUnknown    ErrorType = iota
	ErrTypeConnection           // transport failure: backend unreachable
	ErrTypeTimeout              // request deadline exceeded
	ErrTypeBackend              // backend reachable but reported failure
	ErrTypeFormat               // malformed or unexpected payload shape
	ErrTypeConfig               // missing required configuration
)

// Sentinel errors for easy checking.
var (
	ErrUnreachable = &ClientError{Type: ErrTypeConnection, Message: "backend is not reachable"}
	ErrTimeout     = &ClientError{Type: ErrTypeTimeout, Message: "request timed out"}
	ErrNoBaseURL   = &ClientError{Type: ErrTypeConfig, Message: "API base URL is not configured"}
	ErrEmptyQuery  = &ClientError{Type: ErrTypeFormat, Message: "query is empty"}
)

// =============================================================================
// CLIENT CONFIGURATION
// =============================================================================

// ClientConfig holds configuration options for the API client.
type ClientConfig struct {
	// BaseURL is the backend API base URL. Required: there is no usable
	// default because the backend runs wherever the deployment put it.
	BaseURL string

	// Timeout for requests (default: 30s)
	Timeout time.Duration

	// SuggestInterval is the minimum spacing between suggestion requests.
	// The suggest endpoint runs an LLM round-trip on the backend, so the
	// client throttles it rather than letting a held-down key hammer it.
	// (default: 2s, burst 3)
	SuggestInterval time.Duration
	SuggestBurst    int
}

// DefaultConfig returns the default client configuration (BaseURL unset).
func DefaultConfig() *ClientConfig {
	return &ClientConfig{
		Timeout:         30 * time.Second,
		SuggestInterval: 2 * time.Second,
		SuggestBurst:    3,
	}
}

// =============================================================================
// CLIENT
// =============================================================================

// Client handles communication with the FloatChat backend API.
//
// The Client is safe for concurrent use.
//
// Example:
//
//	client, err := api.NewClient(&api.ClientConfig{BaseURL: cfg.API.BaseURL})
//	if err != nil {
//	    // configuration error, surface to the user
//	}
//	result, err := client.Query(ctx, "show me all active floats")
type Client struct {
	config       *ClientConfig
	httpClient   *http.Client
	suggestLimit *rate.Limiter
}

// NewClient creates a new API client. A missing base URL is a configuration
// error, not a silent no-op: the caller must show it to the user.
func NewClient(config *ClientConfig) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, ErrNoBaseURL
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.SuggestInterval == 0 {
		config.SuggestInterval = 2 * time.Second
	}
	if config.SuggestBurst == 0 {
		config.SuggestBurst = 3
	}

	return &Client{
		config:       config,
		httpClient:   &http.Client{Timeout: config.Timeout},
		suggestLimit: rate.NewLimiter(rate.Every(config.SuggestInterval), config.SuggestBurst),
	}, nil
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string {
	return strings.TrimRight(c.config.BaseURL, "/")
}

// =============================================================================
// HEALTH CHECK
// =============================================================================

// CheckReachable verifies that the backend answers the catalog endpoint.
func (c *Client) CheckReachable(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+"/api/floats", nil)
	if err != nil {
		return &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ClientError{
			Type:    ErrTypeBackend,
			Message: "unexpected status from backend: " + resp.Status,
		}
	}
	return nil
}

// =============================================================================
// CATALOG OPERATIONS
// =============================================================================

// ListFloats retrieves the full float catalog.
func (c *Client) ListFloats(ctx context.Context) ([]FloatRecord, error) {
	data, err := c.get(ctx, "/api/floats")
	if err != nil {
		return nil, err
	}

	var floats []FloatRecord
	if err := json.Unmarshal(data, &floats); err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to decode float catalog", Cause: err}
	}
	return floats, nil
}

// GetProfiles retrieves the depth profiles for one float.
func (c *Client) GetProfiles(ctx context.Context, floatID string) ([]ProfileRecord, error) {
	if strings.TrimSpace(floatID) == "" {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "float ID is empty"}
	}

	data, err := c.get(ctx, "/api/profiles/"+floatID)
	if err != nil {
		return nil, err
	}

	var profiles []ProfileRecord
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to decode profiles", Cause: err}
	}
	return profiles, nil
}

// =============================================================================
// QUERY OPERATIONS
// =============================================================================

// Query sends a natural-language question to the backend and returns the
// normalized result. Empty or whitespace-only input is rejected before any
// network traffic happens.
func (c *Client) Query(ctx context.Context, query string) (*QueryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to marshal request", Cause: err}
	}

	data, err := c.post(ctx, "/api/query", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result QueryResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to decode query result", Cause: err}
	}
	if result.NaturalQuery == "" {
		result.NaturalQuery = query
	}
	return &result, nil
}

// Suggest asks the backend for alternative phrasings of a query.
// Calls are rate limited client-side; a throttled call waits for a slot or
// returns the context's error.
func (c *Client) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	if err := c.suggestLimit.Wait(ctx); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, &ClientError{Type: ErrTypeConnection, Message: "suggestion request cancelled", Cause: err}
	}

	body, err := json.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to marshal request", Cause: err}
	}

	data, err := c.post(ctx, "/api/query/suggest", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to decode suggestions", Cause: err}
	}
	return payload.Suggestions, nil
}

// =============================================================================
// INGEST OPERATIONS
// =============================================================================

// IngestNetCDF uploads a NetCDF file for parsing and ingestion. The parsing
// itself belongs to the backend; this only ships the bytes.
func (c *Client) IngestNetCDF(ctx context.Context, path string) (*IngestResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "cannot open file " + path, Cause: err}
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to build upload", Cause: err}
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to read file", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to finalize upload", Cause: err}
	}

	data, err := c.post(ctx, "/api/ingest/netcdf", writer.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var result IngestResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to decode ingest result", Cause: err}
	}
	return &result, nil
}

// =============================================================================
// TRANSPORT HELPERS
// =============================================================================

func (c *Client) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL()+path, nil)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL()+path, body)
	if err != nil {
		return nil, &ClientError{Type: ErrTypeConnection, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", contentType)
	return c.do(req)
}

// do executes the request and unwraps the {success, data, message} envelope.
// Every failure mode collapses into a ClientError so callers can render one
// consistent error shape.
func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, ErrUnreachable
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, &ClientError{
				Type:    ErrTypeBackend,
				Message: "request failed: " + resp.Status,
			}
		}
		return nil, &ClientError{Type: ErrTypeFormat, Message: "failed to decode response", Cause: err}
	}

	if !env.Success || resp.StatusCode != http.StatusOK {
		msg := env.Message
		if msg == "" {
			msg = fmt.Sprintf("backend reported failure (%s)", resp.Status)
		}
		return nil, &ClientError{Type: ErrTypeBackend, Message: msg}
	}

	return env.Data, nil
}
