// Package docparse is the adapter for the external résumé parsing service.
// It uploads a document, validates the structured response against an
// embedded schema, and reshapes it into a draft for the field mapper. Every
// failure is reported as a recoverable *UnavailableError so the caller can
// degrade to local heuristic extraction.
package docparse

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/hyadav1201/autofolio/internal/schemas"
	"github.com/hyadav1201/autofolio/internal/types"
)

// DefaultTimeout bounds a single parse request end to end.
const DefaultTimeout = 30 * time.Second

// Client parses a résumé document into a loosely-typed draft.
type Client interface {
	Parse(ctx context.Context, filename string, document []byte) (*types.RawDraft, error)
}

// HTTPClient talks to an Affinda-compatible document parsing API.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Options configures the HTTP parsing client.
type Options struct {
	// Timeout bounds each parse request. Zero means DefaultTimeout.
	Timeout time.Duration
}

// NewHTTPClient creates a parsing client for the given service endpoint.
// An empty baseURL is allowed; Parse then fails with *UnavailableError,
// which keeps the degradation path uniform when no parser is configured.
func NewHTTPClient(baseURL, apiKey string, opts *Options) *HTTPClient {
	timeout := DefaultTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}
	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Parse uploads the document and returns the parsed draft. Any transport
// failure, non-2xx status, schema violation, or empty payload is wrapped in
// *UnavailableError.
func (c *HTTPClient) Parse(ctx context.Context, filename string, document []byte) (*types.RawDraft, error) {
	if c.baseURL == "" {
		return nil, &UnavailableError{Message: "no parser endpoint configured"}
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, &UnavailableError{Message: "failed to build upload form", Cause: err}
	}
	if _, err := part.Write(document); err != nil {
		return nil, &UnavailableError{Message: "failed to build upload form", Cause: err}
	}
	if err := writer.Close(); err != nil {
		return nil, &UnavailableError{Message: "failed to build upload form", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, body)
	if err != nil {
		return nil, &UnavailableError{Message: "failed to create request", Cause: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UnavailableError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Message: "failed to read response", Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UnavailableError{Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	if err := schemas.ValidateResumePayload(respBody); err != nil {
		log.Printf("[docparse] payload rejected: %v", err)
		return nil, &UnavailableError{Message: "response failed schema validation", Cause: err}
	}

	draft, err := decodePayload(respBody)
	if err != nil {
		return nil, &UnavailableError{Message: "failed to decode response", Cause: err}
	}
	if draft.IsEmpty() {
		return nil, &UnavailableError{Message: "parser returned an empty result"}
	}
	return draft, nil
}
