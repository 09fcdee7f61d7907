package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"parts-admin/internal/core/config"
	"parts-admin/internal/core/httpclient"
)

// Client is the shared REST client for the storefront backend. All feature
// adapters go through a single configured instance so the bearer token and
// error-envelope handling are attached in one place.
type Client struct {
	// http executes requests with logging and bearer auth attached.
	http *http.Client
	// baseURL is the backend base URL including the /api prefix.
	baseURL string
}

// New creates a Client for the configured backend. The token source is threaded
// in explicitly so tests can substitute a fixed token.
func New(cfg config.StoreAPIConfig, tokens httpclient.TokenSource) *Client {
	return &Client{
		http:    httpclient.NewAuthenticatedClient(time.Duration(cfg.TimeoutSeconds)*time.Second, tokens),
		baseURL: strings.TrimRight(cfg.URL, "/"),
	}
}

// Error is a failure reported by the backend with an HTTP status and, when the
// backend supplied one, a structured message.
type Error struct {
	// StatusCode is the HTTP status returned by the backend.
	StatusCode int
	// Message is the backend-supplied message, empty when the body had none.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("store api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("store api: status %d", e.StatusCode)
}

// errorEnvelope is the backend's error body shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// Get issues a GET request and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body and decodes the response into out.
// out may be nil when the response body is not needed.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// Delete issues a DELETE request. body may carry a JSON payload, matching
// backends that expect delete parameters in the request body.
func (c *Client) Delete(ctx context.Context, path string, body interface{}) error {
	return c.do(ctx, http.MethodDelete, path, body, nil)
}

// FilePart is a single file to include in a multipart upload.
type FilePart struct {
	// Field is the multipart field name.
	Field string
	// Name is the original file name.
	Name string
	// Content is the file content.
	Content io.Reader
}

// PostMultipart issues a multipart/form-data POST with the given files and
// plain form fields, decoding the JSON response into out.
func (c *Client) PostMultipart(ctx context.Context, path string, files []FilePart, fields map[string]string, out interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return fmt.Errorf("failed to build multipart body: %w", err)
		}
		if _, err := io.Copy(part, f.Content); err != nil {
			return fmt.Errorf("failed to copy file content: %w", err)
		}
	}
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field: %w", err)
		}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.execute(req, out)
}

// do builds a JSON request and executes it.
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.execute(req, out)
}

// execute runs the request, maps non-2xx responses to *Error and decodes
// successful JSON responses into out.
func (c *Client) execute(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &Error{StatusCode: resp.StatusCode}

		var envelope errorEnvelope
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
