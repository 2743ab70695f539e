// Package rest is the net/http implementation of the RecordGateway port:
// a thin typed client for the backend REST API. One request per call, no
// retries; non-2xx responses are translated into *secondary.RemoteError
// carrying the backend's message so no raw transport detail reaches the
// CLI layer.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to one backend environment.
type Client struct {
	baseURI string
	http    *http.Client
}

// NewClient creates a gateway against the given base URI.
func NewClient(baseURI string) *Client {
	return &Client{
		baseURI: strings.TrimRight(baseURI, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// BaseURI returns the configured backend environment.
func (c *Client) BaseURI() string {
	return c.baseURI
}

// doJSON issues one request with an optional JSON body and decodes the
// response into out when out is non-nil.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURI+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return remoteError(resp)
	}

	if out == nil {
		return nil
	}
	// An empty 2xx body leaves out untouched.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func pathEscape(segment string) string {
	return url.PathEscape(segment)
}
