// Package paramstore implements the keystash parameter store: an HTTP client
// for the store API and an in-memory reference server.
package paramstore

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

	"github.com/keystash/keystash/pkg/proto"
)

// HTTPClient talks to a parameter store server over its JSON API. It
// implements the repository's Client and Deleter interfaces. Requests carry a
// bearer token and are never retried here.
type HTTPClient struct {
	baseURL   string
	authToken string
	userAgent string
	client    *http.Client
}

// NewClient creates a parameter store client. version is stamped into the
// User-Agent of every request; pass the build version explicitly rather than
// reading process-wide state.
func NewClient(baseURL, authToken, version string) *HTTPClient {
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		userAgent: "keystash/" + version,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ListPage fetches one page of entries under prefix. An empty
// continuationToken requests the first page.
func (c *HTTPClient) ListPage(ctx context.Context, prefix string, decrypt bool, continuationToken string) (*proto.ListPageResponse, error) {
	q := url.Values{}
	q.Set("prefix", prefix)
	if decrypt {
		q.Set("decrypt", "true")
	}
	if continuationToken != "" {
		q.Set("continuation-token", continuationToken)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/params?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("list page: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.parseError(resp)
	}

	var result proto.ListPageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return &result, nil
}

// Write creates or overwrites a single parameter.
func (c *HTTPClient) Write(ctx context.Context, req *proto.WriteRequest) error {
	body, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("marshal write request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPut, "/api/v1/params", body)
	if err != nil {
		return fmt.Errorf("write parameter: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusNoContent {
		return c.parseError(resp)
	}
	return nil
}

// Delete removes a single parameter by its full path.
func (c *HTTPClient) Delete(ctx context.Context, name string) error {
	q := url.Values{}
	q.Set("name", name)

	resp, err := c.doRequest(ctx, http.MethodDelete, "/api/v1/params?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("delete parameter: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return c.parseError(resp)
	}
}

func (c *HTTPClient) doRequest(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.client.Do(req)
}

func (c *HTTPClient) parseError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp proto.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return fmt.Errorf("%s: %s", errResp.Error, errResp.Message)
	}

	return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body))
}
