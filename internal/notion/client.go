// Package notion is an HTTP client for the Notion API, which backs prompt
// storage. One database per prompt category; records are pages whose fields
// are rich_text properties.
package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the hosted Notion API endpoint.
const DefaultBaseURL = "https://api.notion.com"

// APIVersion is sent as the Notion-Version header on every request.
const APIVersion = "2022-06-28"

// ErrUnhealthy is returned when the Notion reachability check fails.
var ErrUnhealthy = errors.New("notion health check failed")

// Client is a Notion REST client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (tests).
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient overrides the HTTP client (tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client authenticated with the given integration key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// apiError is the error payload Notion returns on non-2xx responses.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends a request and decodes the JSON response into out (if non-nil).
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", APIVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("notion error (status %d, %s): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("notion error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w (body: %s)", err, string(respBody))
		}
	}
	return nil
}

// HealthCheck verifies the API is reachable and the credential is valid.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.do(ctx, http.MethodGet, "/v1/users/me", nil, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrUnhealthy, err)
	}
	return nil
}

// queryRequest is the body of a database query.
type queryRequest struct {
	Filter *Filter `json:"filter,omitempty"`
}

// queryResponse is the result page of a database query.
type queryResponse struct {
	Results []Page `json:"results"`
}

// QueryDatabase returns the pages of a database matching the filter.
// Notion only returns live (non-archived) pages from database queries.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter *Filter) ([]Page, error) {
	var resp queryResponse
	path := fmt.Sprintf("/v1/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, queryRequest{Filter: filter}, &resp); err != nil {
		return nil, fmt.Errorf("query database %s: %w", databaseID, err)
	}
	return resp.Results, nil
}

// createPageRequest is the body of a page creation.
type createPageRequest struct {
	Parent     Parent              `json:"parent"`
	Properties map[string]Property `json:"properties"`
}

// Parent binds a page to its database.
type Parent struct {
	DatabaseID string `json:"database_id"`
}

// CreatePage inserts a page into a database.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]Property) (Page, error) {
	var page Page
	req := createPageRequest{
		Parent:     Parent{DatabaseID: databaseID},
		Properties: properties,
	}
	if err := c.do(ctx, http.MethodPost, "/v1/pages", req, &page); err != nil {
		return Page{}, fmt.Errorf("create page: %w", err)
	}
	return page, nil
}

// UpdatePage replaces the given properties of a page in place. Properties
// not named in the map keep their current values.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]Property) error {
	body := map[string]any{"properties": properties}
	if err := c.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, body, nil); err != nil {
		return fmt.Errorf("update page %s: %w", pageID, err)
	}
	return nil
}

// ArchivePage marks a page archived. Archiving an already-archived page is
// a no-op on the Notion side, so the call is idempotent.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	body := map[string]any{"archived": true}
	if err := c.do(ctx, http.MethodPatch, "/v1/pages/"+pageID, body, nil); err != nil {
		return fmt.Errorf("archive page %s: %w", pageID, err)
	}
	return nil
}
