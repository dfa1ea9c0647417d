package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches a catalog served over HTTP as JSON.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultUserAgent = "rowbind/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given catalog URL.
func NewClient(rawURL string) (*Client, error) {
	endpoint, err := parseEndpoint(rawURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Endpoint returns the resolved catalog URL.
func (c *Client) Endpoint() string { return c.endpoint.String() }

// Fetch retrieves and validates the catalog.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("catalog %s returned status %d", c.endpoint.Path, resp.StatusCode)
	}
	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if err := Validate(doc.Items); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", c.endpoint.Path, err)
	}
	return doc.Items, nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("catalog url is empty")
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse catalog url %q: missing host", raw)
	}
	u.Fragment = ""
	return u, nil
}
