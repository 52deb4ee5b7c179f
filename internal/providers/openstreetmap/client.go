package openstreetmap

import (
	"fmt"
	"net/url"

	"wthr/internal/transport"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Moscow&format=json&limit=1
const (
	baseURL = "https://nominatim.openstreetmap.org/search"
)

type Client struct {
	http    *transport.Client
	baseURL string
}

func NewClient(t *transport.Client) *Client {
	return &Client{
		http:    t,
		baseURL: baseURL,
	}
}

// Search geocodes a free-text place name. At most one candidate is
// requested; an empty slice means the name could not be resolved.
func (c *Client) Search(query string) ([]SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", "1")
	u.RawQuery = q.Encode()

	var results []SearchResult
	if err := c.http.GetJSON(u.String(), &results); err != nil {
		return nil, fmt.Errorf("failed to fetch search results: %w", err)
	}
	return results, nil
}
