// Package gateway holds the HTTP clients for the two remote services:
// the search gateway and the page-structure gateway.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"pagescope/internal/domain"
)

// ErrConnect marks transport-level failures (service unreachable, timeout)
// as opposed to the gateway answering with a bad status or body.
var ErrConnect = errors.New("search gateway unreachable")

// Searcher is the client-side view of the search gateway.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domain.SearchResult, error)
}

// SearchClient calls the search gateway over HTTP.
type SearchClient struct {
	baseURL string
	client  *http.Client
}

var _ Searcher = (*SearchClient)(nil)

// NewSearchClient creates a client for the gateway at baseURL.
func NewSearchClient(baseURL string) *SearchClient {
	return &SearchClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Search issues a single GET {base}/search?q={query} and decodes the
// result array. Gateway order is preserved.
func (c *SearchClient) Search(ctx context.Context, query string) ([]domain.SearchResult, error) {
	reqURL := fmt.Sprintf("%s/search?q=%s", c.baseURL, url.QueryEscape(query))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnect, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search gateway returned HTTP %d", resp.StatusCode)
	}

	var results []domain.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return results, nil
}
