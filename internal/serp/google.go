package serp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"pagescope/internal/domain"
)

// DefaultEndpoint is the Google Custom Search JSON API.
const DefaultEndpoint = "https://www.googleapis.com/customsearch/v1"

// GoogleCSE queries the Google Custom Search API.
type GoogleCSE struct {
	apiKey   string
	engineID string
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

var _ Provider = (*GoogleCSE)(nil)

// Option configures a GoogleCSE.
type Option func(*GoogleCSE)

// WithEndpoint overrides the API endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(g *GoogleCSE) {
		g.endpoint = endpoint
	}
}

// NewGoogleCSE creates a Google Custom Search provider.
func NewGoogleCSE(apiKey, engineID string, logger *zap.Logger, opts ...Option) *GoogleCSE {
	g := &GoogleCSE{
		apiKey:   apiKey,
		engineID: engineID,
		endpoint: DefaultEndpoint,
		client:   &http.Client{},
		logger:   logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// googleResponse is the subset of the API response we consume.
type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Search queries the API and maps items to search results. A response
// without items is a valid empty result set.
func (g *GoogleCSE) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if g.apiKey == "" || g.engineID == "" {
		return nil, ErrNotConfigured
	}

	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("cx", g.engineID)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call search API: %w", err)
	}
	defer resp.Body.Close()

	var decoded googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode search API response: %w", err)
	}

	if decoded.Error != nil {
		g.logger.Warn("search API error",
			zap.Int("code", decoded.Error.Code),
			zap.String("message", decoded.Error.Message),
		)
		return nil, fmt.Errorf("search API error: %s", decoded.Error.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search API returned HTTP %d", resp.StatusCode)
	}

	results := make([]domain.SearchResult, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		results = append(results, domain.SearchResult{
			URL:     item.Link,
			Title:   item.Title,
			Snippet: item.Snippet,
		})
	}

	return results, nil
}
