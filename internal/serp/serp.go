// Package serp integrates external search engine providers.
package serp

import (
	"context"
	"errors"

	"pagescope/internal/domain"
)

// ErrNotConfigured is returned when a provider is missing its
// credentials. The HTTP layer maps it to 503 instead of 502.
var ErrNotConfigured = errors.New("search provider not configured")

// Provider abstracts a search engine that returns ranked results for a
// query. Implementations may use official APIs or scraping. The limit
// parameter caps the number of results returned.
type Provider interface {
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}
