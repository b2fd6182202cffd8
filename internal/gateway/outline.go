package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"pagescope/internal/domain"
)

// Fetcher is the client-side view of the structure gateway.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) *domain.Outline
}

// OutlineFetcher retrieves a page's heading outline from the structure
// gateway. Every failure mode is normalized to an absent result: Fetch
// never returns an error, so one item's broken fetch cannot leak past it.
type OutlineFetcher struct {
	baseURL string
	client  *http.Client
}

var _ Fetcher = (*OutlineFetcher)(nil)

// NewOutlineFetcher creates a fetcher for the gateway at baseURL.
func NewOutlineFetcher(baseURL string) *OutlineFetcher {
	return &OutlineFetcher{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// Fetch issues a single GET {base}/scrape?url={pageURL}. It returns nil
// when the call fails in any way; the underlying error only goes to the
// log. A non-nil result with no headings means the page has none.
// No retry, no caching: two fetches of the same URL are two requests.
func (f *OutlineFetcher) Fetch(ctx context.Context, pageURL string) *domain.Outline {
	reqURL := fmt.Sprintf("%s/scrape?url=%s", f.baseURL, url.QueryEscape(pageURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		log.Printf("Outline fetch for %s: bad request: %v", pageURL, err)
		return nil
	}

	resp, err := f.client.Do(req)
	if err != nil {
		log.Printf("Outline fetch for %s failed: %v", pageURL, err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Outline fetch for %s: structure gateway returned HTTP %d", pageURL, resp.StatusCode)
		return nil
	}

	var outline domain.Outline
	if err := json.NewDecoder(resp.Body).Decode(&outline); err != nil {
		log.Printf("Outline fetch for %s: decode failed: %v", pageURL, err)
		return nil
	}

	return &outline
}
