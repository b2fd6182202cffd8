// Package extract fetches web pages and pulls out their heading outline.
package extract

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"pagescope/internal/domain"
)

const fetchTimeout = 10 * time.Second

// Some sites answer bot-looking user agents with empty or blocked pages;
// present a browser instead.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Extractor downloads pages and extracts h1..h6 headings in document
// order. Headings with empty text are skipped; no hierarchy validation
// is performed.
type Extractor struct {
	client *http.Client
	logger *zap.Logger
}

// New creates an Extractor.
func New(logger *zap.Logger) *Extractor {
	return &Extractor{
		client: &http.Client{Timeout: fetchTimeout},
		logger: logger,
	}
}

// Outline fetches pageURL and returns its heading structure. The result
// always has a non-nil Structure slice so it serializes as [] rather
// than null for pages without headings.
func (e *Extractor) Outline(ctx context.Context, pageURL string) (*domain.Outline, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build page request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", pageURL, err)
	}

	outline := &domain.Outline{
		URL:       pageURL,
		Title:     strings.TrimSpace(doc.Find("title").First().Text()),
		Structure: []domain.Heading{},
	}

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		name := goquery.NodeName(s)
		outline.Structure = append(outline.Structure, domain.Heading{
			Level: int(name[1] - '0'),
			Text:  text,
		})
	})

	e.logger.Debug("extracted outline",
		zap.String("url", pageURL),
		zap.Int("headings", len(outline.Structure)),
	)

	return outline, nil
}
