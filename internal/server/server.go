package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"pagescope/internal/cache"
	"pagescope/internal/domain"
	"pagescope/internal/metrics"
	"pagescope/internal/serp"
)

const searchResultLimit = 10

// PageExtractor produces a heading outline for a page URL.
type PageExtractor interface {
	Outline(ctx context.Context, pageURL string) (*domain.Outline, error)
}

// Server is the HTTP gateway fronting the search provider and the
// page extractor.
type Server struct {
	provider  serp.Provider
	extractor PageExtractor
	outlines  *cache.OutlineCache
	logger    *zap.Logger
}

func New(provider serp.Provider, extractor PageExtractor, outlines *cache.OutlineCache, logger *zap.Logger) *Server {
	return &Server{
		provider:  provider,
		extractor: extractor,
		outlines:  outlines,
		logger:    logger,
	}
}

// Router builds the chi router with all gateway routes mounted.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/search", s.handleSearch)
	r.Post("/search", s.handleSearch)
	r.Get("/scrape", s.handleScrape)
	r.Post("/scrape", s.handleScrape)
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

type searchBody struct {
	Query string `json:"query"`
}

type scrapeBody struct {
	URL string `json:"url"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" && r.Method == http.MethodPost {
		var body searchBody
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			query = body.Query
		}
	}
	if query == "" {
		metrics.RecordSearch("bad_request")
		writeError(w, http.StatusBadRequest, "query parameter is required")
		return
	}

	results, err := s.provider.Search(r.Context(), query, searchResultLimit)
	if err != nil {
		if errors.Is(err, serp.ErrNotConfigured) {
			metrics.RecordSearch("not_configured")
			writeError(w, http.StatusServiceUnavailable, "search provider is not configured")
			return
		}
		s.logger.Warn("search failed", zap.String("query", query), zap.Error(err))
		metrics.RecordSearch("upstream_error")
		writeError(w, http.StatusBadGateway, "search provider request failed")
		return
	}

	s.logger.Info("search served",
		zap.String("query", query),
		zap.Int("results", len(results)))
	metrics.RecordSearch("ok")
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	pageURL := r.URL.Query().Get("url")
	if pageURL == "" && r.Method == http.MethodPost {
		var body scrapeBody
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			pageURL = body.URL
		}
	}
	if pageURL == "" {
		metrics.RecordScrape("bad_request", 0)
		writeError(w, http.StatusBadRequest, "url is required")
		return
	}

	if s.outlines != nil {
		if outline, ok := s.outlines.Get(pageURL); ok {
			metrics.RecordScrape("cache_hit", 0)
			writeJSON(w, http.StatusOK, outline)
			return
		}
	}

	start := time.Now()
	outline, err := s.extractor.Outline(r.Context(), pageURL)
	if err != nil {
		s.logger.Warn("scrape failed", zap.String("url", pageURL), zap.Error(err))
		metrics.RecordScrape("upstream_error", time.Since(start))
		writeError(w, http.StatusBadGateway, "could not fetch page")
		return
	}

	if s.outlines != nil {
		s.outlines.Put(pageURL, outline)
	}

	s.logger.Info("scrape served",
		zap.String("url", pageURL),
		zap.Int("headings", len(outline.Structure)))
	metrics.RecordScrape("ok", time.Since(start))
	writeJSON(w, http.StatusOK, outline)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Debug("response encode failed", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
