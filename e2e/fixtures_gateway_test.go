//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// gatewayFixture is a canned stand-in for pagescoped serving both the
// /search and /scrape endpoints.
type gatewayFixture struct {
	server *httptest.Server

	// results returned for any query; nil means HTTP 502
	results []map[string]string
	// structures keyed by page URL; missing key means HTTP 502
	structures map[string][]map[string]any
}

func newGatewayFixture(t *testing.T) *gatewayFixture {
	t.Helper()
	f := &gatewayFixture{
		structures: make(map[string][]map[string]any),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if f.results == nil {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(f.results)
	})
	mux.HandleFunc("/scrape", func(w http.ResponseWriter, r *http.Request) {
		structure, ok := f.structures[r.URL.Query().Get("url")]
		if !ok {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"structure": structure})
	})

	f.server = httptest.NewServer(mux)
	t.Cleanup(f.server.Close)
	return f
}

func (f *gatewayFixture) URL() string {
	return f.server.URL
}

func (f *gatewayFixture) addResult(url, title, snippet string) {
	f.results = append(f.results, map[string]string{
		"url":     url,
		"title":   title,
		"snippet": snippet,
	})
}

func (f *gatewayFixture) addStructure(url string, headings ...map[string]any) {
	structure := []map[string]any{}
	structure = append(structure, headings...)
	f.structures[url] = structure
}

func heading(level int, text string) map[string]any {
	return map[string]any{"level": level, "text": text}
}
