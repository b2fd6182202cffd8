package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagescope_search_requests_total",
			Help: "Total number of search requests handled",
		},
		[]string{"status"},
	)

	ScrapeRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pagescope_scrape_requests_total",
			Help: "Total number of scrape requests handled",
		},
		[]string{"status"},
	)

	ScrapeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pagescope_scrape_duration_seconds",
			Help:    "Duration of page fetch and outline extraction in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
	)
)

// RecordSearch counts one handled search request.
func RecordSearch(status string) {
	SearchRequestsTotal.WithLabelValues(status).Inc()
}

// RecordScrape counts one handled scrape request and its duration.
func RecordScrape(status string, duration time.Duration) {
	ScrapeRequestsTotal.WithLabelValues(status).Inc()
	ScrapeDuration.Observe(duration.Seconds())
}
