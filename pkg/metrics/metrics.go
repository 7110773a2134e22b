package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	SubmissionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_submissions_total",
			Help: "Total number of submission attempts by outcome (count)",
		},
		[]string{"status"},
	)

	FeedFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "board_feed_fetches_total",
			Help: "Total number of feed fetches by outcome (count)",
		},
		[]string{"status"},
	)

	StoreRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_requests_total",
			Help: "Total number of record store round trips (count)",
		},
		[]string{"operation", "status"},
	)

	StoreRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_request_duration_ms",
			Help:    "Record store round-trip duration in milliseconds",
			Buckets: []float64{10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		},
		[]string{"operation", "status"},
	)
)

func RegisterBoardMetrics() {
	prometheus.MustRegister(SubmissionsTotal)
	prometheus.MustRegister(FeedFetchesTotal)
	prometheus.MustRegister(StoreRequestsTotal)
	prometheus.MustRegister(StoreRequestDuration)
}

func IncSubmission(status string) {
	SubmissionsTotal.WithLabelValues(status).Inc()
}

func IncFeedFetch(status string) {
	FeedFetchesTotal.WithLabelValues(status).Inc()
}

func ObserveStoreRequest(operation, status string, duration time.Duration) {
	StoreRequestsTotal.WithLabelValues(operation, status).Inc()
	StoreRequestDuration.WithLabelValues(operation, status).Observe(float64(duration.Milliseconds()))
}
