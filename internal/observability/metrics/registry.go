// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track application-specific operations
var (
	// ArticlesIngestedTotal counts articles ingested from each source
	ArticlesIngestedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_ingested_total",
			Help: "Total number of articles ingested per feed source",
		},
		[]string{"source"},
	)

	// TweetsIngestedTotal counts tweets accepted into the timeline
	TweetsIngestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tweets_ingested_total",
			Help: "Total number of tweets accepted into the timeline",
		},
	)

	// BriefsGeneratedTotal counts generated briefs by item kind and status
	BriefsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "briefs_generated_total",
			Help: "Total number of briefs generated",
		},
		[]string{"kind", "status"},
	)

	// SummarizerDuration measures the time taken by a summarizer call
	SummarizerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarizer_duration_seconds",
			Help:    "Duration of summarizer calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)

	// NotificationsSentTotal counts notifications dispatched per channel and status
	NotificationsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_sent_total",
			Help: "Total number of notifications dispatched",
		},
		[]string{"channel", "status"},
	)

	// NotificationsDroppedTotal counts notifications dropped before dispatch
	NotificationsDroppedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_dropped_total",
			Help: "Total number of notifications dropped before dispatch",
		},
		[]string{"channel", "reason"},
	)

	// FeedCrawlDuration measures the duration of a full feed crawl per source
	FeedCrawlDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_crawl_duration_seconds",
			Help:    "Duration of feed crawls in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"source"},
	)

	// FeedCrawlErrors counts crawl errors by source and error type
	FeedCrawlErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_crawl_errors_total",
			Help: "Total number of feed crawl errors",
		},
		[]string{"source", "error_type"},
	)
)
