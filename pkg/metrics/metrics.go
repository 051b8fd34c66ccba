package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cerahati_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// CacheReads counts cached read resolutions by resource kind and source (cache|database).
	CacheReads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cerahati_cache_reads_total",
			Help: "Total number of cached read resolutions",
		},
		[]string{"kind", "source"},
	)

	// LoginAttempts records login attempts by result (success|failure|limited).
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cerahati_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)
)
