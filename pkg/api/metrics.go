package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// pathQueryTotal counts path queries by outcome.
	pathQueryTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "grid_router_path_query_total",
		Help: "Total path queries by result.",
	}, []string{"result"})

	// pathQueryDuration tracks end-to-end path query latency.
	pathQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "grid_router_path_query_duration_seconds",
		Help:    "Path query duration in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
	})
)

func observePathQuery(result string, started time.Time) {
	pathQueryTotal.WithLabelValues(result).Inc()
	pathQueryDuration.Observe(time.Since(started).Seconds())
}
