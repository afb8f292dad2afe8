package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the runtime recommend HTTP handler
	RecommendLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "taste_recommend_latency_seconds",
		Help:    "Latency of the taste recommendation handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of recommendation requests served
	RecommendRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "taste_recommend_requests_total",
		Help: "Total number of taste recommend requests",
	})

	// Cache outcome of taste config lookups
	ConfigCacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "taste_config_cache_lookups_total",
		Help: "Taste config cache lookups by outcome (hit, miss, error)",
	}, []string{"outcome"})
)

func Init() {
	prometheus.MustRegister(
		RecommendLatency,
		RecommendRequests,
		ConfigCacheLookups,
	)
}
