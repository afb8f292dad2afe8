package taste

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taste_recommendations_served_total",
			Help: "Count of served recommendations by outcome (ok, missing_config, error).",
		},
		[]string{"outcome"},
	)

	RecommendedCategories = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "taste_recommended_categories",
			Help:    "Number of categories per served recommendation.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)
)

func init() {
	prometheus.MustRegister(RecommendationsServedTotal, RecommendedCategories)
}
