package builder

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	BuildOutcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "taste_build_outcomes_total",
			Help: "Count of builder outcomes per taste (built, updated, unchanged, skipped, failed).",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(BuildOutcomesTotal)
}
