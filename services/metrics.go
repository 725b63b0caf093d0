package services

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	metricsOnce sync.Once

	estimatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "calories",
			Name:      "estimates_total",
			Help:      "Count of calorie estimates by outcome.",
		},
		[]string{"outcome"},
	)

	bmrObserved = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "calories",
			Name:      "bmr_kcal",
			Help:      "Distribution of computed BMR values by gender.",
			Buckets:   prometheus.LinearBuckets(800, 200, 12),
		},
		[]string{"gender"},
	)
)

// RegisterMetrics registers the estimate collectors (idempotent).
func RegisterMetrics() {
	metricsOnce.Do(func() {
		prometheus.MustRegister(estimatesTotal, bmrObserved)
	})
}

func incEstimate(outcome string) {
	estimatesTotal.WithLabelValues(outcome).Inc()
}

func observeBMR(gender string, bmr float64) {
	bmrObserved.WithLabelValues(gender).Observe(bmr)
}
