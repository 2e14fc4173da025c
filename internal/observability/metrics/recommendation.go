package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RecommendationsServed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total number of recommendation lists served",
		},
	)

	RecommendationListSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_list_size",
			Help:    "Number of courses in a served recommendation list",
			Buckets: []float64{0, 1, 2, 3, 4, 5},
		},
	)
)
