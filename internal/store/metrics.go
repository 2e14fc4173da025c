package store

import (
	"time"

	"github.com/AlibekovAA/course-advisor/backend/internal/observability/metrics"
)

func observeRead(store, operation string, start time.Time) {
	metrics.StoreReadDurationSeconds.WithLabelValues(store, operation).Observe(time.Since(start).Seconds())
}

func recordReadError(store, operation string) {
	metrics.StoreReadErrors.WithLabelValues(store, operation).Inc()
}
