package service

import (
	"github.com/AlibekovAA/course-advisor/backend/internal/observability/metrics"
)

func incrementAccessTokensIssued() {
	metrics.AccessTokensIssued.Inc()
}

func incrementJWTValidations() {
	metrics.JWTValidationsTotal.Inc()
}

func incrementJWTValidationFailed(reason string) {
	metrics.JWTValidationsFailed.WithLabelValues(reason).Inc()
}

func incrementLoginAttempt(result string) {
	metrics.LoginAttemptsTotal.WithLabelValues(result).Inc()
}

func incrementSessionResolved(result string) {
	metrics.SessionsResolvedTotal.WithLabelValues(result).Inc()
}
