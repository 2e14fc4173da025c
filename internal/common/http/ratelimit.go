package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/httpmetrics"
	"github.com/AlibekovAA/course-advisor/backend/internal/observability/metrics"
)

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(requestsPerSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// StartCleanup drops buckets that are full again, until ctx is done.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, limiter := range rl.limiters {
				if limiter.Tokens() >= float64(rl.burst) {
					delete(rl.limiters, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters[key] = limiter
	}
	rl.mu.Unlock()

	return limiter.Allow()
}

func (rl *RateLimiter) Middleware(limiterType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow(GetClientIP(r)) {
				metrics.RateLimitBlocked.WithLabelValues(httpmetrics.NormalizePath(r.URL.Path), limiterType).Inc()
				WriteErrorEnvelope(w, http.StatusTooManyRequests, CodeRateLimited, "rate limit exceeded", TraceIDFromContext(r.Context()))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// PathRateLimiter applies a strict bucket to the login paths and a general
// bucket elsewhere. Health and metrics endpoints are never limited.
type PathRateLimiter struct {
	loginPaths map[string]struct{}
	login      *RateLimiter
	general    *RateLimiter
}

func NewPathRateLimiter(loginPaths ...string) *PathRateLimiter {
	paths := make(map[string]struct{}, len(loginPaths))
	for _, p := range loginPaths {
		paths[p] = struct{}{}
	}
	return &PathRateLimiter{
		loginPaths: paths,
		login:      NewRateLimiter(constants.RateLimitLoginRequestsPerSecond, constants.RateLimitLoginBurst),
		general:    NewRateLimiter(constants.RateLimitGeneralRequestsPerSecond, constants.RateLimitGeneralBurst),
	}
}

func (p *PathRateLimiter) StartCleanup(ctx context.Context) {
	go p.login.StartCleanup(ctx, constants.RateLimitCleanupInterval)
	go p.general.StartCleanup(ctx, constants.RateLimitCleanupInterval)
}

func (p *PathRateLimiter) Middleware(next http.Handler) http.Handler {
	login := p.login.Middleware("login")(next)
	general := p.general.Middleware("general")(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := p.loginPaths[r.URL.Path]; ok {
			login.ServeHTTP(w, r)
			return
		}
		general.ServeHTTP(w, r)
	})
}
