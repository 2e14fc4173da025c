package constants

import "time"

const (
	JWTSecretMinLength    = 32
	DefaultMaxRequestSize = 1 << 20

	// DefaultTokenTTL applies only when a caller issues a token without an
	// explicit lifetime. Login always passes LoginTokenTTL.
	DefaultTokenTTL = 15 * time.Minute
	LoginTokenTTL   = 30 * time.Minute

	MaxRecommendations = 5

	BcryptCost = 12

	ServerReadHeaderTimeout = 10 * time.Second
	ServerReadTimeout       = 30 * time.Second
	ServerWriteTimeout      = 30 * time.Second
	ServerIdleTimeout       = 120 * time.Second

	ShutdownTimeout = 30 * time.Second
	DrainTimeout    = 10 * time.Second

	DefaultAdvisorHTTPPort       = "8080"
	DefaultAdvisorRequestTimeout = 5 * time.Second
	DefaultDBFile                = "db.json"

	DBPoolMaxConns        = 10
	DBPoolMinConns        = 2
	DBPoolConnMaxLifetime = time.Hour
	DBPoolConnMaxIdleTime = 30 * time.Minute
	DBPoolHealthCheck     = time.Minute
	DBPoolConnectTimeout  = 5 * time.Second
	DBPoolMaxAttempts     = 10
	DBPoolRetryDelay      = time.Second
	DBPoolMetricsInterval = 30 * time.Second

	RateLimitLoginRequestsPerSecond   = 1.0
	RateLimitLoginBurst               = 5
	RateLimitGeneralRequestsPerSecond = 20.0
	RateLimitGeneralBurst             = 40
	RateLimitCleanupInterval          = 5 * time.Minute

	LoggerMaxSize    = 100
	LoggerMaxBackups = 3
	LoggerMaxAge     = 28
)

type TraceIDKeyType string

const TraceIDKey TraceIDKeyType = "trace_id"
