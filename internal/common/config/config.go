package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
)

var (
	ErrMissingRequiredEnv = errors.New("missing required environment variable")
	ErrInvalidJWTSecret   = errors.New("JWT_SECRET must be at least 32 bytes")
	ErrUnknownStoreDriver = errors.New("unknown STORE_DRIVER")
)

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

type AdvisorConfig struct {
	HTTPPort       string
	JWTSecret      string
	AccessTokenTTL time.Duration
	RequestTimeout time.Duration
	StoreDriver    string
	DBFile         string
	DatabaseURL    string
	LogDir         string
	LogLevel       string
}

func LoadAdvisorConfig() (AdvisorConfig, error) {
	jwtSecret, err := mustEnv("JWT_SECRET")
	if err != nil {
		return AdvisorConfig{}, err
	}

	if err := validateJWTSecret(jwtSecret); err != nil {
		return AdvisorConfig{}, err
	}

	cfg := AdvisorConfig{
		HTTPPort:       getEnv("ADVISOR_HTTP_PORT", constants.DefaultAdvisorHTTPPort),
		JWTSecret:      jwtSecret,
		AccessTokenTTL: getDurationEnv("ACCESS_TOKEN_TTL", constants.LoginTokenTTL),
		RequestTimeout: getDurationEnv("ADVISOR_REQUEST_TIMEOUT", constants.DefaultAdvisorRequestTimeout),
		StoreDriver:    getEnv("STORE_DRIVER", StoreDriverFile),
		DBFile:         getEnv("DB_FILE", constants.DefaultDBFile),
		LogDir:         os.Getenv("LOG_DIR"),
		LogLevel:       os.Getenv("LOG_LEVEL"),
	}

	switch cfg.StoreDriver {
	case StoreDriverFile:
	case StoreDriverPostgres:
		cfg.DatabaseURL, err = mustEnv("DATABASE_URL")
		if err != nil {
			return AdvisorConfig{}, err
		}
	default:
		return AdvisorConfig{}, fmt.Errorf("%w: %q", ErrUnknownStoreDriver, cfg.StoreDriver)
	}

	return cfg, nil
}

func validateJWTSecret(secret string) error {
	if len(secret) < constants.JWTSecretMinLength {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidJWTSecret, len(secret))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func mustEnv(key string) (string, error) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingRequiredEnv, key)
	}
	return v, nil
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
