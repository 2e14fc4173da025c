package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/config"
)

const testSecret = "test-secret-key-must-be-at-least-32-bytes-long"

func TestLoadAdvisorConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("ADVISOR_HTTP_PORT", "")
	t.Setenv("DB_FILE", "")

	cfg, err := config.LoadAdvisorConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("expected 30m access token ttl, got %v", cfg.AccessTokenTTL)
	}
	if cfg.StoreDriver != config.StoreDriverFile {
		t.Errorf("expected file driver, got %s", cfg.StoreDriver)
	}
	if cfg.DBFile != "db.json" {
		t.Errorf("expected db.json, got %s", cfg.DBFile)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.HTTPPort)
	}
}

func TestLoadAdvisorConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.LoadAdvisorConfig()
	if !errors.Is(err, config.ErrMissingRequiredEnv) {
		t.Fatalf("expected ErrMissingRequiredEnv, got %v", err)
	}
}

func TestLoadAdvisorConfig_ShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := config.LoadAdvisorConfig()
	if !errors.Is(err, config.ErrInvalidJWTSecret) {
		t.Fatalf("expected ErrInvalidJWTSecret, got %v", err)
	}
}

func TestLoadAdvisorConfig_PostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.LoadAdvisorConfig()
	if !errors.Is(err, config.ErrMissingRequiredEnv) {
		t.Fatalf("expected ErrMissingRequiredEnv, got %v", err)
	}
}

func TestLoadAdvisorConfig_UnknownDriver(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("STORE_DRIVER", "redis")

	_, err := config.LoadAdvisorConfig()
	if !errors.Is(err, config.ErrUnknownStoreDriver) {
		t.Fatalf("expected ErrUnknownStoreDriver, got %v", err)
	}
}

func TestLoadAdvisorConfig_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("ACCESS_TOKEN_TTL", "soon")

	cfg, err := config.LoadAdvisorConfig()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Errorf("expected fallback 30m, got %v", cfg.AccessTokenTTL)
	}
}
