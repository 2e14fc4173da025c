package bootstrap

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/AlibekovAA/course-advisor/backend/internal/common/config"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/db"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
)

type AdvisorApp struct {
	Log    *logger.Logger
	Config config.AdvisorConfig
	Store  store.Store
	// Pool is nil unless the postgres driver is selected.
	Pool *pgxpool.Pool
}

func NewAdvisorApp(ctx context.Context) (*AdvisorApp, error) {
	cfg, err := config.LoadAdvisorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(cfg.LogDir, "advisor", cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	app := &AdvisorApp{Log: log, Config: cfg}

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := db.NewPool(ctx, log, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		go db.StartPoolMetrics(ctx, pool, constants.DBPoolMetricsInterval)
		app.Pool = pool
		app.Store = store.NewPgStore(pool)
	default:
		app.Store = store.NewFileStore(cfg.DBFile)
	}

	log.Infof("advisor store driver=%s", cfg.StoreDriver)
	return app, nil
}

func (a *AdvisorApp) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
