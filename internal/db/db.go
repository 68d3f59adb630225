package db

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgxpool"

	"complaint-trends-service/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured with sane defaults.
// The initial ping is retried with capped exponential backoff so the service
// survives the database coming up after it.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pgxCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse db config: %w", err)
	}

	pgxCfg.MinConns = cfg.DBMinConns
	pgxCfg.MaxConns = cfg.DBMaxConns
	pgxCfg.MaxConnLifetime = cfg.DBMaxConnLifetime
	pgxCfg.MaxConnIdleTime = cfg.DBMaxConnIdleTime
	pgxCfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, pgxCfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	ping := func() error {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return pool.Ping(pingCtx)
	}
	bo := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5), ctx)
	if err := backoff.Retry(ping, bo); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if strings.ToLower(cfg.AppMode) == "benchmark" {
		log.Printf("db pool configured: max_conns=%d min_conns=%d max_conn_lifetime=%s max_conn_idle=%s", pgxCfg.MaxConns, pgxCfg.MinConns, pgxCfg.MaxConnLifetime, pgxCfg.MaxConnIdleTime)
	}

	return pool, nil
}
