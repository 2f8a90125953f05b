// Package database opens the service's connection pool.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	// Registers the "postgres" driver.
	_ "github.com/lib/pq"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/config"
)

const pingTimeout = 2 * time.Second

// Open creates a pool for cfg. It does not connect; the first query or the
// readiness probe does.
func Open(cfg *config.DatabaseConfig) (*sql.DB, error) {
	if cfg.DSN == "" {
		return nil, errors.New("database dsn must not be empty")
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening %s pool: %w", cfg.Driver, err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Pinger reports pool health for the readiness probe.
type Pinger struct {
	db *sql.DB
}

// NewPinger wraps db for health reporting.
func NewPinger(db *sql.DB) *Pinger {
	return &Pinger{db: db}
}

// Name identifies the check in readiness output.
func (p *Pinger) Name() string {
	return "database"
}

// HealthCheck pings the database, bounded by a short timeout.
func (p *Pinger) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}
	return nil
}
