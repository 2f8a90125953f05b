package commands

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/samber/do/v2"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/bootstrap"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/config"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

// Connect loads config for profile and resolves the article service through
// the same graph the HTTP server uses. Logs go to stderr so stdout stays
// machine-readable. Telemetry is never exported from the CLI.
func Connect(_ context.Context, profile, configDir string) (ports.ArticleService, func() error, error) {
	cfg, err := config.Load(profile, config.WithConfigDir(configDir))
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	metrics, err := telemetry.NewMetrics(noop.NewMeterProvider())
	if err != nil {
		return nil, nil, fmt.Errorf("creating metrics: %w", err)
	}

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)
	bootstrap.RegisterDomain(injector)

	svc, err := do.Invoke[ports.ArticleService](injector)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving article service: %w", err)
	}

	release := func() error {
		db := do.MustInvoke[*sql.DB](injector)
		if err := db.Close(); err != nil {
			logger.Error("closing database pool", slog.Any("error", err))
			return fmt.Errorf("closing database pool: %w", err)
		}
		return nil
	}
	return svc, release, nil
}
