// Package bootstrap registers the persistence and view-model graph with a
// samber/do injector. The HTTP server and the admin CLI share it so both run
// the same pipelines against the same stores.
package bootstrap

import (
	"database/sql"
	"errors"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/adapters/store/postgres"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/app"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/config"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/database"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/health"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/txscope"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/ports"
)

// RegisterDomain provides the connection pool, the transaction scope
// manager, the postgres gateways, the article and tag repositories, the
// article service and the health registry.
//
// The injector must already hold *config.Config, *slog.Logger and
// *telemetry.Metrics values.
func RegisterDomain(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*sql.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return database.Open(&cfg.Database)
	})

	do.Provide(injector, func(i do.Injector) (*txscope.Manager, error) {
		cfg := do.MustInvoke[*config.Config](i)
		db := do.MustInvoke[*sql.DB](i)
		logger := do.MustInvoke[*slog.Logger](i)
		// Postgres aborts a transaction on its first failed statement; clones
		// isolate each locale behind a savepoint.
		return txscope.NewManager(db, &cfg.Database, logger, txscope.WithSavepoints()), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ArticleStore, error) {
		return postgres.NewArticleGateway(do.MustInvoke[*sql.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TagStore, error) {
		return postgres.NewTagGateway(do.MustInvoke[*sql.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.TagRepository, error) {
		return app.NewTagRepository(
			do.MustInvoke[ports.TagStore](i),
			do.MustInvoke[*txscope.Manager](i),
			do.MustInvoke[*telemetry.Metrics](i),
		)
	})

	do.Provide(injector, func(i do.Injector) (*app.ArticleRepository, error) {
		return app.NewArticleRepository(
			do.MustInvoke[ports.ArticleStore](i),
			do.MustInvoke[*app.TagRepository](i),
			do.MustInvoke[ports.TagStore](i),
			do.MustInvoke[*txscope.Manager](i),
			do.MustInvoke[*telemetry.Metrics](i),
		)
	})

	do.Provide(injector, func(i do.Injector) (ports.ArticleService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		locales := cfg.DomainLocales()
		if len(locales) == 0 {
			return nil, errors.New("no locales configured")
		}
		return app.NewArticleService(
			do.MustInvoke[*app.ArticleRepository](i),
			do.MustInvoke[ports.ArticleStore](i),
			locales,
			do.MustInvoke[*slog.Logger](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(database.NewPinger(do.MustInvoke[*sql.DB](i)))
		registry.Register(do.MustInvoke[*txscope.Manager](i))
		return registry, nil
	})
}
