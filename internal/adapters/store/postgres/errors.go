// Package postgres implements the persistence gateways on PostgreSQL.
//
// Gateways never open transactions themselves. Each statement runs on the
// transaction carried by the context (see txscope.Querier), or directly on
// the pool when called outside any scope.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lib/pq"
	"github.com/omeid/pgerror"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
)

// classify maps driver errors onto domain sentinels, keeping the original
// error in the chain.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("%s: %w", op, err)
	}

	switch {
	case pgerror.UniqueViolation(pqErr) != nil, pgerror.ForeignKeyViolation(pqErr) != nil:
		return fmt.Errorf("%s: %w: %s: %w", op, domain.ErrConflict, pqErr.Message, err)
	case pgerror.CheckViolation(pqErr) != nil, pgerror.NotNullViolation(pqErr) != nil:
		return fmt.Errorf("%s: %w: %s: %w", op, domain.ErrValidation, pqErr.Message, err)
	case pgerror.ConnectionException(pqErr) != nil, pqErr.Code.Class() == "08":
		return fmt.Errorf("%s: %w: %w", op, domain.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

// logFault is the shared LogErrorMessage implementation.
func logFault(ctx context.Context, gateway string, err error) {
	if err == nil {
		return
	}
	level := slog.LevelError
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConflict) {
		level = slog.LevelWarn
	}
	logging.FromContext(ctx).Log(ctx, level, "persistence fault",
		slog.String("operation", "LogErrorMessage"),
		slog.String("gateway", gateway),
		slog.Any("error", err),
	)
}
