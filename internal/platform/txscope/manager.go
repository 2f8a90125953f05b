package txscope

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/jsamuelsen11/go-viewmodel-service/internal/domain"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/config"
	"github.com/jsamuelsen11/go-viewmodel-service/internal/platform/logging"
)

const breakerName = "database"

// Manager opens, lends and finalizes transaction scopes against one pool.
type Manager struct {
	db        *sql.DB
	breaker   *gobreaker.CircuitBreaker[*shared]
	retry     retryPolicy
	txTimeout time.Duration
	txOptions *sql.TxOptions

	savepoints bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithTxOptions sets the isolation level and read-only flag for root
// transactions.
func WithTxOptions(opts *sql.TxOptions) Option {
	return func(m *Manager) {
		m.txOptions = opts
	}
}

// WithSavepoints makes Savepoint issue real SAVEPOINT statements. Enable it
// for backends such as Postgres that abort the whole transaction on the first
// failed statement.
func WithSavepoints() Option {
	return func(m *Manager) {
		m.savepoints = true
	}
}

// NewManager creates a Manager over db using the retry, circuit breaker and
// timeout settings from cfg.
func NewManager(db *sql.DB, cfg *config.DatabaseConfig, logger *slog.Logger, opts ...Option) *Manager {
	m := &Manager{
		db: db,
		breaker: gobreaker.NewCircuitBreaker[*shared](gobreaker.Settings{
			Name:        breakerName,
			MaxRequests: toUint32(cfg.CircuitBreaker.HalfOpenLimit),
			Timeout:     cfg.CircuitBreaker.Timeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= cfg.CircuitBreaker.MaxFailures
			},
			// Only outages count against the breaker; a cancelled caller says
			// nothing about the database.
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state change",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
		retry: retryPolicy{
			maxAttempts:     cfg.Retry.MaxAttempts,
			initialInterval: cfg.Retry.InitialInterval,
			maxInterval:     cfg.Retry.MaxInterval,
			multiplier:      cfg.Retry.Multiplier,
		},
		txTimeout: cfg.TxTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init returns a scope for the pipeline about to run.
//
// When ctx already carries a scope the returned scope borrows it and ctx is
// returned unchanged. Otherwise a connection is checked out, a transaction
// begun, and a root scope is stored in the returned context. Root scopes
// inherit the database tx timeout when ctx has no deadline.
func (m *Manager) Init(ctx context.Context) (context.Context, *Scope, error) {
	if parent, ok := From(ctx); ok {
		return ctx, parent.borrow(), nil
	}

	scopeCtx, cancel := ctx, context.CancelFunc(func() {})
	if _, hasDeadline := ctx.Deadline(); !hasDeadline && m.txTimeout > 0 {
		scopeCtx, cancel = context.WithTimeout(ctx, m.txTimeout)
	}

	sh, err := m.breaker.Execute(func() (*shared, error) {
		return m.openWithRetry(scopeCtx)
	})
	if err != nil {
		cancel()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return ctx, nil, fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
		}
		return ctx, nil, err
	}
	sh.cancel = cancel

	scope := &Scope{root: true, shared: sh}
	return WithScope(scopeCtx, scope), scope, nil
}

// Handle finalizes scope. A root scope commits when success is true and no
// participant marked it rollback-only, and rolls back otherwise; either way
// its connection is released afterwards. Borrowed scopes are left untouched.
func (m *Manager) Handle(ctx context.Context, scope *Scope, success bool) error {
	if scope == nil || !scope.root {
		return nil
	}

	sh := scope.shared
	sh.mu.Lock()
	if sh.finished {
		sh.mu.Unlock()
		return nil
	}
	sh.finished = true
	commit := success && !sh.rollbackOnly
	sh.mu.Unlock()

	defer m.release(ctx, sh)

	if commit {
		if err := sh.tx.Commit(); err != nil {
			return fmt.Errorf("committing transaction: %w", err)
		}
		return nil
	}

	if err := sh.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return fmt.Errorf("rolling back transaction: %w", err)
	}
	logging.FromContext(ctx).DebugContext(ctx, "transaction rolled back",
		slog.String("operation", "txscope.Handle"),
		slog.Bool("success", success),
	)
	return nil
}

// Checkpoint folds a running success flag into scope. A false flag marks the
// whole transaction rollback-only so the root owner's eventual Handle rolls
// back every participant's work, including work done before the checkpoint.
func (m *Manager) Checkpoint(ctx context.Context, scope *Scope, success bool) {
	if scope == nil || success {
		return
	}
	scope.markRollbackOnly()
	logging.FromContext(ctx).DebugContext(ctx, "transaction marked rollback-only",
		slog.String("operation", "txscope.Checkpoint"),
		slog.Bool("root", scope.root),
	)
}

// Savepoint marks the current position of scope's transaction so that a
// failed step can be undone without poisoning the steps after it. It returns
// nil when savepoints are disabled or scope is nil; Settle accepts nil.
func (m *Manager) Savepoint(ctx context.Context, scope *Scope) (*Savepoint, error) {
	if !m.savepoints || scope == nil {
		return nil, nil
	}

	sp := &Savepoint{name: scope.nextSavepoint(), tx: scope.shared.tx}
	if _, err := sp.tx.ExecContext(ctx, "SAVEPOINT "+sp.name); err != nil {
		return nil, fmt.Errorf("creating savepoint %s: %w", sp.name, err)
	}
	return sp, nil
}

// UsesSavepoints reports whether Savepoint issues SAVEPOINT statements.
func (m *Manager) UsesSavepoints() bool {
	return m.savepoints
}

// Settle releases sp after a successful step and rolls back to it after a
// failed one. Rolling back to a savepoint does not clear the rollback-only
// mark; the root owner still decides the transaction's fate.
func (m *Manager) Settle(ctx context.Context, sp *Savepoint, success bool) error {
	if sp == nil {
		return nil
	}

	stmt := "RELEASE SAVEPOINT " + sp.name
	if !success {
		stmt = "ROLLBACK TO SAVEPOINT " + sp.name
	}
	if _, err := sp.tx.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("settling savepoint %s: %w", sp.name, err)
	}
	return nil
}

// HealthCheck reports database availability from the circuit breaker state
// without touching the pool.
func (m *Manager) HealthCheck(_ context.Context) error {
	switch state := m.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", breakerName)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing (circuit breaker open)", breakerName)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %v", breakerName, state)
	}
}

// Name identifies the manager in health reports.
func (m *Manager) Name() string {
	return breakerName + "-scopes"
}

// HandleFault converts fault into a failed Result, rolling back first when
// scope is the root owner.
func HandleFault[T any](ctx context.Context, m *Manager, scope *Scope, fault error) domain.Result[T] {
	result := domain.FromFault[T](fault)
	if err := m.Handle(ctx, scope, false); err != nil {
		result.AddError(err.Error())
	}
	return result
}

func (m *Manager) open(ctx context.Context) (*shared, error) {
	conn, err := m.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	tx, err := conn.BeginTx(ctx, m.txOptions)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	return &shared{conn: conn, tx: tx}, nil
}

func (m *Manager) release(ctx context.Context, sh *shared) {
	if err := sh.conn.Close(); err != nil {
		logging.FromContext(ctx).WarnContext(ctx, "failed to release connection",
			slog.String("operation", "txscope.Handle"),
			slog.Any("error", err),
		)
	}
	if sh.cancel != nil {
		sh.cancel()
	}
}

func toUint32(v int) uint32 {
	if v <= 0 {
		return 0
	}
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}
